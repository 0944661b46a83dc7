package availability

import (
	"fmt"
	"time"

	"github.com/julianstephens/coachdesk/internal/logger"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// Config describes the bookable window of a working day.
type Config struct {
	WorkdayStart string // HH:MM, first slot
	WorkdayEnd   string // HH:MM, last slot (inclusive)
	StrideMin    int
	Blackout     []string
	Mode         models.AvailabilityMode
}

// FromSettings maps persisted settings onto a generator config.
func FromSettings(s models.Settings) Config {
	return Config{
		WorkdayStart: s.WorkdayStart,
		WorkdayEnd:   s.WorkdayEnd,
		StrideMin:    s.SlotStrideMin,
		Blackout:     s.BlackoutSlots,
		Mode:         s.AvailabilityMode,
	}
}

// Booked supplies the sessions already on a given day.
type Booked interface {
	ForDate(day time.Time) []models.Session
}

type Generator struct {
	cfg    Config
	booked Booked
}

// New creates a generator. booked may be nil when cfg.Mode is blackout.
func New(cfg Config, booked Booked) *Generator {
	return &Generator{cfg: cfg, booked: booked}
}

// Slots returns the free HH:MM start times for day, earliest first.
func (g *Generator) Slots(day time.Time) ([]string, error) {
	start, end, err := g.window()
	if err != nil {
		return nil, err
	}

	blocked := make(map[int]bool, len(g.cfg.Blackout))
	for _, b := range g.cfg.Blackout {
		m, err := utils.ParseTimeToMinutes(b)
		if err != nil {
			return nil, fmt.Errorf("invalid blackout slot %q: %w", b, err)
		}
		blocked[m] = true
	}

	var busy [][2]int
	if g.cfg.Mode == models.AvailabilityConflictAware && g.booked != nil {
		busy = g.busyRanges(day)
	}

	slots := []string{}
	for m := start; m <= end; m += g.cfg.StrideMin {
		if blocked[m] || overlapsAny(m, m+g.cfg.StrideMin, busy) {
			continue
		}
		slots = append(slots, utils.FormatMinutes(m))
	}
	return slots, nil
}

func (g *Generator) window() (int, int, error) {
	switch g.cfg.Mode {
	case "", models.AvailabilityBlackout, models.AvailabilityConflictAware:
	default:
		return 0, 0, fmt.Errorf("unknown availability mode: %s", g.cfg.Mode)
	}
	if g.cfg.StrideMin <= 0 {
		return 0, 0, fmt.Errorf("slot stride must be positive, got %d", g.cfg.StrideMin)
	}
	start, err := utils.ParseTimeToMinutes(g.cfg.WorkdayStart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid workday start: %w", err)
	}
	end, err := utils.ParseTimeToMinutes(g.cfg.WorkdayEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid workday end: %w", err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("workday end %s is before start %s", g.cfg.WorkdayEnd, g.cfg.WorkdayStart)
	}
	return start, end, nil
}

// busyRanges collects [start, end) minute ranges of sessions still holding their slot.
func (g *Generator) busyRanges(day time.Time) [][2]int {
	var busy [][2]int
	for _, s := range g.booked.ForDate(day) {
		if !s.Occupying() {
			continue
		}
		start, err := utils.ParseTimeToMinutes(s.StartTime)
		if err != nil {
			logger.Warn("Skipping session with invalid start time", "id", s.ID, "start", s.StartTime)
			continue
		}
		busy = append(busy, [2]int{start, start + s.DurationMin})
	}
	return busy
}

func overlapsAny(start, end int, busy [][2]int) bool {
	for _, b := range busy {
		if start < b[1] && end > b[0] {
			return true
		}
	}
	return false
}
