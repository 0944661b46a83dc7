package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/coachdesk/internal/availability"
	"github.com/julianstephens/coachdesk/internal/models"
)

type SlotsCmd struct {
	Date string `arg:"" optional:"" help:"Day to list (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
	Mode string `help:"Override the availability mode (blackout|conflict-aware)."`
}

func (c *SlotsCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	day, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}

	cfg := availability.FromSettings(ctx.Settings)
	if c.Mode != "" {
		cfg.Mode = models.AvailabilityMode(c.Mode)
	}
	slots, err := availability.New(cfg, ctx.Sessions).Slots(day)
	if err != nil {
		return fmt.Errorf("invalid availability settings: %w", err)
	}

	mode := cfg.Mode
	if mode == "" {
		mode = models.AvailabilityBlackout
	}
	ctx.printf("Free slots on %s (%s):\n", day.Format("Mon 2006-01-02"), mode)
	if len(slots) == 0 {
		ctx.println("  none")
		return nil
	}
	// six per row
	for i := 0; i < len(slots); i += 6 {
		end := i + 6
		if end > len(slots) {
			end = len(slots)
		}
		ctx.printf("  %s\n", strings.Join(slots[i:end], "  "))
	}
	return nil
}
