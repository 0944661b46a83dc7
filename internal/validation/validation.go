package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictUnknownClient       ConflictType = "unknown_client"
	ConflictOverlappingSessions ConflictType = "overlapping_sessions"
	ConflictOutsideWorkday      ConflictType = "outside_workday"
	ConflictOvercommitted       ConflictType = "overcommitted"
	ConflictEndTimeMismatch     ConflictType = "end_time_mismatch"
	ConflictDuplicateID         ConflictType = "duplicate_id"
	ConflictInvalidDateTime     ConflictType = "invalid_datetime"
)

// Conflict represents a detected problem in the session collection
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	SessionIDs  []string // sessions involved
	TimeRange   string   // Human-readable time range (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// ByType returns the conflicts of the given type.
func (vr *ValidationResult) ByType(t ConflictType) []Conflict {
	var out []Conflict
	for _, c := range vr.Conflicts {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// ClientLookup resolves client ids. *catalog.ClientStore satisfies it.
type ClientLookup interface {
	Get(id string) (models.Client, error)
}

// Validator checks sessions against the client catalog and the workday settings
type Validator struct {
	clients  ClientLookup
	settings models.Settings
}

// New creates a new Validator. clients may be nil to skip reference checks.
func New(clients ClientLookup, settings models.Settings) *Validator {
	return &Validator{clients: clients, settings: settings}
}

// ValidateSessions checks every session for malformed fields and dangling client
// references, then checks each day for overlapping bookings, bookings outside
// the workday and days booked beyond 80% of the workday.
func (v *Validator) ValidateSessions(sessions []models.Session) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]bool)
	byDate := make(map[string][]models.Session)
	for _, s := range sessions {
		if seen[s.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate session id: %s", s.ID),
				SessionIDs:  []string{s.ID},
			})
		}
		seen[s.ID] = true

		if v.clients != nil {
			if _, err := v.clients.Get(s.ClientID); err != nil {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnknownClient,
					Description: fmt.Sprintf("Session \"%s\" references unknown client: %s", s.Title, s.ClientID),
					Date:        s.Date,
					SessionIDs:  []string{s.ID},
				})
			}
		}

		if !v.checkDateTime(s, &result) {
			continue
		}
		if s.Occupying() {
			byDate[s.Date] = append(byDate[s.Date], s)
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		v.checkDay(d, byDate[d], &result)
	}

	return result
}

// checkDateTime reports malformed schedule fields and whether the session can take part in day checks.
func (v *Validator) checkDateTime(s models.Session, result *ValidationResult) bool {
	ok := true
	if !utils.ValidateDateFormat(s.Date) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Session \"%s\" has invalid date: %s", s.Title, s.Date),
			SessionIDs:  []string{s.ID},
		})
		ok = false
	}
	if !utils.ValidateTimeFormat(s.StartTime) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Session \"%s\" has invalid start time: %s", s.Title, s.StartTime),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		})
		ok = false
	}
	if s.DurationMin <= 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Session \"%s\" has non-positive duration: %d", s.Title, s.DurationMin),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		})
		ok = false
	}
	if !ok {
		return false
	}

	want, err := utils.AddMinutes(s.StartTime, s.DurationMin)
	if err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidDateTime,
			Description: fmt.Sprintf("Session \"%s\" runs past midnight (%s + %d min)", s.Title, s.StartTime, s.DurationMin),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		})
		return false
	}
	if s.EndTime != want {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEndTimeMismatch,
			Description: fmt.Sprintf("Session \"%s\" ends at %s but %s + %d min is %s", s.Title, s.EndTime, s.StartTime, s.DurationMin, want),
			Date:        s.Date,
			SessionIDs:  []string{s.ID},
		})
	}
	return true
}

func (v *Validator) checkDay(date string, day []models.Session, result *ValidationResult) {
	label := formatDate(date)

	sort.Slice(day, func(i, j int) bool { return day[i].StartTime < day[j].StartTime })

	// O(n²) - a day holds a handful of sessions
	for i := 0; i < len(day); i++ {
		for j := i + 1; j < len(day); j++ {
			s1, s2 := day[i], day[j]
			if sessionsOverlap(s1, s2) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type: ConflictOverlappingSessions,
					Description: fmt.Sprintf("%s: %s-%s \"%s\" overlaps \"%s\"",
						label, s1.StartTime, endOf(s1), s1.Title, s2.Title),
					Date:       date,
					SessionIDs: []string{s1.ID, s2.ID},
					TimeRange:  fmt.Sprintf("%s-%s", s1.StartTime, endOf(s1)),
				})
			}
		}
	}

	dayStart, err1 := utils.ParseTimeToMinutes(v.settings.WorkdayStart)
	dayEnd, err2 := utils.ParseTimeToMinutes(v.settings.WorkdayEnd)
	if err1 != nil || err2 != nil || dayEnd <= dayStart {
		return
	}

	booked := 0
	for _, s := range day {
		start, _ := utils.ParseTimeToMinutes(s.StartTime)
		booked += s.DurationMin
		// the last slot may start at WorkdayEnd, so only the start is bounded
		if start < dayStart || start > dayEnd {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOutsideWorkday,
				Description: fmt.Sprintf("%s: \"%s\" starts at %s outside the workday %s-%s",
					label, s.Title, s.StartTime, v.settings.WorkdayStart, v.settings.WorkdayEnd),
				Date:       date,
				SessionIDs: []string{s.ID},
			})
		}
	}

	window := dayEnd - dayStart
	if booked > int(float64(window)*0.8) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictOvercommitted,
			Description: fmt.Sprintf("%s: %.1fh booked in a %.1fh workday (>80%% capacity)",
				label, float64(booked)/60.0, float64(window)/60.0),
			Date: date,
		})
	}
}

func sessionsOverlap(a, b models.Session) bool {
	aStart, err := utils.ParseTimeToMinutes(a.StartTime)
	if err != nil {
		return false
	}
	bStart, err := utils.ParseTimeToMinutes(b.StartTime)
	if err != nil {
		return false
	}
	return aStart < bStart+b.DurationMin && aStart+a.DurationMin > bStart
}

func endOf(s models.Session) string {
	end, err := utils.AddMinutes(s.StartTime, s.DurationMin)
	if err != nil {
		return s.EndTime
	}
	return end
}

func formatDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format("Mon Jan 2")
}
