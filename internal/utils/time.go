package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/coachdesk/internal/constants"
)

// DateKey formats t as the YYYY-MM-DD key sessions and calendar cells are matched on.
// The key uses t's own location.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a date string (YYYY-MM-DD) at midnight in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes from midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes returns timeStr shifted by delta minutes. Results at or past midnight are an error.
func AddMinutes(timeStr string, delta int) (string, error) {
	start, err := ParseTimeToMinutes(timeStr)
	if err != nil {
		return "", fmt.Errorf("invalid time format: %w", err)
	}
	end := start + delta
	if end < 0 || end >= constants.MinutesPerDay {
		return "", fmt.Errorf("%s + %d minutes leaves the day", timeStr, delta)
	}
	return FormatMinutes(end), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// StartOfDay drops the clock part of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compares the calendar dates of a and b, ignoring clock time.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
