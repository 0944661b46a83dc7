package models

import "time"

// CalendarDay is one derived cell of a month grid
type CalendarDay struct {
	Date     time.Time
	InMonth  bool
	IsToday  bool
	Sessions []Session
}
