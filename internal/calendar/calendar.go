package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/coachdesk/internal/constants"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

var monthNames = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// WeekdayLabels are the column headers, Sunday first.
var WeekdayLabels = [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// Month is a fixed six-week grid covering a calendar month.
type Month struct {
	Year  int
	Month time.Month
	Days  []models.CalendarDay
}

// BuildMonth lays out the month containing ref. The grid starts on the Sunday
// on or before the 1st and always holds 42 cells. Cells are midnight values in
// ref's location.
func BuildMonth(ref, today time.Time, sessions []models.Session) Month {
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	byDate := make(map[string][]models.Session)
	for _, s := range sessions {
		byDate[s.Date] = append(byDate[s.Date], s)
	}
	for key := range byDate {
		day := byDate[key]
		sort.SliceStable(day, func(i, j int) bool { return day[i].StartTime < day[j].StartTime })
	}

	todayKey := utils.DateKey(today)
	days := make([]models.CalendarDay, constants.CalendarCells)
	for i := range days {
		date := start.AddDate(0, 0, i)
		key := utils.DateKey(date)
		days[i] = models.CalendarDay{
			Date:     date,
			InMonth:  date.Month() == first.Month(),
			IsToday:  key == todayKey,
			Sessions: byDate[key],
		}
	}

	return Month{Year: first.Year(), Month: first.Month(), Days: days}
}

// Weeks splits the grid into rows of seven days.
func (m Month) Weeks() [][]models.CalendarDay {
	weeks := make([][]models.CalendarDay, 0, constants.CalendarWeeks)
	for i := 0; i+7 <= len(m.Days); i += 7 {
		weeks = append(weeks, m.Days[i:i+7])
	}
	return weeks
}

// IndexOf returns the cell index holding date, or -1 when the grid does not cover it.
func (m Month) IndexOf(date time.Time) int {
	key := utils.DateKey(date)
	for i, d := range m.Days {
		if utils.DateKey(d.Date) == key {
			return i
		}
	}
	return -1
}

// Title renders the month heading, e.g. "August 2025".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", monthNames[m.Month-1], m.Year)
}

// AddMonths moves ref by n months. The day of month is clamped to the last day
// of the target month, so Jan 31 + 1 is the last day of February.
func AddMonths(ref time.Time, n int) time.Time {
	y, mo, d := ref.Date()
	target := time.Date(y, mo+time.Month(n), 1, 0, 0, 0, 0, ref.Location())
	if last := utils.DaysIn(target.Year(), target.Month()); d > last {
		d = last
	}
	h, mi, s := ref.Clock()
	return time.Date(target.Year(), target.Month(), d, h, mi, s, ref.Nanosecond(), ref.Location())
}
