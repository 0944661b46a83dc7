package constants

const (
	// CalendarWeeks and CalendarCells fix the month grid at six full weeks
	CalendarWeeks = 6
	CalendarCells = CalendarWeeks * 7
)
