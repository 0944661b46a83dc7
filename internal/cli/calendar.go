package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/coachdesk/internal/calendar"
	"github.com/julianstephens/coachdesk/internal/models"
)

var (
	calHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	calWeekdayStyle = lipgloss.NewStyle().Width(7).Align(lipgloss.Center).Foreground(lipgloss.Color("240"))
	calCellStyle    = lipgloss.NewStyle().Width(7).Align(lipgloss.Center)
	calOutsideStyle = calCellStyle.Foreground(lipgloss.Color("238"))
	calBookedStyle  = calCellStyle.Foreground(lipgloss.Color("86")).Bold(true)
	calTodayStyle   = calCellStyle.Reverse(true)
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ref := ctx.today()
	if c.Month != "" {
		t, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
		ref = t
	}

	month := calendar.BuildMonth(ref, ctx.today(), ctx.Sessions.All())
	ctx.println(renderMonth(month))
	return nil
}

// renderMonth draws the grid with a booking count under each day number.
func renderMonth(m calendar.Month) string {
	var b strings.Builder
	b.WriteString(calHeaderStyle.Render(m.Title()))
	b.WriteString("\n")

	headers := make([]string, 0, 7)
	for _, label := range calendar.WeekdayLabels {
		headers = append(headers, calWeekdayStyle.Render(label))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for _, week := range m.Weeks() {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, renderCell(day))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCell(day models.CalendarDay) string {
	label := fmt.Sprintf("%2d", day.Date.Day())
	if n := occupying(day.Sessions); n > 0 {
		label = fmt.Sprintf("%2d•%d", day.Date.Day(), n)
	}

	switch {
	case day.IsToday:
		return calTodayStyle.Render(label)
	case !day.InMonth:
		return calOutsideStyle.Render(label)
	case len(day.Sessions) > 0:
		return calBookedStyle.Render(label)
	default:
		return calCellStyle.Render(label)
	}
}

func occupying(sessions []models.Session) int {
	n := 0
	for _, s := range sessions {
		if s.Occupying() {
			n++
		}
	}
	return n
}
