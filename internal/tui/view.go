package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/coachdesk/internal/calendar"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.viewGrid(),
		dayPaneStyle.Render(m.dayModel.View()),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(m.month.Title()),
		body,
		m.help.View(m.keys),
	)
}

func (m Model) viewGrid() string {
	var rows []string

	headers := make([]string, 0, len(calendar.WeekdayLabels))
	for _, label := range calendar.WeekdayLabels {
		headers = append(headers, headerStyle.Render(label))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	selectedKey := utils.DateKey(m.selected)
	for _, week := range m.month.Weeks() {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			cells = append(cells, m.viewCell(d, utils.DateKey(d.Date) == selectedKey))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

func (m Model) viewCell(d models.CalendarDay, selected bool) string {
	label := fmt.Sprintf("%2d", d.Date.Day())
	if n := countOccupying(d.Sessions); n > 0 {
		label += fmt.Sprintf("•%d", n)
	}

	switch {
	case selected:
		return selectedStyle.Render(label)
	case d.IsToday:
		return todayStyle.Render(label)
	case !d.InMonth:
		return outsideStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}

func countOccupying(sessions []models.Session) int {
	n := 0
	for _, s := range sessions {
		if s.Occupying() {
			n++
		}
	}
	return n
}
