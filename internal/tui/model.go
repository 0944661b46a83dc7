package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/coachdesk/internal/calendar"
	"github.com/julianstephens/coachdesk/internal/models"
	"github.com/julianstephens/coachdesk/internal/tui/components/day"
)

// SessionSource supplies every stored session.
type SessionSource interface {
	All() []models.Session
}

type Model struct {
	source   SessionSource
	today    time.Time
	selected time.Time
	month    calendar.Month
	keys     KeyMap
	help     help.Model
	dayModel day.Model
	quitting bool
	width    int
	height   int
}

func NewModel(source SessionSource, labels day.Labeler, today time.Time) Model {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	m := Model{
		source:   source,
		today:    today,
		selected: today,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		dayModel: day.New(labels, 40, 10),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted date.
func (m Model) Selected() time.Time {
	return m.selected
}

// Month returns the grid currently on screen.
func (m Model) Month() calendar.Month {
	return m.month
}

func (m *Model) moveDays(n int) {
	m.selected = m.selected.AddDate(0, 0, n)
	m.refresh()
}

func (m *Model) moveMonths(n int) {
	m.selected = calendar.AddMonths(m.selected, n)
	m.refresh()
}

// refresh rebuilds the grid around the selection and reloads the day pane.
func (m *Model) refresh() {
	m.month = calendar.BuildMonth(m.selected, m.today, m.source.All())
	var sessions []models.Session
	if idx := m.month.IndexOf(m.selected); idx >= 0 {
		sessions = m.month.Days[idx].Sessions
	}
	heading := fmt.Sprintf("%s, %s",
		calendar.WeekdayLabels[m.selected.Weekday()],
		m.selected.Format("02.01.2006"))
	m.dayModel.SetDay(heading, sessions)
}
