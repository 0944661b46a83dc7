package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dayModel.SetSize(msg.Width-cellWidth*7-6, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.moveDays(-1)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.moveDays(1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveDays(-7)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveDays(7)
			return m, nil
		case key.Matches(msg, m.keys.NextMonth):
			m.moveMonths(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMonth):
			m.moveMonths(-1)
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.selected = m.today
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dayModel, cmd = m.dayModel.Update(msg)
	return m, cmd
}
