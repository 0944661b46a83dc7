package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/coachdesk/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Labeler resolves a client id to a display name.
type Labeler interface {
	Label(clientID string) string
}

type Model struct {
	viewport viewport.Model
	labels   Labeler
	heading  string
	sessions []models.Session
	width    int
	height   int
}

func New(labels Labeler, width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		labels:   labels,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetDay replaces the listed sessions and scrolls back to the top.
func (m *Model) SetDay(heading string, sessions []models.Session) {
	m.heading = heading
	m.sessions = sessions
	m.Render()
	m.viewport.GotoTop()
}

func (m Model) Sessions() []models.Session {
	return m.sessions
}

func (m *Model) Render() {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.heading))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString(statusStyle.Render("Keine Termine"))
		m.viewport.SetContent(b.String())
		return
	}

	for _, s := range m.sessions {
		client := s.ClientID
		if m.labels != nil {
			client = m.labels.Label(s.ClientID)
		}
		line := fmt.Sprintf("%s %s %s\n",
			timeStyle.Render(fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)),
			titleStyle.Render(fmt.Sprintf("%s (%s)", s.Title, client)),
			statusStyle.Render(string(s.Status)),
		)
		b.WriteString(line)
	}
	m.viewport.SetContent(b.String())
}
