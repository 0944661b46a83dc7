package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(cellWidth).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	outsideStyle = cellStyle.
			Foreground(lipgloss.Color("238"))

	todayStyle = cellStyle.
			Foreground(lipgloss.Color("42")).
			Bold(true)

	selectedStyle = cellStyle.
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Bold(true)

	dayPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

const cellWidth = 6
