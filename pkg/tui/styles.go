package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	terminalTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	chatTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	agentTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)

	otherTag = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)
)
