package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary = lipgloss.Color("4")
	colorSuccess = lipgloss.Color("2")
	colorWarning = lipgloss.Color("3")
	colorDanger  = lipgloss.Color("1")
	colorMuted   = lipgloss.Color("8")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	listItemStyle = lipgloss.NewStyle()
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	dueStyle  = lipgloss.NewStyle().Foreground(colorDanger)
	dateStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	okStyle    = lipgloss.NewStyle().Foreground(colorSuccess)

	searchLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colorMuted)
)
