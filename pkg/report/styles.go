package report

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("#10B981")
	colorRed   = lipgloss.Color("#EF4444")
	colorAmber = lipgloss.Color("#F59E0B")
	colorGray  = lipgloss.Color("#6B7280")

	headerStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(colorGray)
	firedStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	quietStyle   = lipgloss.NewStyle().Foreground(colorGray)
	detectStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	absentStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorAmber)
)
