package main

import "github.com/charmbracelet/lipgloss"

// CLI stylesheet. Kept in one place so command output stays consistent.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffc799"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a0a0a0"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff"))

	modeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#99ffe4"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffc799"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8080"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#505050")).
			Padding(0, 1)
)

// scoreStyle colors a 0-10 score by band.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score <= 3.0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#99ffe4"))
	case score <= 6.0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#ffc799"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#ff8080"))
	}
}
