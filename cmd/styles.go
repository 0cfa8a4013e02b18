package cmd

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FC5200")) // Strava orange

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D14D41"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6F6E69"))
)
