package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Step announcement styling
	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	// Subtle text styling for no-op notices
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)
