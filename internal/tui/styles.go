package tui

import "github.com/charmbracelet/lipgloss"

// BannerStyle styles the welcome banner at the top of the session.
func BannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// DividerStyle dims the divider line between command results.
func DividerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// EchoStyle dims the echoed command line in the transcript.
func EchoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}

// PromptStyle styles the command prompt label.
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
}
