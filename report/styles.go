package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// paint renders s with style when color output is enabled.
func (o Options) paint(style lipgloss.Style, s string) string {
	if !o.Color {
		return s
	}
	return style.Render(s)
}
