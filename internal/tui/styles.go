package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
)

type styles struct {
	title     lipgloss.Style
	subtitle  lipgloss.Style
	label     lipgloss.Style
	focused   lipgloss.Style
	option    lipgloss.Style
	selected  lipgloss.Style
	tip       lipgloss.Style
	success   lipgloss.Style
	errorText lipgloss.Style
	code      lipgloss.Style
	help      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		subtitle:  lipgloss.NewStyle().Foreground(colorMuted),
		label:     lipgloss.NewStyle().Bold(true),
		focused:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		option:    lipgloss.NewStyle().Foreground(colorMuted),
		selected:  lipgloss.NewStyle().Bold(true).Underline(true),
		tip:       lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		success:   lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(colorError),
		code: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		help: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
