package tracker

import (
	"github.com/charmbracelet/lipgloss"
)

type style struct {
	base      lipgloss.Style
	title     lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	err       lipgloss.Style
	date      lipgloss.Style
}

func newStyle(dark bool) style {
	accent := lipgloss.Color("#5A56E0")
	muted := lipgloss.Color("#6C6C6C")

	if dark {
		accent = lipgloss.Color("#B4A7FF")
		muted = lipgloss.Color("#A0A0A0")
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, 2),
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Foreground(accent),
		hint:      lipgloss.NewStyle().Foreground(muted),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		date:      lipgloss.NewStyle().Bold(true).Underline(true),
	}
}
