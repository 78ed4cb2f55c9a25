package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor pairs and "faint" styling is only
// applied on dark backgrounds (faint on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func hasDarkBackground() bool {
	return termenv.HasDarkBackground()
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if hasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted  = ac("240", "243")
	colorAccent = ac("25", "39")
	colorHot    = ac("160", "203")

	breadcrumbStyle = lipgloss.NewStyle().Bold(true)
	pathSegStyle    = lipgloss.NewStyle().Foreground(colorMuted)

	dockStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	dockHotStyle = lipgloss.NewStyle().Foreground(colorHot).Bold(true).Underline(true)

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	footerStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
