package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// ANSI-aware cell helpers. Dock labels carry escape sequences, so plain
// len() would misalign the desk rows.

func visibleWidth(s string) int {
	return xansi.StringWidth(s)
}

// padRight forces s to exactly width columns, truncating with an ellipsis.
func padRight(s string, width int) string {
	w := visibleWidth(s)
	if w > width {
		if width <= 1 {
			return xansi.Cut(s, 0, width)
		}
		return xansi.Cut(s, 0, width-1) + "…"
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := visibleWidth(s)
	if w > width {
		if width <= 1 {
			return xansi.Cut(s, 0, width)
		}
		return xansi.Cut(s, 0, width-1) + "…"
	}
	return strings.Repeat(" ", width-w) + s
}
