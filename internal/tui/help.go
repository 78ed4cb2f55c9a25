package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# sift

Cards live on the **desk** of the box you have open. Boxes named on the
edges are **docks**: flick a card onto one to file it there.

## Mouse

- drag a card to reposition it
- flick past the threshold toward a dock to file the card into that box
- click a dock to open that child box

## Keys

- type + ` + "`enter`" + ` — add a card (blank text is ignored)
- ` + "`1`–`4`" + ` — open child box (when the input is empty)
- ` + "`esc`" + ` — clear input / go up / quit at the root
- ` + "`ctrl+r`" + ` — reset to the default tree (clears saved state)
- ` + "`?`" + ` — toggle this help

## Stack layout

- ` + "`up`/`down`" + ` — select a card, ` + "`ctrl+p`" + ` — bring to front
- ` + "`alt+1`–`alt+4`" + ` — file the selected card
`

func (m appModel) viewHelp() string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n") + "\n" + footerStyle.Render("esc: close help")
}
