package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sift/internal/mutate"
)

// Stack layout: cards are an ordered list, index 0 on top ("current").
// No desk, no dragging; filing uses alt+digit on the selected card.

func (m appModel) stackRows() int {
	h := m.height - 4 // header, dock hint, input, footer
	if h < 3 {
		h = 3
	}
	return h
}

func (m appModel) viewStack() string {
	box := m.currentBox()
	rows := m.stackRows()

	var lines []string
	for i, c := range box.Cards {
		if i >= rows {
			break
		}
		mark := "  "
		if i == 0 {
			mark = "▸ "
		}
		line := mark + c.Text
		if i == m.selected {
			line = selectedRowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(box.Cards) == 0 {
		lines = append(lines, faintIfDark(footerStyle).Render("  no cards"))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	var docks []string
	for i, ch := range box.Children {
		docks = append(docks, dockStyle.Render("alt+"+string(rune('1'+i))+": "+ch.Name))
	}
	hint := ""
	if len(docks) > 0 {
		hint = "file selected  " + strings.Join(docks, "  ")
	}
	lines = append(lines, faintIfDark(footerStyle).Render(hint))
	return strings.Join(lines, "\n")
}

// stackCardAt maps an absolute row to a card id (rows start under the header).
func (m appModel) stackCardAt(y int) (string, bool) {
	box := m.currentBox()
	i := y - 1
	if i < 0 || i >= len(box.Cards) || i >= m.stackRows() {
		return "", false
	}
	return box.Cards[i].ID, true
}

func (m appModel) updateStackKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	box := m.currentBox()

	switch msg.String() {
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return true, m, nil
	case "down":
		if m.selected < len(box.Cards)-1 {
			m.selected++
		}
		return true, m, nil
	case "ctrl+p":
		if m.selected < len(box.Cards) {
			root, changed := mutate.PickToFront(m.root, m.path, box.Cards[m.selected].ID)
			if changed {
				m.applyMutation(root)
				m.selected = 0
			}
		}
		return true, m, nil
	case "alt+1", "alt+2", "alt+3", "alt+4":
		i := int(msg.String()[4] - '1')
		if m.selected < len(box.Cards) {
			root, changed := mutate.MoveCardToChild(m.root, m.path, box.Cards[m.selected].ID, i)
			if changed {
				m.applyMutation(root)
				if m.selected > 0 {
					m.selected--
				}
			}
		}
		return true, m, nil
	}
	return false, m, nil
}
