package tui

import (
	"strings"

	"sift/internal/gesture"
	"sift/internal/model"
)

// Desk geometry.
//
// The body between the breadcrumb and the input bar is the desk: a top dock
// row, the canvas where cards float at their normalized positions, and a
// bottom dock row. Left/right docks live in the canvas side margins.
const (
	deskSideCols = 8 // side margin columns holding the left/right dock labels

	// Terminal cells are roughly twice as tall as wide; converting cells to
	// desk points with a 1:2 ratio keeps the 120-point commit threshold
	// direction-neutral.
	pointsPerCellX = 10.0
	pointsPerCellY = 20.0
)

// canvasSize returns the inner desk area in cells.
func (m appModel) canvasSize() (int, int) {
	w := m.width - 2*deskSideCols
	h := m.height - 7 // header, top dock, bottom dock, input, footer, slack
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

// canvasOrigin returns the absolute cell of the canvas top-left corner.
func (m appModel) canvasOrigin() (int, int) {
	return deskSideCols, 2 // row 0 header, row 1 top dock row
}

func (m appModel) normToCell(px, py float64) (int, int) {
	w, h := m.canvasSize()
	x := int(px * float64(w-1))
	y := int(py * float64(h-1))
	return x, y
}

func (m appModel) cellToNorm(x, y int) (float64, float64) {
	w, h := m.canvasSize()
	return float64(x) / float64(w-1), float64(y) / float64(h-1)
}

const chipMaxRunes = 18

func chip(c model.Card, dragging bool) string {
	text := c.Text
	if rs := []rune(text); len(rs) > chipMaxRunes {
		text = string(rs[:chipMaxRunes-1]) + "…"
	}
	if dragging {
		return "«" + text + "»"
	}
	return "▪ " + text
}

// viewDesk renders the current box's desk: docks on the edges, cards at
// their positions, the dragged card on top.
func (m appModel) viewDesk() string {
	box := m.currentBox()
	w, h := m.canvasSize()

	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", w))
	}
	place := func(c model.Card, dragging bool) {
		x, y := m.normToCell(c.PX, c.PY)
		if y < 0 || y >= h {
			return
		}
		for i, r := range []rune(chip(c, dragging)) {
			if x+i < 0 || x+i >= w {
				break
			}
			grid[y][x+i] = r
		}
	}
	for _, c := range box.Cards {
		if m.drag.active && c.ID == m.drag.cardID {
			continue
		}
		place(c, false)
	}
	if m.drag.active {
		if i := box.FindCard(m.drag.cardID); i >= 0 {
			place(box.Cards[i], true)
		}
	}

	corner := m.classifier.Kind == gesture.PolicyDiagonalQuadrant

	lines := make([]string, 0, h+2)
	lines = append(lines, m.dockRowTop(corner))
	for y := 0; y < h; y++ {
		left := strings.Repeat(" ", deskSideCols)
		right := strings.Repeat(" ", deskSideCols)
		if !corner && y == h/2 {
			left = padRight(m.dockLabel(0), deskSideCols)
			right = padLeft(m.dockLabel(1), deskSideCols)
		}
		lines = append(lines, left+string(grid[y])+right)
	}
	lines = append(lines, m.dockRowBottom(corner))
	return strings.Join(lines, "\n")
}

// dockRowTop renders the row above the canvas: the up dock (fan-out 4), the
// "keep" hint (two-way), or the two upper corner docks (diagonal policy).
func (m appModel) dockRowTop(corner bool) string {
	if corner {
		return spreadRow(m.width, m.dockLabel(0), m.dockLabel(1))
	}
	switch {
	case m.classifier.Kind == gesture.PolicyTwoWay && len(m.currentBox().Cards) > 0:
		return centerRow(m.width, faintIfDark(dockStyle).Render("↑ keep"))
	case m.fanOut >= 4:
		return centerRow(m.width, m.dockLabel(2))
	default:
		return ""
	}
}

func (m appModel) dockRowBottom(corner bool) string {
	if corner {
		return spreadRow(m.width, m.dockLabel(2), m.dockLabel(3))
	}
	if m.fanOut >= 4 {
		return centerRow(m.width, m.dockLabel(3))
	}
	return ""
}

// dockLabel renders the dock for child i, highlighted while a live drag
// points at it. Missing children render empty.
func (m appModel) dockLabel(i int) string {
	box := m.currentBox()
	if i < 0 || i >= len(box.Children) {
		return ""
	}
	var label string
	if m.classifier.Kind == gesture.PolicyDiagonalQuadrant {
		marks := []string{"◤", "◥", "◣", "◢"}
		label = marks[i] + " " + box.Children[i].Name
	} else {
		switch i {
		case 0:
			label = "◀ " + box.Children[i].Name
		case 1:
			label = box.Children[i].Name + " ▶"
		case 2:
			label = "▲ " + box.Children[i].Name
		default:
			label = "▼ " + box.Children[i].Name
		}
	}
	if m.hoverChild == i {
		return dockHotStyle.Render(label)
	}
	return dockStyle.Render(label)
}

// dockAt hit-tests an absolute cell against the dock affordances, returning
// the child index or -1. Clicking a dock navigates into that child.
func (m appModel) dockAt(x, y int) int {
	box := m.currentBox()
	_, h := m.canvasSize()
	_, oy := m.canvasOrigin()
	corner := m.classifier.Kind == gesture.PolicyDiagonalQuadrant

	within := func(i int) int {
		if i >= 0 && i < len(box.Children) {
			return i
		}
		return -1
	}

	switch {
	case y == oy-1: // top dock row
		if corner {
			if x < m.width/2 {
				return within(0)
			}
			return within(1)
		}
		return within(2)
	case y == oy+h: // bottom dock row
		if corner {
			if x < m.width/2 {
				return within(2)
			}
			return within(3)
		}
		return within(3)
	case !corner && y >= oy && y < oy+h:
		if x < deskSideCols {
			return within(0)
		}
		if x >= m.width-deskSideCols {
			return within(1)
		}
	}
	return -1
}

// cardAt hit-tests an absolute cell against card chips, topmost first.
func (m appModel) cardAt(x, y int) (string, bool) {
	box := m.currentBox()
	ox, oy := m.canvasOrigin()
	cx, cy := x-ox, y-oy
	for i := len(box.Cards) - 1; i >= 0; i-- {
		c := box.Cards[i]
		px, py := m.normToCell(c.PX, c.PY)
		width := len([]rune(chip(c, false)))
		if cy == py && cx >= px && cx < px+width {
			return c.ID, true
		}
	}
	return "", false
}

func centerRow(width int, s string) string {
	pad := (width - visibleWidth(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func spreadRow(width int, left, right string) string {
	gap := width - visibleWidth(left) - visibleWidth(right) - 2*deskSideCols
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", deskSideCols) + left + strings.Repeat(" ", gap) + right
}
