package tui

import (
	"strings"
	"testing"

	"sift/internal/gesture"
	"sift/internal/model"
)

func TestNormCellConversion(t *testing.T) {
	m := testModel(t, 2)
	w, h := m.canvasSize()

	x, y := m.normToCell(0, 0)
	if x != 0 || y != 0 {
		t.Fatalf("origin: (%d,%d)", x, y)
	}
	x, y = m.normToCell(1, 1)
	if x != w-1 || y != h-1 {
		t.Fatalf("far corner: (%d,%d), canvas %dx%d", x, y, w, h)
	}

	px, py := m.cellToNorm(w-1, h-1)
	if px != 1 || py != 1 {
		t.Fatalf("cellToNorm far corner: (%v,%v)", px, py)
	}
}

func TestDockHitTest(t *testing.T) {
	m := testModel(t, 2)
	_, h := m.canvasSize()
	_, oy := m.canvasOrigin()
	mid := oy + h/2

	if got := m.dockAt(2, mid); got != 0 {
		t.Fatalf("left edge: %d", got)
	}
	if got := m.dockAt(m.width-2, mid); got != 1 {
		t.Fatalf("right edge: %d", got)
	}
	// Fan-out 2 has no up/down docks.
	if got := m.dockAt(m.width/2, oy-1); got != -1 {
		t.Fatalf("top row with fan-out 2: %d", got)
	}

	m4 := testModel(t, 4)
	m4.classifier = gesture.Classifier{Kind: gesture.PolicyAxisDominant}
	_, h4 := m4.canvasSize()
	_, oy4 := m4.canvasOrigin()
	if got := m4.dockAt(m4.width/2, oy4-1); got != 2 {
		t.Fatalf("top dock: %d", got)
	}
	if got := m4.dockAt(m4.width/2, oy4+h4); got != 3 {
		t.Fatalf("bottom dock: %d", got)
	}
}

func TestDockHitTestDiagonal(t *testing.T) {
	m := testModel(t, 4)
	m.classifier = gesture.Classifier{Kind: gesture.PolicyDiagonalQuadrant}
	_, h := m.canvasSize()
	_, oy := m.canvasOrigin()

	if got := m.dockAt(3, oy-1); got != 0 {
		t.Fatalf("upper-left corner: %d", got)
	}
	if got := m.dockAt(m.width-3, oy-1); got != 1 {
		t.Fatalf("upper-right corner: %d", got)
	}
	if got := m.dockAt(3, oy+h); got != 2 {
		t.Fatalf("lower-left corner: %d", got)
	}
	if got := m.dockAt(m.width-3, oy+h); got != 3 {
		t.Fatalf("lower-right corner: %d", got)
	}
}

func TestCardHitTest(t *testing.T) {
	m := testModel(t, 2)
	m.root.Cards = []model.Card{{ID: "card-hit", Text: "target", PX: 0.5, PY: 0.5}}

	cx, cy := m.normToCell(0.5, 0.5)
	ox, oy := m.canvasOrigin()

	id, ok := m.cardAt(ox+cx, oy+cy)
	if !ok || id != "card-hit" {
		t.Fatalf("hit: %q %v", id, ok)
	}
	// Chip text extends right of the anchor.
	id, ok = m.cardAt(ox+cx+3, oy+cy)
	if !ok || id != "card-hit" {
		t.Fatalf("chip body hit: %q %v", id, ok)
	}
	if _, ok := m.cardAt(ox+cx, oy+cy+1); ok {
		t.Fatalf("row below should miss")
	}
}

func TestViewDeskRendersCardsAndDocks(t *testing.T) {
	m := testModel(t, 2)
	m.root.Cards = []model.Card{{ID: "card-1", Text: "hello", PX: 0.5, PY: 0.5}}

	out := m.viewDesk()
	if !strings.Contains(out, "hello") {
		t.Fatalf("card text missing from desk:\n%s", out)
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Fatalf("dock labels missing:\n%s", out)
	}
}

func TestDisplacementUsesPointScale(t *testing.T) {
	m := testModel(t, 2)
	m.drag = dragState{active: true, startX: 10, startY: 10}

	dx, dy := m.displacement(22, 4)
	if dx != 12*pointsPerCellX || dy != -6*pointsPerCellY {
		t.Fatalf("displacement: (%v,%v)", dx, dy)
	}
}

func TestFlingTarget(t *testing.T) {
	c := model.Card{PX: 0.5, PY: 0.4}
	if x, _ := flingTarget(gesture.DirRight, c); x <= 1 {
		t.Fatalf("right fling should leave the desk: %v", x)
	}
	if _, y := flingTarget(gesture.DirUp, c); y >= 0 {
		t.Fatalf("up fling should leave the desk: %v", y)
	}
	if x, y := flingTarget(gesture.DirDownLeft, c); x >= 0 || y <= 1 {
		t.Fatalf("down-left fling: (%v,%v)", x, y)
	}
}
