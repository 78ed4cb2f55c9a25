package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sift/internal/gesture"
	"sift/internal/model"
	"sift/internal/mutate"
)

// dragState tracks the single live gesture. Only one card can be dragged at
// a time; everything here is rebuilt from scratch on the next press.
type dragState struct {
	active bool
	cardID string

	startX, startY int // press cell
	lastX, lastY   int // latest motion sample
	prevX, prevY   int // previous motion sample, for exit velocity
	lastT, prevT   time.Time
}

// flingDoneMsg is the delayed second phase of a committed fling: the actual
// ownership-changing move, after the suck-in animation has played.
type flingDoneMsg struct {
	from   model.Path
	cardID string
	child  int
}

const (
	// flingDelay matches the suck-in animation duration.
	flingDelay = 190 * time.Millisecond

	// flickLookahead extrapolates the release displacement forward using
	// exit velocity, approximating a predicted gesture endpoint.
	flickLookahead = 0.2 // seconds
)

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.mousePress(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return m.mouseMotion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return m.mouseRelease(msg.X, msg.Y)
	}
	return m, nil
}

func (m appModel) mousePress(x, y int) (tea.Model, tea.Cmd) {
	if dock := m.dockAt(x, y); dock >= 0 && !m.drag.active {
		m.path = m.path.Child(dock)
		m.selected = 0
		return m, nil
	}

	if m.layout == mutate.LayoutStack {
		// No desk in the stack variant; clicking a row brings it to front.
		if id, ok := m.stackCardAt(y); ok {
			root, changed := mutate.PickToFront(m.root, m.path, id)
			if changed {
				m.applyMutation(root)
				m.selected = 0
			}
		}
		return m, nil
	}

	if id, ok := m.cardAt(x, y); ok {
		now := time.Now()
		m.drag = dragState{
			active: true,
			cardID: id,
			startX: x, startY: y,
			lastX: x, lastY: y,
			prevX: x, prevY: y,
			lastT: now, prevT: now,
		}
		m.hoverChild = -1
	}
	return m, nil
}

func (m appModel) mouseMotion(x, y int) (tea.Model, tea.Cmd) {
	if !m.drag.active {
		return m, nil
	}
	m.drag.prevX, m.drag.prevY = m.drag.lastX, m.drag.lastY
	m.drag.prevT = m.drag.lastT
	m.drag.lastX, m.drag.lastY = x, y
	m.drag.lastT = time.Now()

	// Reposition instantaneously while the drag is live; animating here
	// would visibly lag the pointer.
	ox, oy := m.canvasOrigin()
	px, py := m.cellToNorm(x-ox, y-oy)
	if root, changed := mutate.RepositionCard(m.root, m.path, m.drag.cardID, px, py); changed {
		m.applyMutation(root)
	}

	// Preview where a release right now would file the card.
	dx, dy := m.displacement(x, y)
	d := m.classifier.Classify(dx, dy)
	if d.Outcome == gesture.OutcomeFile && d.Child < len(m.currentBox().Children) {
		m.hoverChild = d.Child
	} else {
		m.hoverChild = -1
	}
	return m, nil
}

func (m appModel) mouseRelease(x, y int) (tea.Model, tea.Cmd) {
	if !m.drag.active {
		return m, nil
	}
	drag := m.drag
	m.drag = dragState{}
	m.hoverChild = -1

	dx, dy := m.displacement(x, y)
	pdx, pdy := dx, dy
	if dt := drag.lastT.Sub(drag.prevT).Seconds(); dt > 0 {
		vx := float64(drag.lastX-drag.prevX) * pointsPerCellX / dt
		vy := float64(drag.lastY-drag.prevY) * pointsPerCellY / dt
		pdx = dx + vx*flickLookahead
		pdy = dy + vy*flickLookahead
	}

	d := m.classifier.ClassifyFlick(dx, dy, pdx, pdy)
	switch d.Outcome {
	case gesture.OutcomeFile:
		box := m.currentBox()
		if d.Child >= len(box.Children) {
			return m, nil
		}
		// Phase one: park the card off screen for the suck-in effect. The
		// actual move happens after the animation delay and re-validates.
		if i := box.FindCard(drag.cardID); i >= 0 {
			tx, ty := flingTarget(d.Dir, box.Cards[i])
			if root, changed := mutate.FlingCard(m.root, m.path, drag.cardID, tx, ty); changed {
				m.applyMutation(root)
			}
		}
		from := m.path.Clone()
		return m, tea.Tick(flingDelay, func(time.Time) tea.Msg {
			return flingDoneMsg{from: from, cardID: drag.cardID, child: d.Child}
		})

	case gesture.OutcomeKeep:
		// Two-way "keep": same box, reordered to the end.
		if root, changed := mutate.MoveCard(m.root, m.path, drag.cardID, m.path); changed {
			m.applyMutation(root)
		}
	}
	// Cancel: the live repositions already applied (clamped); the card
	// simply stays where the drag left it.
	return m, nil
}

// displacement converts the drag vector from cells to desk points.
func (m appModel) displacement(x, y int) (float64, float64) {
	return float64(x-m.drag.startX) * pointsPerCellX,
		float64(y-m.drag.startY) * pointsPerCellY
}

// flingTarget is the off-screen position in the committed direction.
func flingTarget(dir gesture.Direction, c model.Card) (float64, float64) {
	switch dir {
	case gesture.DirLeft:
		return -0.4, c.PY
	case gesture.DirRight:
		return 1.4, c.PY
	case gesture.DirUp:
		return c.PX, -0.4
	case gesture.DirDown:
		return c.PX, 1.4
	case gesture.DirUpLeft:
		return -0.4, -0.4
	case gesture.DirUpRight:
		return 1.4, -0.4
	case gesture.DirDownLeft:
		return -0.4, 1.4
	case gesture.DirDownRight:
		return 1.4, 1.4
	default:
		return c.PX, c.PY
	}
}
