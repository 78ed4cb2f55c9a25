package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sift/internal/gesture"
	"sift/internal/model"
	"sift/internal/mutate"
	"sift/internal/store"
)

type appModel struct {
	store  store.Store
	saver  *store.Saver
	logger *zap.Logger

	root model.Box
	path model.Path

	fanOut     int
	layout     mutate.Layout
	classifier gesture.Classifier

	width  int
	height int

	input    textinput.Model
	selected int // stack layout: selected card index

	showHelp bool

	drag       dragState
	hoverChild int // dock highlighted under a live drag; -1 none
}

func newAppModel(opts Options) appModel {
	lg := store.NewLogger(opts.Store)

	in := textinput.New()
	in.Placeholder = "new card…"
	in.Prompt = "> "
	in.CharLimit = 140
	in.Focus()

	m := appModel{
		store:      opts.Store,
		saver:      store.NewSaver(opts.Store, lg),
		logger:     lg,
		root:       opts.Root,
		fanOut:     opts.FanOut,
		layout:     opts.Layout,
		classifier: opts.Classifier,
		input:      in,
		hoverChild: -1,
	}

	// Restore the last open box, best effort.
	if st, err := opts.Store.LoadTUIState(); err == nil && len(st.Path) > 0 {
		p := model.Path(st.Path)
		if model.Valid(m.root, p) {
			m.path = p
		}
	}
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(16, m.width-6)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case flingDoneMsg:
		// Second phase of a committed fling. Re-locate the card by id: a
		// reset or another mutation may have raced the animation delay, in
		// which case this is a silent no-op.
		root, changed := mutate.MoveCardToChild(m.root, msg.from, msg.cardID, msg.child)
		if changed {
			m.applyMutation(root)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputEmpty := strings.TrimSpace(m.input.Value()) == ""

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		switch {
		case m.showHelp:
			m.showHelp = false
		case !inputEmpty:
			m.input.SetValue("")
		case len(m.path) > 0:
			m.path = m.path.Parent()
			m.selected = 0
		default:
			return m, tea.Quit
		}
		return m, nil

	case "enter":
		root, _, changed := mutate.AddCard(m.root, m.path, m.input.Value(), m.layout)
		if changed {
			m.applyMutation(root)
			m.selected = 0
		}
		m.input.SetValue("")
		return m, nil

	case "ctrl+r":
		// Reset: drop any pending debounced save first so the cleared
		// store isn't overwritten by a stale snapshot.
		m.saver.Stop()
		if err := m.store.ClearSnapshot(context.Background()); err != nil {
			m.logger.Warn("clear snapshot failed", zap.Error(err))
		}
		m.root = mutate.Reset(m.fanOut)
		m.path = model.Path{}
		m.selected = 0
		m.drag = dragState{}
		m.hoverChild = -1
		return m, nil
	}

	if inputEmpty {
		switch msg.String() {
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1", "2", "3", "4":
			i := int(msg.String()[0] - '1')
			cur := model.Resolve(m.root, m.path)
			if i < len(cur.Children) {
				m.path = m.path.Child(i)
				m.selected = 0
			}
			return m, nil
		}
	}

	if m.layout == mutate.LayoutStack {
		if handled, nm, cmd := m.updateStackKey(msg); handled {
			return nm, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyMutation installs the new tree and schedules a debounced snapshot.
func (m *appModel) applyMutation(root model.Box) {
	m.root = root
	m.saver.Schedule(root)
}

func (m appModel) currentBox() model.Box {
	return model.Resolve(m.root, m.path)
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}
	if m.showHelp {
		return m.viewHelp()
	}

	header := m.viewBreadcrumb()
	var body string
	if m.layout == mutate.LayoutStack {
		body = m.viewStack()
	} else {
		body = m.viewDesk()
	}
	inputBar := m.input.View()
	footer := footerStyle.Render(m.footerHint())

	return strings.Join([]string{header, body, inputBar, footer}, "\n")
}

func (m appModel) viewBreadcrumb() string {
	segs := []string{m.root.Name}
	cur := m.root
	for _, i := range m.path {
		if i < 0 || i >= len(cur.Children) {
			break
		}
		cur = cur.Children[i]
		segs = append(segs, cur.Name)
	}
	crumb := breadcrumbStyle.Render(segs[len(segs)-1])
	if len(segs) > 1 {
		crumb = pathSegStyle.Render(strings.Join(segs[:len(segs)-1], " / ")+" / ") + crumb
	}
	return crumb
}

func (m appModel) footerHint() string {
	hints := []string{"enter: add card", "esc: back/quit", "?: help", "ctrl+r: reset"}
	if m.fanOut > 0 {
		hints = append([]string{"1-4: open box", "drag: file card"}, hints...)
	}
	return strings.Join(hints, "  ")
}
