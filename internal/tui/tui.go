package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sift/internal/gesture"
	"sift/internal/model"
	"sift/internal/mutate"
	"sift/internal/store"
)

// Options configures one TUI session.
type Options struct {
	Store      store.Store
	Root       model.Box
	FanOut     int
	Layout     mutate.Layout
	Classifier gesture.Classifier
}

// Run starts the interactive desk. Mouse motion reporting is required for
// drag gestures; everything still works keyboard-only without it.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if fm, ok := final.(appModel); ok {
		// Don't lose a mutation still inside the debounce window.
		fm.saver.Flush()
		_ = fm.store.SaveTUIState(&store.TUIState{Path: fm.path})
	}
	return err
}
