package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"sift/internal/model"
)

// DebounceDelay bounds persisted-state staleness: after input stops, the
// last mutation is on disk within this long.
const DebounceDelay = 250 * time.Millisecond

// Saver coalesces snapshot saves. Every mutation schedules a save after a
// fixed delay; a mutation arriving before the delay elapses cancels the
// pending save and reschedules it. This is a single pending-timer slot, not
// a queue: only the latest tree state is ever persisted, best-effort.
type Saver struct {
	mu      sync.Mutex
	delay   time.Duration
	save    func(model.Box)
	timer   *time.Timer
	pending model.Box
	armed   bool
}

// NewSaver returns a Saver persisting through s, logging failures to lg.
func NewSaver(s Store, lg *zap.Logger) *Saver {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Saver{
		delay: DebounceDelay,
		save: func(root model.Box) {
			if err := s.SaveSnapshot(context.Background(), root); err != nil {
				lg.Warn("snapshot save failed", zap.Error(err))
			}
		},
	}
}

// NewSaverFunc returns a Saver with an injected delay and save function.
func NewSaverFunc(delay time.Duration, save func(model.Box)) *Saver {
	return &Saver{delay: delay, save: save}
}

// Schedule records root as the state to persist and (re)starts the delay.
func (sv *Saver) Schedule(root model.Box) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	sv.pending = root
	sv.armed = true
	if sv.timer != nil {
		sv.timer.Stop()
	}
	sv.timer = time.AfterFunc(sv.delay, sv.fire)
}

func (sv *Saver) fire() {
	sv.mu.Lock()
	if !sv.armed {
		sv.mu.Unlock()
		return
	}
	root := sv.pending
	sv.armed = false
	sv.timer = nil
	sv.mu.Unlock()
	sv.save(root)
}

// Flush persists any pending state immediately. Called on quit so the last
// mutation is never lost to the debounce window.
func (sv *Saver) Flush() {
	sv.mu.Lock()
	if sv.timer != nil {
		sv.timer.Stop()
		sv.timer = nil
	}
	if !sv.armed {
		sv.mu.Unlock()
		return
	}
	root := sv.pending
	sv.armed = false
	sv.mu.Unlock()
	sv.save(root)
}

// Stop drops any pending save without persisting. Used by Reset, where the
// cleared store must not be overwritten by a stale scheduled snapshot.
func (sv *Saver) Stop() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.timer != nil {
		sv.timer.Stop()
		sv.timer = nil
	}
	sv.armed = false
}
