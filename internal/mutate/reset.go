package mutate

import "sift/internal/model"

// Reset discards the current tree and returns the hard-coded default for the
// given fan-out. Callers are responsible for clearing persisted state so a
// subsequent load also yields the default.
func Reset(fanOut int) model.Box {
	return model.DefaultTree(fanOut)
}
