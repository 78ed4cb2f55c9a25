package store

import "go.uber.org/zap"

// NewLogger returns a zap logger writing to the store's log file.
// The TUI owns stdout/stderr, so the only safe sink is a file; if the file
// can't be set up we degrade to a no-op logger rather than fail the app.
func NewLogger(s Store) *zap.Logger {
	if err := s.Ensure(); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{s.LogPath()}
	cfg.ErrorOutputPaths = []string{s.LogPath()}
	lg, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return lg
}
