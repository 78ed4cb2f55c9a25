package cli

import (
	"context"

	"sift/internal/mutate"
	"sift/internal/store"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard all state and restore the default tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Dir
			if dir == "" {
				d, err := store.DefaultDir()
				if err != nil {
					return err
				}
				dir = d
			}
			s := store.Store{Dir: dir}
			if err := s.ClearSnapshot(context.Background()); err != nil {
				return err
			}
			root := mutate.Reset(app.fanOut())
			return writeOut(cmd, app, map[string]any{
				"reset": true,
				"root":  root,
			})
		},
	}
}
