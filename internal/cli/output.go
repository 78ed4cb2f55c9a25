package cli

import (
	"context"

	"sift/internal/format"
	"sift/internal/model"
	"sift/internal/store"

	"github.com/spf13/cobra"
)

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

// saveTree persists a CLI mutation synchronously. One-shot commands don't
// debounce; the 250ms coalescing window only matters for the live TUI.
func saveTree(s store.Store, root model.Box) error {
	return s.SaveSnapshot(context.Background(), root)
}
