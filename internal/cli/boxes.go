package cli

import (
	"sift/internal/model"

	"github.com/spf13/cobra"
)

func newBoxesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxes",
		Short: "Inspect the box tree",
	}
	cmd.AddCommand(newBoxesTreeCmd(app))
	cmd.AddCommand(newBoxesShowCmd(app))
	return cmd
}

func newBoxesTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the whole tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := loadTree(app)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, root)
		},
	}
}

func newBoxesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Print one box (path like / or /0/1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := "/"
			if len(args) == 1 {
				raw = args[0]
			}
			p, err := model.ParsePath(raw)
			if err != nil {
				return err
			}
			root, _, err := loadTree(app)
			if err != nil {
				return err
			}
			if !model.Valid(root, p) {
				return writeOut(cmd, app, map[string]any{
					"error": "no box at path",
					"path":  p.String(),
				})
			}
			box := model.Resolve(root, p)
			return writeOut(cmd, app, map[string]any{
				"path": p.String(),
				"box":  box,
			})
		},
	}
}
