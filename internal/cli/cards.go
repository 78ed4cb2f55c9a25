package cli

import (
	"strconv"
	"strings"

	"sift/internal/model"
	"sift/internal/mutate"

	"github.com/spf13/cobra"
)

func newCardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Create and move cards",
	}
	cmd.AddCommand(newCardsAddCmd(app))
	cmd.AddCommand(newCardsMoveCmd(app))
	cmd.AddCommand(newCardsRepositionCmd(app))
	cmd.AddCommand(newCardsPickCmd(app))
	return cmd
}

func newCardsAddCmd(app *App) *cobra.Command {
	var pathFlag string
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a card (whitespace-only text is a no-op)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParsePath(pathFlag)
			if err != nil {
				return err
			}
			root, s, err := loadTree(app)
			if err != nil {
				return err
			}
			root, card, changed := mutate.AddCard(root, p, strings.Join(args, " "), app.layout())
			if changed {
				if err := saveTree(s, root); err != nil {
					return err
				}
			}
			return writeOut(cmd, app, map[string]any{
				"changed": changed,
				"card":    card,
				"path":    p.String(),
			})
		},
	}
	cmd.Flags().StringVar(&pathFlag, "path", "/", "Box to add into")
	return cmd
}

func newCardsMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <path> <card-id> <child-index|dest-path>",
		Short: "File a card into another box",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := model.ParsePath(args[0])
			if err != nil {
				return err
			}
			cardID := strings.TrimSpace(args[1])
			root, s, err := loadTree(app)
			if err != nil {
				return err
			}

			var changed bool
			if n, aerr := strconv.Atoi(strings.TrimSpace(args[2])); aerr == nil {
				root, changed = mutate.MoveCardToChild(root, from, cardID, n)
			} else {
				to, perr := model.ParsePath(args[2])
				if perr != nil {
					return perr
				}
				root, changed = mutate.MoveCard(root, from, cardID, to)
			}
			if changed {
				if err := saveTree(s, root); err != nil {
					return err
				}
			}
			return writeOut(cmd, app, map[string]any{
				"changed": changed,
				"cardId":  cardID,
			})
		},
	}
}

func newCardsRepositionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reposition <path> <card-id> <px> <py>",
		Short: "Place a card on its desk (normalized coords, clamped)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParsePath(args[0])
			if err != nil {
				return err
			}
			px, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return err
			}
			py, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return err
			}
			root, s, err := loadTree(app)
			if err != nil {
				return err
			}
			root, changed := mutate.RepositionCard(root, p, strings.TrimSpace(args[1]), px, py)
			if changed {
				if err := saveTree(s, root); err != nil {
					return err
				}
			}
			return writeOut(cmd, app, map[string]any{"changed": changed})
		},
	}
}

func newCardsPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick <path> <card-id>",
		Short: "Bring a card to the front of its box (stack layout)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParsePath(args[0])
			if err != nil {
				return err
			}
			root, s, err := loadTree(app)
			if err != nil {
				return err
			}
			root, changed := mutate.PickToFront(root, p, strings.TrimSpace(args[1]))
			if changed {
				if err := saveTree(s, root); err != nil {
					return err
				}
			}
			return writeOut(cmd, app, map[string]any{"changed": changed})
		},
	}
}
