package cli

import (
	"context"

	"sift/internal/model"
	"sift/internal/store"

	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the store and tree invariants",
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
			root, ok, err := s.LoadSnapshot(context.Background())
			if err != nil {
				return err
			}

			report := map[string]any{
				"dir":         dir,
				"schemaKey":   store.SchemaKey,
				"hasSnapshot": ok,
			}
			if ok {
				report["totalCards"] = root.CountCards()
				report["duplicateCardIds"] = duplicateCardIDs(root)
				report["boxes"] = countBoxes(root)
			}
			return writeOut(cmd, app, report)
		},
	}
}

// duplicateCardIDs returns any card id owned by more than one box. A healthy
// tree returns none: every card belongs to exactly one box's card list.
func duplicateCardIDs(root model.Box) []string {
	seen := map[string]int{}
	root.WalkBoxes(func(_ model.Path, b model.Box) {
		for _, c := range b.Cards {
			seen[c.ID]++
		}
	})
	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}

func countBoxes(root model.Box) int {
	n := 0
	root.WalkBoxes(func(_ model.Path, _ model.Box) { n++ })
	return n
}
