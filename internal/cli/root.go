package cli

import (
	"context"
	"os"
	"strings"

	"sift/internal/gesture"
	"sift/internal/model"
	"sift/internal/mutate"
	"sift/internal/store"
	"sift/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	FanOut     int
	Policy     string
	Layout     string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "sift",
		Short:        "sift — flick cards into boxes (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive desk TUI
  sift

  # Scriptable commands
  sift boxes tree
  sift cards add "call the plumber"

  # File the named card into child box 1 of the root
  sift cards move / card-x7k2m9ab 1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("SIFT_DIR", ""), "Path to store dir (default: ~/.sift)")
	cmd.PersistentFlags().IntVar(&app.FanOut, "fanout", envOrInt("SIFT_FANOUT", 2), "Child boxes per box in the default tree (0|2|4)")
	cmd.PersistentFlags().StringVar(&app.Policy, "policy", envOr("SIFT_POLICY", ""), "Gesture policy (two-way|axis|diagonal|flick; default matches fanout)")
	cmd.PersistentFlags().StringVar(&app.Layout, "layout", envOr("SIFT_LAYOUT", "desk"), "Card layout (desk|stack)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("SIFT_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newBoxesCmd(app))
	cmd.AddCommand(newCardsCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	root, s, err := loadTree(app)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Store:      s,
		Root:       root,
		FanOut:     app.fanOut(),
		Layout:     app.layout(),
		Classifier: app.classifier(),
	})
}

// loadTree resolves the store dir and loads the persisted tree, falling back
// to the hard-coded default when no usable snapshot exists.
func loadTree(app *App) (model.Box, store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return model.Box{}, store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	root, ok, err := s.LoadSnapshot(context.Background())
	if err != nil {
		return model.Box{}, s, err
	}
	if !ok {
		root = model.DefaultTree(app.fanOut())
	}
	return root, s, nil
}

func (a *App) fanOut() int {
	switch a.FanOut {
	case 0, 2, 4:
		return a.FanOut
	default:
		return 2
	}
}

func (a *App) layout() mutate.Layout {
	if strings.EqualFold(strings.TrimSpace(a.Layout), "stack") {
		return mutate.LayoutStack
	}
	return mutate.LayoutDesk
}

// classifier picks the policy: an explicit --policy wins, otherwise the one
// matching the configured fan-out (2 => two-way swipe, 4 => axis-dominant).
func (a *App) classifier() gesture.Classifier {
	if k, err := gesture.ParsePolicy(a.Policy); err == nil {
		return gesture.Classifier{Kind: k}
	}
	if a.fanOut() == 4 {
		return gesture.Classifier{Kind: gesture.PolicyAxisDominant}
	}
	return gesture.Classifier{Kind: gesture.PolicyTwoWay}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envOrInt(k string, d int) int {
	switch strings.TrimSpace(os.Getenv(k)) {
	case "0":
		return 0
	case "2":
		return 2
	case "4":
		return 4
	default:
		return d
	}
}
