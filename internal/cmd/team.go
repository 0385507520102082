package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Iron-Ham/teambuilder/internal/roster"
	"github.com/Iron-Ham/teambuilder/internal/tui/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var teamCmd = &cobra.Command{
	Use:   "team <name>...",
	Short: "Build a team non-interactively",
	Long: `Build a team non-interactively.

Each name is added in order, exactly as if typed into the interactive
builder. Names that cannot be added (blank, team already full, not found)
are reported on stderr and skipped. The final six slots are printed.

Examples:
  teambuilder team pikachu bulbasaur charmander
  teambuilder team --json eevee vaporeon`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTeam,
}

var (
	teamJSON   bool
	teamStrict bool
)

func init() {
	rootCmd.AddCommand(teamCmd)

	teamCmd.Flags().BoolVar(&teamJSON, "json", false, "Print the slots as JSON")
	teamCmd.Flags().BoolVar(&teamStrict, "strict", false, "Exit with an error if any name could not be added")
}

func runTeam(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()

	controller := roster.NewController(newClient(cfg, logger), roster.WithLogger(logger))

	errOut := cmd.ErrOrStderr()
	failures := 0
	for _, name := range args {
		if err := controller.Add(cmd.Context(), name); err != nil {
			failures++
			fmt.Fprintf(errOut, "%q: %s\n", name, controller.Status())
		}
	}

	out := cmd.OutOrStdout()
	if teamJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(controller.Slots()); err != nil {
			return fmt.Errorf("failed to encode team: %w", err)
		}
	} else {
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		rv := view.NewRosterView(cfg.TUI.CardWidth)
		fmt.Fprintln(out, rv.Render(view.RosterState{
			Slots:         controller.Slots(),
			Selected:      -1,
			ShowSpriteURL: cfg.TUI.ShowSpriteURL,
		}, width))
	}

	if teamStrict && failures > 0 {
		return fmt.Errorf("%d of %d names could not be added", failures, len(args))
	}
	return nil
}
