package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Iron-Ham/teambuilder/internal/errors"
	"github.com/Iron-Ham/teambuilder/internal/roster"
	"github.com/Iron-Ham/teambuilder/internal/tui/view"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Look up a single Pokémon",
	Long: `Look up a single Pokémon on PokeAPI and print its card.

The name is trimmed and lower-cased before the request, so "  PiKaChU "
finds pikachu.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var lookupJSON bool

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print the creature as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()

	creature, err := newClient(cfg, logger).Lookup(cmd.Context(), args[0])
	if err != nil {
		logger.Warn("lookup failed", "name", args[0], "error", err.Error())
		return userFacing(err)
	}

	out := cmd.OutOrStdout()
	if lookupJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(creature)
	}

	slot := roster.Render([]roster.Creature{creature})[0]
	_, err = fmt.Fprintln(out, view.NewRosterView(cfg.TUI.CardWidth).RenderCard(slot, false, true))
	return err
}

// userFacing replaces err with the message shown to players. The detailed
// error is expected to have been logged already.
func userFacing(err error) error {
	return errors.New(errors.UserMessage(err))
}
