package cmd

import (
	"fmt"

	"github.com/Iron-Ham/teambuilder/internal/tui"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive team builder",
	Long: `Open the interactive team builder.

Type a Pokémon name and press Enter to add it to your team. Tab switches
between the name input and the roster, where ←/→ select a card and d
removes it. Ctrl+L clears the team and Esc quits.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()
	logger.Info("starting team builder", "base_url", cfg.Lookup.BaseURL)

	app := tui.New(newClient(cfg, logger), tui.Options{
		CardWidth:     cfg.TUI.CardWidth,
		ShowSpriteURL: cfg.TUI.ShowSpriteURL,
		AltScreen:     cfg.TUI.AltScreen,
		Logger:        logger,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("team builder exited", "team_size", app.Controller().Len())
	return nil
}
