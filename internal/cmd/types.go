package cmd

import (
	"fmt"

	"github.com/Iron-Ham/teambuilder/internal/roster"
	"github.com/Iron-Ham/teambuilder/internal/tui/styles"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the type badge colours",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range roster.TypeNames() {
		color := roster.TypeColor(name)
		fmt.Fprintf(out, "%-10s %s %s\n", name, styles.TypeBadge(color).Render("    "), color)
	}
	fmt.Fprintf(out, "%-10s %s %s\n", "(other)", styles.TypeBadge(roster.DefaultTypeColor).Render("    "), roster.DefaultTypeColor)

	return nil
}
