package cmd

import (
	"strings"

	"github.com/Iron-Ham/teambuilder/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "teambuilder",
	Short: "Build a six-Pokémon team from the terminal",
	Long: `Teambuilder looks Pokémon up by name on PokeAPI and assembles a team
of up to six, shown as cards with coloured type badges.

Run without a subcommand to open the interactive team builder.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runStart,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/teambuilder/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/teambuilder")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TEAMBUILDER")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TEAMBUILDER_LOOKUP_BASE_URL for lookup.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
