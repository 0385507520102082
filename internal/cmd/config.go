package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/teambuilder/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify teambuilder configuration",
	Long: `View or modify teambuilder configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  teambuilder config set lookup.timeout_seconds 5
  teambuilder config set tui.card_width 30
  teambuilder config set logging.level debug

Valid keys:
  lookup.base_url         - PokeAPI root URL
  lookup.timeout_seconds  - Per-lookup timeout (1-300)
  lookup.user_agent       - User-Agent sent with lookups
  tui.card_width          - Roster card width (16-48)
  tui.show_sprite_url     - Show sprite URLs on cards (true/false)
  tui.alt_screen          - Use the alternate screen (true/false)
  logging.enabled         - Write a debug log (true/false)
  logging.level           - debug, info, warn or error
  logging.dir             - Log directory (default: <config dir>/logs)
  logging.max_size_mb     - Rotate the log at this size
  logging.max_backups     - Rotated logs to keep
  logging.compress        - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/teambuilder/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// configKeys maps every settable key to its value type.
var configKeys = map[string]string{
	"lookup.base_url":        "string",
	"lookup.timeout_seconds": "int",
	"lookup.user_agent":      "string",
	"tui.card_width":         "int",
	"tui.show_sprite_url":    "bool",
	"tui.alt_screen":         "bool",
	"logging.enabled":        "bool",
	"logging.level":          "string",
	"logging.dir":            "string",
	"logging.max_size_mb":    "int",
	"logging.max_backups":    "int",
	"logging.compress":       "bool",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "Warning: %v\nShowing defaults instead.\n\n", err)
		cfg = config.Default()
	}

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "# Config file: (none - using defaults)\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	keyType, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'teambuilder config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue any
	switch keyType {
	case "string":
		if key == "logging.level" && !slices.Contains(config.ValidLogLevels(), strings.ToLower(value)) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(config.ValidLogLevels(), ", "))
		}
		typedValue = value
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = b
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)

	// Reject values the full validator refuses before anything is written
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		return err
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

// defaultConfigContent is the commented file written by config init.
const defaultConfigContent = `# teambuilder configuration

# PokeAPI lookups
lookup:
  # API root; names are fetched from {base_url}/pokemon/{name}
  base_url: https://pokeapi.co/api/v2
  # Seconds before a lookup gives up (counts as "not found")
  timeout_seconds: 10
  user_agent: teambuilder

# TUI (terminal user interface) settings
tui:
  # Width of a roster card in columns (16-48)
  card_width: 24
  # Show each creature's sprite URL on its card
  show_sprite_url: true
  # Run in the terminal's alternate screen
  alt_screen: true

# Debug logging
logging:
  enabled: true
  # debug, info, warn or error
  level: info
  # Empty means <config dir>/logs
  dir: ""
  # Rotate debug.log at this size and keep this many old files
  max_size_mb: 10
  max_backups: 3
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'teambuilder config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize teambuilder's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/teambuilder/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: TEAMBUILDER_* (e.g., TEAMBUILDER_LOOKUP_TIMEOUT_SECONDS)")

	return nil
}
