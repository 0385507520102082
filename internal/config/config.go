package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete team builder configuration
type Config struct {
	Lookup  LookupConfig  `mapstructure:"lookup" yaml:"lookup"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LookupConfig controls how creature names are resolved
type LookupConfig struct {
	// BaseURL is the PokeAPI root; lookups hit {base_url}/pokemon/{name}
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// TimeoutSeconds bounds a single lookup request (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	// UserAgent is sent with every lookup request
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// CardWidth is the width of a single roster card in columns (default: 24, min: 16, max: 48)
	CardWidth int `mapstructure:"card_width" yaml:"card_width"`
	// ShowSpriteURL prints the sprite URL on each card (default: true)
	ShowSpriteURL bool `mapstructure:"show_sprite_url" yaml:"show_sprite_url"`
	// AltScreen runs the TUI in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding debug.log.
	// If empty, defaults to "logs" inside the config directory.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// DefaultBaseURL is the public PokeAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Lookup: LookupConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 10,
			UserAgent:      "teambuilder",
		},
		TUI: TUIConfig{
			CardWidth:     24,
			ShowSpriteURL: true,
			AltScreen:     true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "", // Empty means use default: <config dir>/logs
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// Timeout returns the lookup timeout as a time.Duration
func (c *LookupConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveDir returns the resolved log directory.
// If Dir is empty, it returns ConfigDir()/logs.
// If Dir starts with ~, it expands to the user's home directory.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := c.Dir
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return path
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Lookup defaults
	viper.SetDefault("lookup.base_url", defaults.Lookup.BaseURL)
	viper.SetDefault("lookup.timeout_seconds", defaults.Lookup.TimeoutSeconds)
	viper.SetDefault("lookup.user_agent", defaults.Lookup.UserAgent)

	// TUI defaults
	viper.SetDefault("tui.card_width", defaults.TUI.CardWidth)
	viper.SetDefault("tui.show_sprite_url", defaults.TUI.ShowSpriteURL)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// the loaded configuration is invalid.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teambuilder")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teambuilder"
	}
	return filepath.Join(home, ".config", "teambuilder")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
