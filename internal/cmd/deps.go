package cmd

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Iron-Ham/teambuilder/internal/config"
	"github.com/Iron-Ham/teambuilder/internal/logging"
	"github.com/Iron-Ham/teambuilder/internal/pokeapi"
)

// loadConfig loads and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger opens the debug log described by cfg. Logging that is disabled,
// or a log directory that cannot be created, yields a no-op logger so the
// UI is never blocked on it. Every entry carries a run_id so one session
// can be picked out of a shared log with `teambuilder logs --run`.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return logging.NopLogger()
	}
	return logger.With("run_id", uuid.NewString())
}

// newClient builds the PokeAPI client from the lookup section.
func newClient(cfg *config.Config, logger *logging.Logger) *pokeapi.HTTPClient {
	return pokeapi.NewHTTPClient(
		pokeapi.WithBaseURL(cfg.Lookup.BaseURL),
		pokeapi.WithTimeout(cfg.Lookup.Timeout()),
		pokeapi.WithUserAgent(cfg.Lookup.UserAgent),
		pokeapi.WithLogger(logger),
	)
}
