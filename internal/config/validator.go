package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "lookup.timeout_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Card width bounds; a card must fit the longest type badge pair.
const (
	MinCardWidth = 16
	MaxCardWidth = 48
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateLookup()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateLookup() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.Lookup.BaseURL)
	if c.Lookup.BaseURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "lookup.base_url",
			Value:   c.Lookup.BaseURL,
			Message: "must be an absolute http(s) URL",
		})
	}

	const maxTimeoutSeconds = 300
	if c.Lookup.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "lookup.timeout_seconds",
			Value:   c.Lookup.TimeoutSeconds,
			Message: "must be positive",
		})
	} else if c.Lookup.TimeoutSeconds > maxTimeoutSeconds {
		errors = append(errors, ValidationError{
			Field:   "lookup.timeout_seconds",
			Value:   c.Lookup.TimeoutSeconds,
			Message: fmt.Sprintf("exceeds maximum of %d seconds", maxTimeoutSeconds),
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// 0 means use default
	if c.TUI.CardWidth != 0 && (c.TUI.CardWidth < MinCardWidth || c.TUI.CardWidth > MaxCardWidth) {
		errors = append(errors, ValidationError{
			Field:   "tui.card_width",
			Value:   c.TUI.CardWidth,
			Message: fmt.Sprintf("must be between %d and %d columns", MinCardWidth, MaxCardWidth),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
