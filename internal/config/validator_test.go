package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*Config)
		wantFields []string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:       "empty base url",
			modify:     func(c *Config) { c.Lookup.BaseURL = "" },
			wantFields: []string{"lookup.base_url"},
		},
		{
			name:       "relative base url",
			modify:     func(c *Config) { c.Lookup.BaseURL = "pokeapi.co/api/v2" },
			wantFields: []string{"lookup.base_url"},
		},
		{
			name:       "non-http scheme",
			modify:     func(c *Config) { c.Lookup.BaseURL = "ftp://pokeapi.co" },
			wantFields: []string{"lookup.base_url"},
		},
		{
			name:   "local http base url",
			modify: func(c *Config) { c.Lookup.BaseURL = "http://127.0.0.1:8080/api/v2" },
		},
		{
			name:       "zero timeout",
			modify:     func(c *Config) { c.Lookup.TimeoutSeconds = 0 },
			wantFields: []string{"lookup.timeout_seconds"},
		},
		{
			name:       "huge timeout",
			modify:     func(c *Config) { c.Lookup.TimeoutSeconds = 3600 },
			wantFields: []string{"lookup.timeout_seconds"},
		},
		{
			name:   "card width zero means default",
			modify: func(c *Config) { c.TUI.CardWidth = 0 },
		},
		{
			name:       "card width too small",
			modify:     func(c *Config) { c.TUI.CardWidth = MinCardWidth - 1 },
			wantFields: []string{"tui.card_width"},
		},
		{
			name:       "card width too large",
			modify:     func(c *Config) { c.TUI.CardWidth = MaxCardWidth + 1 },
			wantFields: []string{"tui.card_width"},
		},
		{
			name:   "uppercase level accepted",
			modify: func(c *Config) { c.Logging.Level = "DEBUG" },
		},
		{
			name: "several logging errors",
			modify: func(c *Config) {
				c.Logging.Level = "trace"
				c.Logging.MaxSizeMB = -1
				c.Logging.MaxBackups = -2
			},
			wantFields: []string{"logging.level", "logging.max_size_mb", "logging.max_backups"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("error %d field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := ValidationErrors(nil).Error(); got != "" {
		t.Errorf("empty ValidationErrors.Error() = %q, want empty", got)
	}

	single := ValidationErrors{{Field: "tui.card_width", Value: 2, Message: "too small"}}
	if got, want := single.Error(), "tui.card_width: too small (got: 2)"; got != want {
		t.Errorf("single Error() = %q, want %q", got, want)
	}

	multi := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	got := multi.Error()
	if !strings.HasPrefix(got, "2 validation errors:") {
		t.Errorf("multi Error() = %q, want count prefix", got)
	}
	if !strings.Contains(got, "1. a: bad") || !strings.Contains(got, "2. b: worse") {
		t.Errorf("multi Error() missing entries: %q", got)
	}
}
