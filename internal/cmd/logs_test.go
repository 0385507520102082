package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

const sampleLog = `{"time":"2026-01-02T10:00:00Z","level":"INFO","msg":"starting team builder","run_id":"3f2a9c1e-0000-4000-8000-000000000001","base_url":"https://pokeapi.co/api/v2"}
{"time":"2026-01-02T10:00:01Z","level":"DEBUG","msg":"fetching creature","run_id":"3f2a9c1e-0000-4000-8000-000000000001","component":"pokeapi","name":"pikachu"}
{"time":"2026-01-02T10:00:02Z","level":"DEBUG","msg":"creature added","run_id":"3f2a9c1e-0000-4000-8000-000000000001","component":"roster","name":"pikachu","size":1}
{"time":"2026-01-02T10:00:03Z","level":"WARN","msg":"lookup request failed","run_id":"b7d04411-0000-4000-8000-000000000002","component":"pokeapi","name":"qqzzz","error":"connection refused"}
not json at all
`

func writeSampleLog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "debug.log"), []byte(sampleLog), 0o644); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}
	return dir
}

func TestLogsCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:     "all entries",
			args:     []string{"logs", "-n", "0"},
			contains: []string{"starting team builder", "fetching creature", "creature added", "lookup request failed", "not json at all"},
		},
		{
			name:        "tail",
			args:        []string{"logs", "-n", "2"},
			contains:    []string{"lookup request failed", "not json at all"},
			notContains: []string{"starting team builder"},
		},
		{
			name:        "component filter",
			args:        []string{"logs", "-n", "0", "--component", "pokeapi"},
			contains:    []string{"pokeapi:", "fetching creature", "lookup request failed"},
			notContains: []string{"creature added", "starting team builder"},
		},
		{
			name:        "level filter",
			args:        []string{"logs", "-n", "0", "--level", "warn"},
			contains:    []string{"[WARN]", "connection refused"},
			notContains: []string{"fetching creature"},
		},
		{
			name:        "grep matches extra fields",
			args:        []string{"logs", "-n", "0", "--grep", "qqz+"},
			contains:    []string{"lookup request failed"},
			notContains: []string{"creature added"},
		},
		{
			name:        "run prefix",
			args:        []string{"logs", "-n", "0", "--run", "b7d0"},
			contains:    []string{"lookup request failed"},
			notContains: []string{"fetching creature", "starting team builder"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnvironment(t, "")
			t.Setenv("TEAMBUILDER_LOGGING_DIR", writeSampleLog(t))

			stdout, _, err := executeCommand(rootCmd, tt.args...)
			if err != nil {
				t.Fatalf("logs failed: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(stdout, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(stdout, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, stdout)
				}
			}
		})
	}
}

func TestLogsCommand_NoLog(t *testing.T) {
	setupTestEnvironment(t, "")
	t.Setenv("TEAMBUILDER_LOGGING_DIR", t.TempDir())

	stdout, _, err := executeCommand(rootCmd, "logs")
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if !strings.Contains(stdout, "No debug log found.") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestLogsCommand_BadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad duration", []string{"logs", "--since", "yesterday"}, "invalid duration"},
		{"bad pattern", []string{"logs", "--grep", "("}, "invalid grep pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnvironment(t, "")
			t.Setenv("TEAMBUILDER_LOGGING_DIR", writeSampleLog(t))

			_, _, err := executeCommand(rootCmd, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestPassesFilters(t *testing.T) {
	now := time.Now()
	entry := &logEntry{
		Time:      now.Add(-10 * time.Minute),
		Level:     "DEBUG",
		Msg:       "fetching creature",
		Component: "pokeapi",
		Extra:     map[string]any{"name": "pikachu", "run_id": "3f2a9c1e-0000-4000-8000-000000000001"},
	}

	tests := []struct {
		name   string
		filter logFilter
		want   bool
	}{
		{"no filter", logFilter{minLevel: -1}, true},
		{"level below minimum", logFilter{minLevel: levelPriority("INFO")}, false},
		{"since excludes older", logFilter{minLevel: -1, since: now.Add(-time.Minute)}, false},
		{"since includes newer", logFilter{minLevel: -1, since: now.Add(-time.Hour)}, true},
		{"component match", logFilter{minLevel: -1, component: "pokeapi"}, true},
		{"component mismatch", logFilter{minLevel: -1, component: "tui"}, false},
		{"grep extra field", logFilter{minLevel: -1, grep: regexp.MustCompile("pika")}, true},
		{"run prefix match", logFilter{minLevel: -1, run: "3f2a"}, true},
		{"run mismatch", logFilter{minLevel: -1, run: "b7d0"}, false},
		{"grep miss", logFilter{minLevel: -1, grep: regexp.MustCompile("eevee")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := passesFilters(entry, tt.filter); got != tt.want {
				t.Errorf("passesFilters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatLogEntry_SortsExtraFields(t *testing.T) {
	entry := &logEntry{
		Time:      time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Level:     "info",
		Msg:       "creature added",
		Component: "roster",
		Extra:     map[string]any{"size": 1, "name": "pikachu"},
	}

	got := formatLogEntry(entry)
	for _, want := range []string{"[10:00:00.000]", "[INFO]", "roster:", "creature added"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Index(got, "name=") > strings.Index(got, "size=") {
		t.Errorf("extra fields not sorted: %q", got)
	}
}
