package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/teambuilder/internal/config"
	"github.com/Iron-Ham/teambuilder/internal/roster"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured stdout and stderr
func executeCommand(root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// resetFlags restores every flag in the command tree to its default, since
// cobra keeps parsed values on the package-level commands between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// setupTestEnvironment isolates config, logging and the lookup endpoint.
func setupTestEnvironment(t *testing.T, baseURL string) string {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("TEAMBUILDER_LOGGING_ENABLED", "false")
	if baseURL != "" {
		t.Setenv("TEAMBUILDER_LOOKUP_BASE_URL", baseURL)
	}

	viper.Reset()
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	resetFlags(rootCmd)
	t.Cleanup(func() {
		viper.Reset()
		resetFlags(rootCmd)
	})

	return filepath.Join(configHome, "teambuilder")
}

// newPokeAPIServer answers /pokemon/{name} for the given names with a
// single "normal" type, and 404 for anything else.
func newPokeAPIServer(t *testing.T, names ...string) *httptest.Server {
	t.Helper()

	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/pokemon/")
		if !known[name] {
			http.NotFound(w, r)
			return
		}
		types := `[{"slot":1,"type":{"name":"normal"}}]`
		if name == "pikachu" {
			types = `[{"slot":1,"type":{"name":"electric"}}]`
		}
		fmt.Fprintf(w, `{"name":%q,"sprites":{"front_default":"https://sprites.example/%s.png"},"types":%s}`, name, name, types)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "teambuilder" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "teambuilder")
	}

	expectedCmds := []string{"start", "lookup", "team", "types", "config", "logs"}
	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}

	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestLookupCommand(t *testing.T) {
	srv := newPokeAPIServer(t, "pikachu")
	setupTestEnvironment(t, srv.URL)

	stdout, _, err := executeCommand(rootCmd, "lookup", "  PiKaChU ")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	for _, want := range []string{"Pikachu", "electric", "https://sprites.example/pikachu.png"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestLookupCommand_JSON(t *testing.T) {
	srv := newPokeAPIServer(t, "pikachu")
	setupTestEnvironment(t, srv.URL)

	stdout, _, err := executeCommand(rootCmd, "lookup", "--json", "pikachu")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	var got roster.Creature
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	want := roster.Creature{
		Name:      "pikachu",
		SpriteURL: "https://sprites.example/pikachu.png",
		Types:     []string{"electric"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("creature mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupCommand_NotFound(t *testing.T) {
	srv := newPokeAPIServer(t)
	setupTestEnvironment(t, srv.URL)

	_, stderr, err := executeCommand(rootCmd, "lookup", "qqzzz")
	if err == nil {
		t.Fatal("expected an error for an unknown name")
	}
	if err.Error() != "Pokémon not found!" {
		t.Errorf("error = %q, want the user-facing message", err.Error())
	}
	if !strings.Contains(stderr, "Pokémon not found!") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestTeamCommand_JSON(t *testing.T) {
	srv := newPokeAPIServer(t, "pikachu", "bulbasaur")
	setupTestEnvironment(t, srv.URL)

	stdout, stderr, err := executeCommand(rootCmd, "team", "--json", "pikachu", "   ", "qqzzz", "Bulbasaur")
	if err != nil {
		t.Fatalf("team failed: %v", err)
	}

	var slots []roster.Slot
	if err := json.Unmarshal([]byte(stdout), &slots); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if len(slots) != roster.MaxSize {
		t.Fatalf("len(slots) = %d, want %d", len(slots), roster.MaxSize)
	}
	if roster.FilledCount(slots) != 2 {
		t.Errorf("FilledCount = %d, want 2", roster.FilledCount(slots))
	}
	if slots[0].Creature.Name != "pikachu" || slots[1].Creature.Name != "bulbasaur" {
		t.Errorf("order = %q, %q", slots[0].Creature.Name, slots[1].Creature.Name)
	}
	if diff := cmp.Diff([]roster.Badge{{Label: "electric", Color: "#F8D030"}}, slots[0].Badges); diff != "" {
		t.Errorf("badges mismatch (-want +got):\n%s", diff)
	}

	for _, want := range []string{"Please enter a Pokémon name!", `"qqzzz": Pokémon not found!`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected stderr to contain %q, got:\n%s", want, stderr)
		}
	}
}

func TestTeamCommand_FullRoster(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	srv := newPokeAPIServer(t, names...)
	setupTestEnvironment(t, srv.URL)

	stdout, stderr, err := executeCommand(rootCmd, append([]string{"team"}, names...)...)
	if err != nil {
		t.Fatalf("team failed: %v", err)
	}
	if !strings.Contains(stderr, `"g": Your team is full!`) {
		t.Errorf("expected full-roster report, got:\n%s", stderr)
	}
	if !strings.Contains(stdout, "Your Team (6/6)") {
		t.Errorf("expected a full team render, got:\n%s", stdout)
	}
	if strings.Contains(stdout, "Empty Slot") {
		t.Errorf("a full team has no empty slots:\n%s", stdout)
	}
}

func TestTeamCommand_Strict(t *testing.T) {
	srv := newPokeAPIServer(t, "pikachu")
	setupTestEnvironment(t, srv.URL)

	_, _, err := executeCommand(rootCmd, "team", "--strict", "pikachu", "qqzzz")
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("err = %v, want a 1 of 2 failure", err)
	}
}

func TestTypesCommand(t *testing.T) {
	setupTestEnvironment(t, "")

	stdout, _, err := executeCommand(rootCmd, "types")
	if err != nil {
		t.Fatalf("types failed: %v", err)
	}

	for _, name := range roster.TypeNames() {
		if !strings.Contains(stdout, name) || !strings.Contains(stdout, roster.TypeColor(name)) {
			t.Errorf("missing %s (%s) in:\n%s", name, roster.TypeColor(name), stdout)
		}
	}
	if !strings.Contains(stdout, "(other)") || !strings.Contains(stdout, roster.DefaultTypeColor) {
		t.Errorf("missing default colour row:\n%s", stdout)
	}
	if got := strings.Count(stdout, "\n"); got != len(roster.TypeNames())+1 {
		t.Errorf("printed %d rows, want %d", got, len(roster.TypeNames())+1)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	configDir := setupTestEnvironment(t, "")

	stdout, _, err := executeCommand(rootCmd, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	configFile := filepath.Join(configDir, "config.yaml")
	if !strings.Contains(stdout, configFile) {
		t.Errorf("init output %q does not name %s", stdout, configFile)
	}
	if _, err := os.Stat(configFile); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// The generated file must load cleanly.
	viper.Reset()
	config.SetDefaults()
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("generated config does not parse: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("generated config is invalid: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("generated config differs from defaults (-want +got):\n%s", diff)
	}

	if _, _, err := executeCommand(rootCmd, "config", "init"); err == nil {
		t.Error("second init should refuse to overwrite")
	}

	stdout, _, err = executeCommand(rootCmd, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(stdout, "TEAMBUILDER_") {
		t.Errorf("path output should mention the env prefix:\n%s", stdout)
	}
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "valid int", key: "tui.card_width", value: "30"},
		{name: "valid bool", key: "tui.show_sprite_url", value: "false"},
		{name: "valid level", key: "logging.level", value: "debug"},
		{name: "unknown key", key: "tui.colour", value: "x", wantErr: "unknown configuration key"},
		{name: "bad bool", key: "logging.compress", value: "maybe", wantErr: "expected true or false"},
		{name: "bad int", key: "lookup.timeout_seconds", value: "ten", wantErr: "expected integer"},
		{name: "negative int", key: "logging.max_backups", value: "-1", wantErr: "non-negative"},
		{name: "bad level", key: "logging.level", value: "verbose", wantErr: "Valid options"},
		{name: "card too narrow", key: "tui.card_width", value: "5", wantErr: "tui.card_width"},
		{name: "relative base url", key: "lookup.base_url", value: "pokeapi.co", wantErr: "lookup.base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := setupTestEnvironment(t, "")
			configFile := filepath.Join(configDir, "config.yaml")

			stdout, _, err := executeCommand(rootCmd, "config", "set", tt.key, tt.value)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want it to contain %q", err, tt.wantErr)
				}
				if _, statErr := os.Stat(configFile); statErr == nil {
					t.Error("rejected value was written to disk")
				}
				return
			}

			if err != nil {
				t.Fatalf("config set failed: %v", err)
			}
			if !strings.Contains(stdout, "Set "+tt.key) {
				t.Errorf("unexpected output: %s", stdout)
			}
			data, err := os.ReadFile(configFile)
			if err != nil {
				t.Fatalf("config file not written: %v", err)
			}
			if !strings.Contains(string(data), tt.value) {
				t.Errorf("config file missing %s:\n%s", tt.value, data)
			}
		})
	}
}

func TestConfigShow(t *testing.T) {
	setupTestEnvironment(t, "")
	t.Setenv("TEAMBUILDER_TUI_CARD_WIDTH", "40")

	stdout, _, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	for _, want := range []string{"# Config file: (none - using defaults)", "lookup:", "base_url: https://pokeapi.co/api/v2", "card_width: 40", "logging:"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestConfigShow_InvalidFallsBackToDefaults(t *testing.T) {
	setupTestEnvironment(t, "")
	t.Setenv("TEAMBUILDER_LOGGING_LEVEL", "loud")

	stdout, _, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "Warning:") || !strings.Contains(stdout, "level: info") {
		t.Errorf("expected a warning and default values, got:\n%s", stdout)
	}
}

func TestInvalidConfigStopsCommands(t *testing.T) {
	setupTestEnvironment(t, "")
	t.Setenv("TEAMBUILDER_LOOKUP_TIMEOUT_SECONDS", "0")

	_, _, err := executeCommand(rootCmd, "lookup", "pikachu")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("err = %v, want an invalid configuration error", err)
	}
}
