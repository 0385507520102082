package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Iron-Ham/teambuilder/internal/logging"
	"github.com/Iron-Ham/teambuilder/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the debug log",
	Long: `View and filter the teambuilder debug log.

Examples:
  # Show the last 50 entries
  teambuilder logs

  # Show every lookup the client made
  teambuilder logs -n 0 --component pokeapi

  # Follow the log while the TUI runs in another terminal
  teambuilder logs -f

  # Only warnings and errors from the last hour
  teambuilder logs --level warn --since 1h

  # One session only (a unique prefix of its run_id is enough)
  teambuilder logs --run 3f2a9c`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail      int
	logsFollow    bool
	logsLevel     string
	logsSince     string
	logsGrep      string
	logsComponent string
	logsRun       string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Only show entries from this component (pokeapi, roster, tui)")
	logsCmd.Flags().StringVar(&logsRun, "run", "", "Only show entries whose run_id starts with this prefix")
}

// logEntry represents a parsed JSON log line
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	Extra     map[string]any `json:"-"` // Captures additional fields
}

// UnmarshalJSON implements custom unmarshaling to capture extra fields
func (e *logEntry) UnmarshalJSON(data []byte) error {
	// First, unmarshal known fields using a type alias to avoid recursion
	type Alias logEntry
	aux := &struct {
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	delete(all, "time")
	delete(all, "level")
	delete(all, "msg")
	delete(all, "component")

	if len(all) > 0 {
		e.Extra = all
	}

	return nil
}

// logFilter selects which entries are shown.
type logFilter struct {
	minLevel  int
	since     time.Time
	grep      *regexp.Regexp
	component string
	run       string
}

// levelStyle returns the style for a log level
func levelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return styles.Muted
	case logging.LevelInfo:
		return styles.Primary
	case logging.LevelWarn:
		return styles.Warning
	case logging.LevelError:
		return styles.Error
	default:
		return styles.Text
	}
}

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case logging.LevelWarn:
		return 2
	case logging.LevelError:
		return 3
	default:
		return -1
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	sb.WriteString(styles.Muted.Render("[" + entry.Time.Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	sb.WriteString(levelStyle(entry.Level).Render("[" + strings.ToUpper(entry.Level) + "]"))

	if entry.Component != "" {
		sb.WriteString(" ")
		sb.WriteString(styles.Secondary.Render(entry.Component + ":"))
	}

	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	// Extra fields, sorted so output is stable
	keys := make([]string, 0, len(entry.Extra))
	for k := range entry.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(styles.Muted.Render(k + "="))
		sb.WriteString(fmt.Sprintf("%v", entry.Extra[k]))
	}

	return sb.String()
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logPath := filepath.Join(cfg.Logging.ResolveDir(), logging.LogFileName)

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No debug log found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		return nil
	}

	filter := logFilter{minLevel: -1, component: logsComponent, run: logsRun}
	if logsLevel != "" {
		filter.minLevel = levelPriority(logging.ParseLevel(logsLevel))
	}

	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		filter.since = time.Now().Add(-duration)
	}

	if logsGrep != "" {
		filter.grep, err = regexp.Compile(logsGrep)
		if err != nil {
			return fmt.Errorf("invalid grep pattern: %w", err)
		}
	}

	if logsFollow {
		return followLogs(cmd.Context(), out, logPath, filter)
	}
	return displayLogs(out, logPath, logsTail, filter)
}

// displayLogs reads the log file and displays filtered entries
func displayLogs(out io.Writer, logPath string, tail int, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var entries []string
	scanner := bufio.NewScanner(file)

	// Increase buffer size for potentially long log lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		if line, ok := formatLine(scanner.Text(), filter); ok {
			entries = append(entries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}

	return nil
}

// followLogs implements tail -f behavior for the log file until ctx ends
func followLogs(ctx context.Context, out io.Writer, logPath string, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprintf(out, "Following logs... (Ctrl+C to stop)\n\n")

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	reader := bufio.NewReader(file)
	var partial string
	for {
		chunk, err := reader.ReadString('\n')
		line := partial + chunk
		if err == io.EOF {
			// Hold an unterminated line until the writer finishes it
			partial = line
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}
		partial = ""

		if formatted, ok := formatLine(line, filter); ok {
			fmt.Fprintln(out, formatted)
		}
	}
}

// formatLine parses and filters one raw log line. Lines that are not JSON
// are passed through unchanged.
func formatLine(line string, filter logFilter) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line, true
	}
	if !passesFilters(&entry, filter) {
		return "", false
	}
	return formatLogEntry(&entry), true
}

// passesFilters checks if a log entry passes all filter criteria
func passesFilters(entry *logEntry, filter logFilter) bool {
	if filter.minLevel >= 0 && levelPriority(entry.Level) < filter.minLevel {
		return false
	}

	if !filter.since.IsZero() && entry.Time.Before(filter.since) {
		return false
	}

	if filter.component != "" && entry.Component != filter.component {
		return false
	}

	if filter.run != "" {
		runID, _ := entry.Extra["run_id"].(string)
		if !strings.HasPrefix(runID, filter.run) {
			return false
		}
	}

	// Grep filter - search in message and extra fields
	if filter.grep != nil {
		searchText := entry.Msg
		for _, v := range entry.Extra {
			searchText += " " + fmt.Sprintf("%v", v)
		}
		if !filter.grep.MatchString(searchText) {
			return false
		}
	}

	return true
}
