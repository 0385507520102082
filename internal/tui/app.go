package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/teambuilder/internal/roster"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	altScreen bool
}

// New creates a new TUI application that resolves names through lookup.
func New(lookup roster.Lookup, opts Options) *App {
	return &App{
		model:     NewModel(lookup, opts),
		altScreen: opts.AltScreen,
	}
}

// Controller returns the roster controller driven by the TUI.
func (a *App) Controller() *roster.Controller {
	return a.model.Controller()
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// Abandon any in-flight lookup once the program is gone.
	defer a.model.cancel()

	var opts []tea.ProgramOption
	if a.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok && a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}
