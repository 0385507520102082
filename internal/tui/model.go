package tui

import (
	"context"
	"strings"

	"github.com/Iron-Ham/teambuilder/internal/logging"
	"github.com/Iron-Ham/teambuilder/internal/roster"
	"github.com/Iron-Ham/teambuilder/internal/tui/styles"
	"github.com/Iron-Ham/teambuilder/internal/tui/view"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusArea is the part of the screen receiving key presses.
type focusArea int

const (
	focusInput focusArea = iota
	focusRoster
)

// Options configures the TUI.
type Options struct {
	// CardWidth is the content width of a roster card.
	CardWidth int

	// ShowSpriteURL adds each creature's sprite URL to its card.
	ShowSpriteURL bool

	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool

	Logger *logging.Logger
}

// Model holds the TUI application state
type Model struct {
	// Core components
	controller *roster.Controller
	renders    chan []roster.Slot
	ctx        context.Context
	cancel     context.CancelFunc
	logger     *logging.Logger

	// Views
	rosterView *view.RosterView
	statusView *view.StatusView
	helpBar    *view.HelpBarView

	// Widgets
	input   textinput.Model
	spinner spinner.Model

	// UI state
	slots         []roster.Slot
	focus         focusArea
	selected      int
	pending       bool
	pendingName   string
	showSpriteURL bool
	width         int
	height        int
	quitting      bool
}

// NewModel creates a TUI model around a fresh roster controller.
func NewModel(lookup roster.Lookup, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	renders := make(chan []roster.Slot, 1)

	controller := roster.NewController(lookup,
		roster.WithLogger(logger),
		roster.WithRenderFunc(func(slots []roster.Slot) {
			publishLatest(renders, slots)
		}),
	)

	ti := textinput.New()
	ti.Placeholder = "Enter a Pokémon name"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Primary),
	)

	return Model{
		controller:    controller,
		renders:       renders,
		ctx:           ctx,
		cancel:        cancel,
		logger:        logger.WithComponent("tui"),
		rosterView:    view.NewRosterView(opts.CardWidth),
		statusView:    view.NewStatusView(),
		helpBar:       view.NewHelpBarView(),
		input:         ti,
		spinner:       sp,
		slots:         controller.Slots(),
		showSpriteURL: opts.ShowSpriteURL,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForRender(m.ctx, m.renders))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, min(48, msg.Width-8))
		return m, nil

	case addResultMsg:
		return m.handleAddResult(msg)

	case rosterChangedMsg:
		m.slots = msg.slots
		m.clampSelection()
		return m, waitForRender(m.ctx, m.renders)

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleAddResult ends the pending state. Success resets the input; on
// failure the typed name stays so it can be corrected.
func (m Model) handleAddResult(msg addResultMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	m.pendingName = ""
	m.slots = m.controller.Slots()
	m.clampSelection()

	if msg.err != nil {
		m.logger.Debug("add rejected", "name", msg.name, "error", msg.err.Error())
		return m, nil
	}
	m.input.Reset()
	return m, nil
}

// clampSelection keeps the cursor on a filled slot.
func (m *Model) clampSelection() {
	n := roster.FilledCount(m.slots)
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = max(0, min(m.selected, n-1))
}

// Controller exposes the roster controller, mainly for tests and callers
// that seed the roster before starting the program.
func (m Model) Controller() *roster.Controller {
	return m.controller
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Header.Render("Pokémon Team Builder"))
	b.WriteString("\n")

	inputBox := styles.InputBox
	if m.focus == focusInput {
		inputBox = styles.InputBoxFocused
	}
	b.WriteString(inputBox.Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.statusView.Render(view.StatusState{
		Message:     m.controller.Status(),
		Pending:     m.pending,
		PendingName: m.pendingName,
		Spinner:     m.spinner.View(),
	}))
	b.WriteString("\n\n")

	b.WriteString(m.rosterView.Render(view.RosterState{
		Slots:         m.slots,
		Selected:      m.selected,
		Focused:       m.focus == focusRoster,
		ShowSpriteURL: m.showSpriteURL,
	}, m.width))
	b.WriteString("\n")

	b.WriteString(m.helpBar.Render(view.HelpBarState{
		InputFocused: m.focus == focusInput,
		Pending:      m.pending,
		HasMembers:   roster.FilledCount(m.slots) > 0,
	}))

	return b.String()
}
