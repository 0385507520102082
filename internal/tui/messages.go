package tui

import (
	"context"

	"github.com/Iron-Ham/teambuilder/internal/roster"
	tea "github.com/charmbracelet/bubbletea"
)

// addResultMsg reports the outcome of an asynchronous add.
type addResultMsg struct {
	name string
	err  error
}

// rosterChangedMsg carries the render the controller published after a mutation.
type rosterChangedMsg struct {
	slots []roster.Slot
}

// addCmd runs Controller.Add off the event loop.
func addCmd(ctx context.Context, c *roster.Controller, name string) tea.Cmd {
	return func() tea.Msg {
		return addResultMsg{name: name, err: c.Add(ctx, name)}
	}
}

// waitForRender blocks until the controller publishes a render or ctx ends.
func waitForRender(ctx context.Context, renders <-chan []roster.Slot) tea.Cmd {
	return func() tea.Msg {
		select {
		case slots := <-renders:
			return rosterChangedMsg{slots: slots}
		case <-ctx.Done():
			return nil
		}
	}
}

// publishLatest delivers slots without blocking the caller, replacing a
// render nobody has read yet.
func publishLatest(renders chan []roster.Slot, slots []roster.Slot) {
	select {
	case <-renders:
	default:
	}
	select {
	case renders <- slots:
	default:
	}
}
