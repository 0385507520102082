package view

import (
	"github.com/Iron-Ham/teambuilder/internal/tui/styles"
)

// StatusState holds the state needed to render the status line.
type StatusState struct {
	// Message is the controller's status; empty means nothing to report.
	Message string

	// Pending indicates a lookup is in flight.
	Pending bool

	// PendingName is the name being looked up.
	PendingName string

	// Spinner is the current spinner frame, drawn while Pending.
	Spinner string
}

// StatusView renders the single replaceable status line.
type StatusView struct{}

// NewStatusView creates a new StatusView instance.
func NewStatusView() *StatusView {
	return &StatusView{}
}

// Render returns the status line. A pending lookup takes precedence over
// a stale message; an idle, clean state renders as an empty string.
func (v *StatusView) Render(state StatusState) string {
	switch {
	case state.Pending:
		return state.Spinner + " " + styles.Muted.Render("Looking up "+state.PendingName+"...")
	case state.Message != "":
		return styles.ErrorMsg.Render(state.Message)
	default:
		return ""
	}
}
