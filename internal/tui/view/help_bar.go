package view

import (
	"strings"

	"github.com/Iron-Ham/teambuilder/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// InputFocused indicates the name input has focus.
	InputFocused bool

	// Pending indicates a lookup is in flight; add is unavailable.
	Pending bool

	// HasMembers indicates the roster has at least one creature.
	HasMembers bool
}

// HelpBarView renders key hints for the current focus.
type HelpBarView struct{}

// NewHelpBarView creates a new HelpBarView instance.
func NewHelpBarView() *HelpBarView {
	return &HelpBarView{}
}

// Render renders the help bar.
func (v *HelpBarView) Render(state HelpBarState) string {
	var hints []string

	if state.InputFocused {
		if !state.Pending {
			hints = append(hints, hint("[Enter]", "add"))
		}
		hints = append(hints, hint("[Tab]", "roster"))
	} else {
		if state.HasMembers {
			hints = append(hints,
				hint("[←/→]", "select"),
				hint("[d]", "remove"),
			)
		}
		hints = append(hints, hint("[Tab]", "name input"))
	}

	if state.HasMembers {
		hints = append(hints, hint("[Ctrl+L]", "clear"))
	}
	hints = append(hints, hint("[Esc]", "quit"))

	return styles.HelpBar.Render(strings.Join(hints, "  "))
}

func hint(key, action string) string {
	return styles.HelpKey.Render(key) + " " + action
}
