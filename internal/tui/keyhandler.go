package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress routes a key to the global bindings, then to the focused area.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case "tab":
		return m.toggleFocus()

	case "ctrl+l":
		m.controller.Clear()
		m.slots = m.controller.Slots()
		m.selected = 0
		return m, nil
	}

	if m.focus == focusRoster {
		return m.handleRosterKey(msg)
	}
	return m.handleInputKey(msg)
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusRoster
		m.input.Blur()
		m.clampSelection()
		return m, nil
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// One lookup at a time: Enter is ignored until the pending add reports back.
	if m.pending {
		return m, nil
	}

	name := m.input.Value()

	// Empty input and a full roster are rejected before any lookup, so
	// there is nothing to wait for.
	if strings.TrimSpace(name) == "" || m.controller.Full() {
		_ = m.controller.Add(m.ctx, name)
		return m, nil
	}

	m.pending = true
	m.pendingName = strings.TrimSpace(name)
	m.logger.Debug("add started", "name", m.pendingName)
	return m, tea.Batch(addCmd(m.ctx, m.controller, name), m.spinner.Tick)
}

func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "up", "k":
		m.selected--
		m.clampSelection()

	case "right", "l", "down", "j":
		m.selected++
		m.clampSelection()

	case "d", "x", "delete", "backspace":
		if m.controller.Remove(m.selected) {
			m.slots = m.controller.Slots()
			m.clampSelection()
		}
	}
	return m, nil
}
