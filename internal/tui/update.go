package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	// The form consumes every message kind, not just key presses
	if m.mode == ProjectFormMode && m.form != nil {
		return m.updateProjectForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case AlertMode:
		return m.updateAlert(keyMsg)
	case DetailMode:
		return m.updateDetail(keyMsg)
	case HelpMode:
		return m.updateHelp(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

// updateDetail closes the project detail overlay.
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = NormalMode
		m.detail = nil
	}
	return m, nil
}

// updateHelp closes the help overlay on any key.
func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = NormalMode
	return m, nil
}
