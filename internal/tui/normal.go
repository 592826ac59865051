package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleNormalMode dispatches key events on the board itself: navigation,
// grab/drop, and opening the form, detail, or help surfaces.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.cfg.KeyMappings

	// An in-flight drag narrows the keymap to hover moves, drop, and cancel
	if m.drag.Active() {
		return m.handleDragging(key)
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit

	case km.ShowHelp:
		m.mode = HelpMode

	case km.AddProject:
		m.form = newProjectForm()
		m.mode = ProjectFormMode
		return m, m.form.form.Init()

	case km.ViewProject:
		if p := m.currentColumn().Selected(); p != nil {
			m.detail = p
			m.mode = DetailMode
		}

	case km.PrevColumn, "left":
		if m.cursor > 0 {
			m.cursor--
		}

	case km.NextColumn, "right":
		if m.cursor < len(m.columns)-1 {
			m.cursor++
		}

	case km.PrevProject, "up":
		m.currentColumn().SelectPrev()

	case km.NextProject, "down":
		m.currentColumn().SelectNext()

	case km.GrabProject:
		if card, ok := m.currentColumn().SelectedCard(); ok {
			m.drag.Start(card)
			// The drag starts hovering over its own column
			m.hover = m.cursor
			m.columns[m.hover].DragOver()
		}
	}

	return m, nil
}

// handleDragging moves the receptive mark between columns and resolves the
// drag by drop or cancel.
func (m Model) handleDragging(key string) (tea.Model, tea.Cmd) {
	km := m.cfg.KeyMappings

	switch key {
	case km.PrevColumn, "left":
		m.moveHover(m.hover - 1)

	case km.NextColumn, "right":
		m.moveHover(m.hover + 1)

	case km.DropProject, "enter":
		if target := m.hoveredColumn(); target != nil {
			m.drag.DropOn(target)
			// Follow the drop with the cursor
			m.cursor = m.hover
		} else {
			m.drag.Cancel()
		}
		m.hover = -1

	case "esc", "q":
		// Drag abandoned without a drop; status unchanged
		if target := m.hoveredColumn(); target != nil {
			target.DragLeave()
		}
		m.drag.Cancel()
		m.hover = -1
	}

	return m, nil
}

// moveHover shifts the receptive mark to the column at idx: the previous
// target gets a drag-leave, the new one a drag-over.
func (m *Model) moveHover(idx int) {
	if idx < 0 || idx >= len(m.columns) || idx == m.hover {
		return
	}
	if prev := m.hoveredColumn(); prev != nil {
		prev.DragLeave()
	}
	m.hover = idx
	m.columns[idx].DragOver()
}
