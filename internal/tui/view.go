package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtrevizo/tablero/internal/tui/components"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ProjectFormMode:
		return m.viewProjectForm()
	case AlertMode:
		return m.viewAlert()
	case DetailMode:
		return m.viewDetail()
	case HelpMode:
		return m.viewHelp()
	}

	return m.viewBoard()
}

// viewBoard renders the two status columns and the status bar.
func (m Model) viewBoard() string {
	columnHeight := m.height - 2

	var draggingID string
	if m.drag.Active() {
		draggingID = m.drag.Payload()
	}

	rendered := make([]string, 0, len(m.columns))
	for i, c := range m.columns {
		cursorHere := i == m.cursor && !m.drag.Active()
		rendered = append(rendered, c.render(cursorHere, draggingID, columnHeight))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:    m.width,
		Dragging: m.drag.Active(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, board, statusBar)
}

// viewProjectForm shows the huh form in a centered dialog.
func (m Model) viewProjectForm() string {
	formBox := components.FormBoxStyle.
		Width(m.width / 2).
		Render("New Project\n\n" + m.form.form.View())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		formBox,
	)
}

// viewAlert shows the blocking validation alert. Dismissing it returns to
// the form with the entered values intact.
func (m Model) viewAlert() string {
	alertBox := components.AlertBoxStyle.
		Width(44).
		Render(alertMessage + "\n\npress enter to continue")

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		alertBox,
	)
}

// viewDetail shows the full project view with a markdown description.
func (m Model) viewDetail() string {
	width := m.width / 2
	detailBox := components.DetailBoxStyle.
		Width(width).
		Render(components.RenderDetail(components.DetailProps{
			Project: *m.detail,
			Width:   width - 6,
		}))

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		detailBox,
	)
}

// viewHelp lists the active key bindings.
func (m Model) viewHelp() string {
	km := m.cfg.KeyMappings

	help := fmt.Sprintf(`Key bindings

  %-12s add project
  %-12s view project
  %-12s grab / drop project
  %-12s previous column
  %-12s next column
  %-12s previous project
  %-12s next project
  %-12s quit

press any key to close`,
		km.AddProject,
		km.ViewProject,
		printableKey(km.GrabProject),
		km.PrevColumn,
		km.NextColumn,
		km.PrevProject,
		km.NextProject,
		km.Quit,
	)

	helpBox := components.HelpBoxStyle.Render(help)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		helpBox,
	)
}

func printableKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
