package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtrevizo/tablero/internal/models"
	"github.com/mtrevizo/tablero/internal/tui/theme"
)

// RenderCard renders a single project as a card
//
//	┌──────────────────────┐
//	│ {Title}              │
//	│ 3 people assigned    │
//	└──────────────────────┘
func RenderCard(project models.Project, selected, dragging bool) string {
	// Truncate on runes so multi-byte titles cannot be split mid-character
	title := project.Title
	if runes := []rune(title); len(runes) > cardWidth-4 {
		title = string(runes[:cardWidth-7]) + "..."
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal))
	if dragging {
		titleStyle = titleStyle.Foreground(lipgloss.Color(theme.Highlight)).Italic(true)
	}

	people := subtleStyle.Render(peopleLabel(project.PeopleCount))
	content := titleStyle.Render(title) + "\n" + people

	style := CardStyle
	switch {
	case dragging:
		style = style.BorderForeground(lipgloss.Color(theme.Highlight)).
			Background(lipgloss.Color(theme.SelectedBg))
	case selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}

	return style.Render(content)
}

func peopleLabel(count int) string {
	if count == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d people assigned", count)
}
