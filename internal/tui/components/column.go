package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mtrevizo/tablero/internal/models"
	"github.com/mtrevizo/tablero/internal/tui/theme"
)

// ColumnProps carries everything needed to render one status column.
type ColumnProps struct {
	Status      models.Status
	Projects    []models.Project
	Selected    bool // cursor is on this column
	SelectedIdx int  // index of the selected card (-1 when not this column)
	DraggingID  string
	Receptive   bool // a drag is hovering over this column
	Height      int
	Scroll      int // index of first visible card
}

// RenderColumn renders a complete status column with its title and cards.
// The column fully re-renders from the snapshot it was last given; there is
// no incremental diffing.
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Status.Display(), len(props.Projects))
	content := TitleStyle.Render(header) + "\n"

	indicatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Align(lipgloss.Center)

	if len(props.Projects) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 1)
		content += emptyStyle.Render("No projects")
	} else {
		// Header, scroll indicators, borders and padding eat fixed lines;
		// the rest is card space.
		const columnOverhead = 5
		availableHeight := props.Height - columnOverhead
		maxVisible := max(availableHeight/CardHeight, 1)

		if props.Scroll > 0 {
			content += indicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(props.Scroll+maxVisible, len(props.Projects))
		for i, project := range props.Projects[props.Scroll:endIdx] {
			actualIdx := props.Scroll + i
			selected := props.Selected && actualIdx == props.SelectedIdx
			dragging := props.DraggingID != "" && project.ID == props.DraggingID
			content += RenderCard(project, selected, dragging) + "\n"
		}

		if endIdx < len(props.Projects) {
			content += indicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	switch {
	case props.Receptive:
		// Receptive mark while a drag hovers over this column
		style = style.BorderForeground(lipgloss.Color(theme.Receptive)).
			Border(lipgloss.ThickBorder())
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}
	style = style.Width(cardWidth + 4)

	return style.Render(strings.TrimRight(content, "\n"))
}
