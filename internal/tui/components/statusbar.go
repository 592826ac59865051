package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatusBarProps struct {
	Width    int
	Dragging bool
}

// RenderStatusBar renders a status bar with left and right aligned text.
// While a drag is in flight the right side shows the drop hint instead of
// the help hint.
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Tablero - Project Tracking"
	rightText := "press ? for help"
	if props.Dragging {
		rightText = "space: drop · esc: cancel"
	}

	leftRendered := subtleStyle.Render(leftText)
	rightRendered := subtleStyle.Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
