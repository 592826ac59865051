// Package components provides the reusable rendering pieces of the board:
// columns, project cards, overlays, and the status bar.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mtrevizo/tablero/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1, 1, 1)

	// CardStyle defines the appearance of individual projects as cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(theme.CardBg)).
			Padding(0, 1).
			Width(cardWidth)

	// TitleStyle defines the appearance of column titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Padding(0, 1)

	// FormBoxStyle defines the container for the new-project form (green border)
	FormBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Create)).
			Padding(1, 2)

	// AlertBoxStyle defines the blocking validation alert (red border)
	AlertBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.AlertBorder)).
			Padding(1, 3)

	// DetailBoxStyle defines the project detail overlay
	DetailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(1, 2)

	// HelpBoxStyle defines the help overlay
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Highlight)).
			Padding(1, 2)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
)

const (
	cardWidth = 32

	// CardHeight is the full rendered height of one project card
	CardHeight = 4
)
