package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtrevizo/tablero/internal/config"
	"github.com/mtrevizo/tablero/internal/models"
	"github.com/mtrevizo/tablero/internal/store"
)

// Mode identifies which surface currently owns keyboard input.
type Mode int

const (
	NormalMode Mode = iota
	ProjectFormMode
	AlertMode
	DetailMode
	HelpMode
)

// Model represents the application state for the TUI
type Model struct {
	store *store.ProjectStore
	cfg   *config.Config

	// Board columns in display order: Active, Finished. Each column is
	// wired to the store at construction and rebuilt on every snapshot.
	columns []*ColumnList
	cursor  int

	// drag holds the single in-flight drag; hover is the index of the
	// column currently marked receptive (-1 when none).
	drag  DragState
	hover int

	mode   Mode
	form   *projectForm
	detail *models.Project

	width  int
	height int
}

// InitialModel creates and initializes the TUI model. Column construction
// order fixes the store notification order: Active subscribes before
// Finished, before any mutation can occur.
func InitialModel(st *store.ProjectStore, cfg *config.Config) Model {
	columns := make([]*ColumnList, 0, len(models.Statuses))
	for _, status := range models.Statuses {
		columns = append(columns, NewColumnList(status, st))
	}

	// Seed the columns with whatever the store already holds (e.g.
	// projects restored from disk); seeding itself does not notify.
	snapshot := st.Projects()
	for _, c := range columns {
		c.onSnapshot(snapshot)
	}

	return Model{
		store:   st,
		cfg:     cfg,
		columns: columns,
		hover:   -1,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// currentColumn returns the column under the cursor.
func (m Model) currentColumn() *ColumnList {
	return m.columns[m.cursor]
}

// hoveredColumn returns the column marked receptive, or nil when no drag
// is hovering anywhere.
func (m Model) hoveredColumn() *ColumnList {
	if m.hover < 0 || m.hover >= len(m.columns) {
		return nil
	}
	return m.columns[m.hover]
}
