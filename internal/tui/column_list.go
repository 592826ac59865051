package tui

import (
	"github.com/mtrevizo/tablero/internal/models"
	"github.com/mtrevizo/tablero/internal/store"
	"github.com/mtrevizo/tablero/internal/tui/components"
)

// ColumnList is the presentational component for one status column. It
// subscribes to the store at construction and keeps the filtered slice of
// the latest snapshot; every notification fully replaces its contents.
//
// ColumnList is a drop target: dropping a card on it moves the project to
// this column's status.
type ColumnList struct {
	status   models.Status
	store    *store.ProjectStore
	projects []models.Project
	selected int
	scroll   int
	hovered  bool
}

// Compile-time verification that *ColumnList is a drop target
var _ DropTarget = (*ColumnList)(nil)

// NewColumnList creates the column and registers its store subscription.
// Construction order at startup therefore fixes notification order.
func NewColumnList(status models.Status, st *store.ProjectStore) *ColumnList {
	c := &ColumnList{status: status, store: st}
	st.Subscribe(c.onSnapshot)
	return c
}

// onSnapshot replaces the column's contents with the projects matching its
// status, keeping the snapshot's insertion order.
func (c *ColumnList) onSnapshot(projects []models.Project) {
	c.projects = c.projects[:0]
	for _, p := range projects {
		if p.Status == c.status {
			c.projects = append(c.projects, p)
		}
	}

	// Keep the cursor in bounds after the rebuild
	if c.selected >= len(c.projects) {
		c.selected = max(len(c.projects)-1, 0)
	}
}

// AcceptsPayload accepts only the plain-text id payload.
func (c *ColumnList) AcceptsPayload(kind string) bool {
	return kind == PayloadTypeText
}

// DragOver marks the column receptive while a drag hovers over it.
func (c *ColumnList) DragOver() {
	c.hovered = true
}

// DragLeave removes the receptive mark.
func (c *ColumnList) DragLeave() {
	c.hovered = false
}

// Drop moves the dropped project to this column's status. The store
// notifies all columns afterwards, which re-renders both lists.
func (c *ColumnList) Drop(id string) {
	c.hovered = false
	c.store.MoveProject(id, c.status)
}

// Status returns the column's fixed status.
func (c *ColumnList) Status() models.Status {
	return c.status
}

// Projects returns the column's current filtered contents.
func (c *ColumnList) Projects() []models.Project {
	return c.projects
}

// Selected returns the project under the cursor, or nil for an empty column.
func (c *ColumnList) Selected() *models.Project {
	if len(c.projects) == 0 || c.selected >= len(c.projects) {
		return nil
	}
	return &c.projects[c.selected]
}

// SelectedCard returns the draggable for the project under the cursor.
func (c *ColumnList) SelectedCard() (ProjectCard, bool) {
	p := c.Selected()
	if p == nil {
		return ProjectCard{}, false
	}
	return ProjectCard{id: p.ID}, true
}

// SelectPrev moves the cursor up one card.
func (c *ColumnList) SelectPrev() {
	if c.selected > 0 {
		c.selected--
	}
}

// SelectNext moves the cursor down one card.
func (c *ColumnList) SelectNext() {
	if c.selected < len(c.projects)-1 {
		c.selected++
	}
}

// ensureVisible scrolls the column so the cursor stays on screen.
func (c *ColumnList) ensureVisible(maxVisible int) {
	if maxVisible < 1 {
		maxVisible = 1
	}
	if c.selected < c.scroll {
		c.scroll = c.selected
	}
	if c.selected >= c.scroll+maxVisible {
		c.scroll = c.selected - maxVisible + 1
	}
}

// render produces the column's full view for this frame.
func (c *ColumnList) render(cursorHere bool, draggingID string, height int) string {
	maxVisible := max((height-5)/components.CardHeight, 1)
	c.ensureVisible(maxVisible)

	selectedIdx := -1
	if cursorHere {
		selectedIdx = c.selected
	}

	return components.RenderColumn(components.ColumnProps{
		Status:      c.status,
		Projects:    c.projects,
		Selected:    cursorHere,
		SelectedIdx: selectedIdx,
		DraggingID:  draggingID,
		Receptive:   c.hovered,
		Height:      height,
		Scroll:      c.scroll,
	})
}
