package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mtrevizo/tablero/internal/config"
	"github.com/mtrevizo/tablero/internal/tui/huhforms"
	"github.com/mtrevizo/tablero/internal/validation"
)

// alertMessage is the single generic validation failure message. The form
// reports no per-field detail, only this blocking alert.
const alertMessage = "Invalid input, please try again!"

// projectForm owns the new-project input state. The value holders outlive
// the huh form itself so a rebuilt form (after a validation alert) shows
// the preserved input.
type projectForm struct {
	title       string
	description string
	people      string
	confirm     bool

	form *huh.Form
}

func newProjectForm() *projectForm {
	f := &projectForm{}
	f.rebuild()
	return f
}

// rebuild replaces the huh form with a fresh one over the same value
// holders. Used at construction and after a validation alert, where the
// completed form has to be shown again with its input intact.
func (f *projectForm) rebuild() {
	f.form = huhforms.NewProjectForm(&f.title, &f.description, &f.people, &f.confirm)
}

// gather validates the collected input and returns the parsed people
// count. A false result carries no detail; the caller shows the generic
// alert and keeps the input for correction.
func (f *projectForm) gather(limits config.FormLimits) (people int, ok bool) {
	people, err := strconv.Atoi(strings.TrimSpace(f.people))
	if err != nil {
		return 0, false
	}

	for _, spec := range limits.ProjectSpecs(f.title, f.description, people) {
		if !validation.Validate(spec) {
			return 0, false
		}
	}
	return people, true
}

// updateProjectForm handles all messages while the form is open. Forms need
// every message, not just key presses.
func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		// Abandon the form entirely
		m.mode = NormalMode
		m.form = nil
		return m, nil
	}

	model, cmd := m.form.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form.form = f
	}

	if m.form.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.form.confirm {
		m.mode = NormalMode
		m.form = nil
		return m, nil
	}

	people, ok := m.form.gather(m.cfg.Form)
	if !ok {
		// Blocking alert; the rebuilt form keeps the entered values
		m.form.rebuild()
		m.mode = AlertMode
		return m, nil
	}

	m.store.AddProject(m.form.title, m.form.description, people)
	m.mode = NormalMode
	m.form = nil
	return m, tea.ClearScreen
}

// updateAlert dismisses the blocking alert and returns to the form with
// its input preserved.
func (m Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.mode = ProjectFormMode
		return m, m.form.form.Init()
	}
	return m, nil
}
