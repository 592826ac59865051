package huhforms

import "github.com/charmbracelet/huh"

// NewProjectForm creates a huh form for adding a new project.
// The form collects raw input only; the validation pass happens after
// submission so a single generic alert can cover any violation.
func NewProjectForm(
	title *string,
	description *string,
	people *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter project title...").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is this project about?").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewInput().
			Key("people").
			Title("People").
			Placeholder("Number of people assigned").
			Value(people),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(CreateKeyMapWithShiftEnter())
}
