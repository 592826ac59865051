package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	AddProject  string `yaml:"add_project"`
	ViewProject string `yaml:"view_project"`

	// Drag and drop
	GrabProject string `yaml:"grab_project"`
	DropProject string `yaml:"drop_project"`

	// Navigation
	PrevColumn  string `yaml:"prev_column"`
	NextColumn  string `yaml:"next_column"`
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddProject:  "a",
		ViewProject: "enter",

		GrabProject: " ",
		DropProject: " ",

		PrevColumn:  "h",
		NextColumn:  "l",
		PrevProject: "k",
		NextProject: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddProject == "" {
		k.AddProject = defaults.AddProject
	}
	if k.ViewProject == "" {
		k.ViewProject = defaults.ViewProject
	}
	if k.GrabProject == "" {
		k.GrabProject = defaults.GrabProject
	}
	if k.DropProject == "" {
		k.DropProject = defaults.DropProject
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevProject == "" {
		k.PrevProject = defaults.PrevProject
	}
	if k.NextProject == "" {
		k.NextProject = defaults.NextProject
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
