package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mtrevizo/tablero/internal/validation"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Form        FormLimits  `yaml:"form"`
}

// FormLimits are the validation bounds applied to the new-project form.
// All bounds are exclusive: a title of exactly MinTitleLength characters
// is rejected.
type FormLimits struct {
	MinTitleLength       int `yaml:"min_title_length"`
	MinDescriptionLength int `yaml:"min_description_length"`
	MaxDescriptionLength int `yaml:"max_description_length"`
	MinPeople            int `yaml:"min_people"`
	MaxPeople            int `yaml:"max_people"`
}

// DefaultFormLimits returns the default form validation bounds
func DefaultFormLimits() FormLimits {
	return FormLimits{
		MinTitleLength:       0,
		MinDescriptionLength: 5,
		MaxDescriptionLength: 500,
		MinPeople:            1,
		MaxPeople:            5,
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return defaultConfig(), nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Form:        DefaultFormLimits(),
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Form.applyDefaults()
}

// ProjectSpecs builds the validation specs for a new-project submission
// under these limits. Both the TUI form and the CLI validate through this
// so the bounds cannot drift apart.
func (f FormLimits) ProjectSpecs(title, description string, people int) []validation.Spec {
	titleSpec := validation.Spec{
		Value:    title,
		Required: true,
	}
	if f.MinTitleLength > 0 {
		titleSpec.MinLength = validation.MinLength(f.MinTitleLength)
	}

	return []validation.Spec{
		titleSpec,
		{
			Value:     description,
			Required:  true,
			MinLength: validation.MinLength(f.MinDescriptionLength),
			MaxLength: validation.MaxLength(f.MaxDescriptionLength),
		},
		{
			Value:    people,
			Required: true,
			Min:      validation.Min(float64(f.MinPeople)),
			Max:      validation.Max(float64(f.MaxPeople)),
		},
	}
}

func (f *FormLimits) applyDefaults() {
	defaults := DefaultFormLimits()

	if f.MinDescriptionLength == 0 {
		f.MinDescriptionLength = defaults.MinDescriptionLength
	}
	if f.MaxDescriptionLength == 0 {
		f.MaxDescriptionLength = defaults.MaxDescriptionLength
	}
	if f.MinPeople == 0 {
		f.MinPeople = defaults.MinPeople
	}
	if f.MaxPeople == 0 {
		f.MaxPeople = defaults.MaxPeople
	}
}
