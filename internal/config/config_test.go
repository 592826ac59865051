package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadReturnsDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.KeyMappings.GrabProject != " " {
		t.Errorf("GrabProject = %q, want space", cfg.KeyMappings.GrabProject)
	}
	if cfg.Form.MinDescriptionLength != 5 {
		t.Errorf("MinDescriptionLength = %d, want 5", cfg.Form.MinDescriptionLength)
	}
	if cfg.Form.MaxPeople != 5 {
		t.Errorf("MaxPeople = %d, want 5", cfg.Form.MaxPeople)
	}
}

func TestLoadMergesPartialConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "tablero")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	partial := []byte("key_mappings:\n  quit: \"x\"\nform:\n  max_people: 10\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), partial, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %q, want overridden value %q", cfg.KeyMappings.Quit, "x")
	}
	if cfg.KeyMappings.AddProject != "a" {
		t.Errorf("AddProject = %q, want default %q", cfg.KeyMappings.AddProject, "a")
	}
	if cfg.Form.MaxPeople != 10 {
		t.Errorf("MaxPeople = %d, want overridden 10", cfg.Form.MaxPeople)
	}
	if cfg.Form.MinDescriptionLength != 5 {
		t.Errorf("MinDescriptionLength = %d, want default 5", cfg.Form.MinDescriptionLength)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	cfg.KeyMappings.Quit = "Q"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() returned error: %v", err)
	}
	if reloaded.KeyMappings.Quit != "Q" {
		t.Errorf("reloaded Quit = %q, want %q", reloaded.KeyMappings.Quit, "Q")
	}
}

// TestConfigYAMLShape guards the on-disk field names.
func TestConfigYAMLShape(t *testing.T) {
	data, err := yaml.Marshal(&Config{
		KeyMappings: DefaultKeyMappings(),
		Form:        DefaultFormLimits(),
	})
	if err != nil {
		t.Fatalf("yaml.Marshal returned error: %v", err)
	}

	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("yaml.Unmarshal returned error: %v", err)
	}

	if _, ok := raw["key_mappings"]["grab_project"]; !ok {
		t.Error("expected key_mappings.grab_project in marshaled config")
	}
	if _, ok := raw["form"]["min_description_length"]; !ok {
		t.Error("expected form.min_description_length in marshaled config")
	}
}
