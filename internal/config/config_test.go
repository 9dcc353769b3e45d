package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.NextFilter != "tab" {
		t.Errorf("Default NextFilter key = %s, want tab", defaults.NextFilter)
	}
	if defaults.ViewTask != " " {
		t.Errorf("Default ViewTask key = %s, want space", defaults.ViewTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAREFA_API_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("Loaded APIURL = %s, want %s (default)", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Loaded config has empty accent color")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("TAREFA_API_URL", "")

	configDir := filepath.Join(tempDir, "tarefa")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `api_url: "https://boards.example.com"
key_mappings:
  quit: "x"
theme:
  preset: "light"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.APIURL != "https://boards.example.com" {
		t.Errorf("APIURL = %s, want the configured value", cfg.APIURL)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit key = %s, want x (from file)", cfg.KeyMappings.Quit)
	}
	// Unset mappings fall back to defaults
	if cfg.KeyMappings.NextFilter != "tab" {
		t.Errorf("NextFilter key = %s, want tab (default)", cfg.KeyMappings.NextFilter)
	}
	// Preset fills the scheme
	if cfg.ColorScheme.Background == "" {
		t.Error("light preset did not fill the background color")
	}
}

func TestEnvOverridesAPIURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAREFA_API_URL", "http://10.0.0.2:8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.APIURL != "http://10.0.0.2:8080" {
		t.Errorf("APIURL = %s, want the TAREFA_API_URL value", cfg.APIURL)
	}
}
