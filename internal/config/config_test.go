package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Storage.Path != "addressbook.txt" {
		t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, "addressbook.txt")
	}
	if cfg.UI.Plain {
		t.Error("UI.Plain = true, want false")
	}
}

func TestLoadLayered_NoFiles(t *testing.T) {
	cfg, err := LoadLayered(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("LoadLayered() = %+v, want defaults", cfg)
	}
}

func TestLoadLayered_SingleFile(t *testing.T) {
	path := writeConfig(t, "storage:\n  path: contacts.txt\nui:\n  plain: true\n")

	cfg, err := LoadLayered(path)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.Storage.Path != "contacts.txt" {
		t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, "contacts.txt")
	}
	if !cfg.UI.Plain {
		t.Error("UI.Plain = false, want true")
	}
}

func TestLoadLayered_LaterLayerWins(t *testing.T) {
	// Given a user layer and a project layer that both set the path
	user := writeConfig(t, "storage:\n  path: user.txt\nui:\n  plain: true\n")
	project := writeConfig(t, "storage:\n  path: project.txt\n")

	// When loading user first, project second
	cfg, err := LoadLayered(user, project)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}

	// Then the project path wins while the untouched ui setting survives
	if cfg.Storage.Path != "project.txt" {
		t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, "project.txt")
	}
	if !cfg.UI.Plain {
		t.Error("UI.Plain = false, want true from the user layer")
	}
}

func TestLoadLayered_PartialLayerKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "ui:\n  plain: true\n")

	cfg, err := LoadLayered(path)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if cfg.Storage.Path != "addressbook.txt" {
		t.Errorf("Storage.Path = %q, want the default", cfg.Storage.Path)
	}
	if !cfg.UI.Plain {
		t.Error("UI.Plain = false, want true")
	}
}

func TestLoadLayered_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "storage:\n  path: contacts.txt\n  mode: append\n")

	if _, err := LoadLayered(path); err == nil {
		t.Error("LoadLayered() succeeded, want unknown-field error")
	}
}

func TestLoadLayered_CommentOnlyFile(t *testing.T) {
	path := writeConfig(t, "# nothing configured yet\n")

	cfg, err := LoadLayered(path)
	if err != nil {
		t.Fatalf("LoadLayered() error = %v", err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("LoadLayered() = %+v, want defaults", cfg)
	}
}

func TestLoadLayered_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "storage: [not\n")

	_, err := LoadLayered(path)
	if err == nil {
		t.Fatal("LoadLayered() succeeded, want parse error")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %v, want a parsing error", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ROLODEX_STORAGE_PATH", "/tmp/env.txt")
	t.Setenv("ROLODEX_PLAIN", "true")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Storage.Path != "/tmp/env.txt" {
		t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, "/tmp/env.txt")
	}
	if !cfg.UI.Plain {
		t.Error("UI.Plain = false, want true")
	}
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	t.Setenv("ROLODEX_PLAIN", "maybe")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() succeeded, want error for invalid bool")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	cfg.Storage.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() succeeded with empty storage path, want error")
	}
}
