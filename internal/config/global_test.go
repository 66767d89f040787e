package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := "/custom/config/nk/config.yml"
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}

	// Empty XDG_CONFIG_HOME falls back to ~/.config
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	path = GlobalConfigPath()
	want = filepath.Join(home, ".config", "nk", "config.yml")
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig_NotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadGlobalConfig() returned nil")
	}
	if cfg.NotesFile != "" || cfg.DefaultSort != "" || cfg.Human {
		t.Errorf("LoadGlobalConfig() = %+v, want empty", cfg)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, GlobalConfigFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGlobalConfig_Valid(t *testing.T) {
	writeConfig(t, "notes_file: /data/notes.yml\ndefault_sort: date\nhuman: true\n")

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.NotesFile != "/data/notes.yml" {
		t.Errorf("NotesFile = %q, want /data/notes.yml", cfg.NotesFile)
	}
	if cfg.DefaultSort != "date" {
		t.Errorf("DefaultSort = %q, want date", cfg.DefaultSort)
	}
	if !cfg.Human {
		t.Error("Human = false, want true")
	}
}

func TestLoadGlobalConfig_ExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	writeConfig(t, "notes_file: ~/notes/main.json\n")

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	want := filepath.Join(home, "notes", "main.json")
	if cfg.NotesFile != want {
		t.Errorf("NotesFile = %q, want %q", cfg.NotesFile, want)
	}
}

func TestLoadGlobalConfig_Invalid(t *testing.T) {
	writeConfig(t, "notes_file: [unclosed\n")

	_, err := LoadGlobalConfig()
	if err == nil {
		t.Fatal("LoadGlobalConfig() should fail on malformed YAML")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/x/y.json", filepath.Join(home, "x", "y.json")},
		{"/abs/path", "/abs/path"},
		{"rel/~path", "rel/~path"},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		if got := ExpandTilde(tt.in); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
