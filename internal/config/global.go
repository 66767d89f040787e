// Package config handles global configuration and notes-file resolution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the global config cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config")

// GlobalConfig represents configuration stored in ~/.config/nk/config.yml.
type GlobalConfig struct {
	NotesFile   string `yaml:"notes_file,omitempty"`
	DefaultSort string `yaml:"default_sort,omitempty"`
	Human       bool   `yaml:"human,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "nk"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/nk/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}
	return LoadGlobalConfigFrom(path)
}

// LoadGlobalConfigFrom loads a config file from an explicit path.
func LoadGlobalConfigFrom(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}

	if cfg.NotesFile != "" {
		cfg.NotesFile = ExpandTilde(cfg.NotesFile)
	}
	return &cfg, nil
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
