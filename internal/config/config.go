package config

import (
	"os"
)

// Environment variables consulted after .env loading.
const (
	EnvNotesFile   = "NK_NOTES_FILE"
	EnvDefaultSort = "NK_DEFAULT_SORT"
)

// DefaultNotesFile is used when nothing else names a notes file.
const DefaultNotesFile = "notes.json"

// Source names where a resolved setting came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// Settings is the effective configuration for one invocation.
type Settings struct {
	NotesFile       string `json:"notes_file"`
	NotesFileSource Source `json:"notes_file_source"`
	DefaultSort     string `json:"default_sort"`
	Human           bool   `json:"human"`
	ConfigPath      string `json:"config_path"`
}

// Resolve merges the --file flag, environment and global config.
// Precedence: flag > NK_NOTES_FILE > config file > notes.json.
func Resolve(flagFile string, cfg *GlobalConfig) Settings {
	if cfg == nil {
		cfg = &GlobalConfig{}
	}

	s := Settings{
		DefaultSort: cfg.DefaultSort,
		Human:       cfg.Human,
		ConfigPath:  GlobalConfigPath(),
	}

	switch {
	case flagFile != "":
		s.NotesFile, s.NotesFileSource = flagFile, SourceFlag
	case os.Getenv(EnvNotesFile) != "":
		s.NotesFile, s.NotesFileSource = ExpandTilde(os.Getenv(EnvNotesFile)), SourceEnv
	case cfg.NotesFile != "":
		s.NotesFile, s.NotesFileSource = cfg.NotesFile, SourceConfig
	default:
		s.NotesFile, s.NotesFileSource = DefaultNotesFile, SourceDefault
	}

	if v := os.Getenv(EnvDefaultSort); v != "" {
		s.DefaultSort = v
	}
	return s
}
