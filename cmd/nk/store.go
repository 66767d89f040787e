package main

import (
	"errors"
	"strconv"

	"github.com/matsen/nk/internal/codec"
	"github.com/matsen/nk/internal/config"
	"github.com/matsen/nk/internal/index"
	"github.com/matsen/nk/internal/notestore"
	"github.com/spf13/cobra"
)

// exitCodeFor maps store and codec errors to exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, notestore.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, notestore.ErrValidation),
		errors.Is(err, codec.ErrCorruptData):
		return ExitDataError
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	default:
		return ExitError
	}
}

// exitOnError exits with the code matching err, if err is non-nil.
func exitOnError(err error) {
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}
}

// mustLoadStore loads the notes file, exits on error.
func mustLoadStore() *notestore.Store {
	s, err := notestore.Load(settings.NotesFile)
	exitOnError(err)
	log.Debugw("loaded notes", "path", settings.NotesFile, "count", s.Len())
	return s
}

// mustSaveStore persists the store, exits on error.
func mustSaveStore(s *notestore.Store) {
	exitOnError(s.Save(settings.NotesFile))
	log.Debugw("saved notes", "path", settings.NotesFile, "count", s.Len())
}

// mustParseID parses a note id argument, exits on error.
func mustParseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		exitWithError(ExitError, "invalid note id %q: must be a non-negative integer", arg)
	}
	return id
}

// mustSortKey returns the --sort flag value, falling back to the configured
// default when the flag was not given.
func mustSortKey(cmd *cobra.Command, flag string) notestore.SortKey {
	if !cmd.Flags().Changed("sort") && settings.DefaultSort != "" {
		key, err := notestore.ParseSortKey(settings.DefaultSort)
		if err != nil {
			exitWithError(ExitConfigError, "default_sort: %v", err)
		}
		return key
	}

	key, err := notestore.ParseSortKey(flag)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return key
}

// mustOpenIndex opens the SQLite index next to the notes file and brings it
// up to date. The caller is responsible for calling Close().
func mustOpenIndex() *index.Index {
	x, err := index.Open(index.DBPath(settings.NotesFile))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}

	rebuilt, err := x.EnsureSynced(settings.NotesFile)
	if err != nil {
		x.Close()
		exitWithError(exitCodeFor(err), "syncing index: %v", err)
	}
	log.Debugw("index ready", "path", x.Path(), "rebuilt", rebuilt)
	return x
}
