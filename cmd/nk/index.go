package main

import (
	"time"

	"github.com/matsen/nk/internal/index"
	"github.com/spf13/cobra"
)

var indexForce bool

func init() {
	indexCmd.Flags().BoolVar(&indexForce, "force", false, "Rebuild even if the index is current")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the SQLite search index",
	Long: `Rebuild the SQLite index next to the notes file.

The index is rebuilt automatically by search --fts and query when the
notes file has changed, so this is only needed to warm it up or to force a
rebuild. The index file can be deleted at any time.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

// IndexResponse is the response for the index command.
type IndexResponse struct {
	Status   string    `json:"status"`
	Path     string    `json:"path"`
	Count    int       `json:"count"`
	LastSync time.Time `json:"last_sync"`
}

func runIndex(cmd *cobra.Command, args []string) error {
	x, err := index.Open(index.DBPath(settings.NotesFile))
	if err != nil {
		exitWithError(ExitError, "opening index: %v", err)
	}
	defer x.Close()

	status := "current"
	if indexForce {
		s := mustLoadStore()
		hash, err := index.HashFile(settings.NotesFile)
		if err != nil {
			exitWithError(ExitError, "computing hash: %v", err)
		}
		if err := x.Rebuild(s.List(""), hash); err != nil {
			exitWithError(ExitError, "rebuilding index: %v", err)
		}
		status = "rebuilt"
	} else {
		rebuilt, err := x.EnsureSynced(settings.NotesFile)
		if err != nil {
			exitWithError(exitCodeFor(err), "syncing index: %v", err)
		}
		if rebuilt {
			status = "rebuilt"
		}
	}

	count, err := x.Count()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	lastSync, err := x.LastSync()
	if err != nil {
		exitWithError(ExitError, "reading sync time: %v", err)
	}

	if humanOutput {
		outputHuman("Index %s: %d notes in %s\n", status, count, x.Path())
	} else {
		outputJSON(IndexResponse{Status: status, Path: x.Path(), Count: count, LastSync: lastSync})
	}
	return nil
}
