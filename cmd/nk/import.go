package main

import (
	"errors"
	"os"

	"github.com/matsen/nk/internal/importer"
	"github.com/matsen/nk/internal/note"
	"github.com/spf13/cobra"
)

var (
	importTags   []string
	importDryRun bool
)

func init() {
	importCmd.Flags().StringArrayVarP(&importTags, "tag", "t", nil, "Tag every imported note (can be repeated)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without saving")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <pattern>...",
	Short: "Create notes from text or PDF files",
	Long: `Create one note per matched file.

Patterns support ** for recursive matching. Plain text files are read as
UTF-8; PDF files are converted to plain text. Files without text are
reported and skipped.

Examples:
  nk import "journal/**/*.md" --tag journal
  nk import paper.pdf --tag reading`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

// ImportResult describes what happened to one file.
type ImportResult struct {
	Source string `json:"source"`
	ID     *int   `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ImportResponse is the response for the import command.
type ImportResponse struct {
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	DryRun   bool           `json:"dry_run,omitempty"`
	Results  []ImportResult `json:"results"`
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := note.NormalizeTags(importTags); err != nil {
		exitWithError(ExitDataError, "invalid --tag: %v", err)
	}

	files, err := importer.Expand(args)
	if err != nil {
		if errors.Is(err, importer.ErrNoMatches) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "%v", err)
	}

	s := mustLoadStore()

	resp := ImportResponse{DryRun: importDryRun, Results: make([]ImportResult, 0, len(files))}
	for _, path := range files {
		result := ImportResult{Source: path}

		draft, err := importer.ReadFile(path)
		if err == nil {
			var id int
			id, err = s.Add(draft.Content, importTags...)
			if err == nil {
				result.ID = &id
			}
		}
		if err != nil {
			log.Warnw("skipping file", "path", path, "error", err)
			result.Error = err.Error()
			resp.Skipped++
		} else {
			resp.Imported++
		}
		resp.Results = append(resp.Results, result)
	}

	if resp.Imported > 0 && !importDryRun {
		mustSaveStore(s)
	}

	if humanOutput {
		for _, r := range resp.Results {
			if r.ID != nil {
				outputHuman("  %s -> note %d\n", r.Source, *r.ID)
			} else {
				outputHuman("  %s: skipped (%s)\n", r.Source, r.Error)
			}
		}
		verb := "Imported"
		if importDryRun {
			verb = "Would import"
		}
		outputHuman("%s %d notes, skipped %d files\n", verb, resp.Imported, resp.Skipped)
	} else {
		outputJSON(resp)
	}

	if resp.Imported == 0 {
		_ = log.Sync()
		os.Exit(ExitDataError)
	}
	return nil
}
