package main

import (
	"os"

	"github.com/matsen/nk/internal/export"
	"github.com/matsen/nk/internal/note"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSort   string
	exportTag    string
	exportTitle  string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().StringVarP(&exportSort, "sort", "s", "id", "Sort by: id, date, update, content")
	exportCmd.Flags().StringVar(&exportTag, "tag", "", "Only export notes with this tag")
	exportCmd.Flags().StringVar(&exportTitle, "title", "Notes", "Document title")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes as Markdown",
	Long: `Export notes as a Markdown document, one section per note.

Examples:
  nk export > notes.md
  nk export --tag work --sort update -o work.md`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// ExportResponse is the response for export with --output.
type ExportResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
	Count  int    `json:"count"`
}

func runExport(cmd *cobra.Command, args []string) error {
	key := mustSortKey(cmd, exportSort)
	s := mustLoadStore()

	var notes []note.Note
	for _, n := range s.List(key) {
		if exportTag == "" || n.Tags.Contains(exportTag) {
			notes = append(notes, n)
		}
	}

	doc := export.ToMarkdownList(exportTitle, notes)

	if exportOutput == "" {
		outputHuman("%s", doc)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(doc), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", exportOutput, err)
	}
	if humanOutput {
		outputHuman("Exported %d notes to %s\n", len(notes), exportOutput)
	} else {
		outputJSON(ExportResponse{Status: "exported", Path: exportOutput, Count: len(notes)})
	}
	return nil
}
