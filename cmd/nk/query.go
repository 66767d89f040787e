package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/matsen/nk/internal/index"
	"github.com/spf13/cobra"
)

var queryCSV bool

func init() {
	queryCmd.Flags().BoolVar(&queryCSV, "csv", false, "Output CSV")
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Query notes using SQL",
	Long: `Execute a SQL query against the notes index.

Tables:
  notes(id, content, created_at, updated_at)
  note_tags(note_id, position, tag)
  notes_fts(id, content, tags)   -- FTS5

Examples:
  nk query "SELECT id, content FROM notes WHERE created_at > '2026-01-01'"
  nk query "SELECT tag, COUNT(*) AS n FROM note_tags GROUP BY tag ORDER BY n DESC"
  nk query "SELECT id FROM notes_fts WHERE notes_fts MATCH 'milk'" --csv`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	x := mustOpenIndex()
	defer x.Close()

	cols, records, err := x.QueryTable(args[0])
	if err != nil {
		exitWithError(ExitError, "SQL error: %v", err)
	}

	switch {
	case queryCSV:
		outputCSV(cols, records)
	case humanOutput:
		outputTable(cols, records)
	default:
		if records == nil {
			records = []index.Record{}
		}
		outputJSON(records)
	}
	return nil
}

// outputCSV writes records as CSV.
func outputCSV(cols []string, records []index.Record) {
	w := csv.NewWriter(os.Stdout)
	w.Write(cols)
	for _, record := range records {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = formatCell(record[col])
		}
		w.Write(row)
	}
	w.Flush()
}

// outputTable writes records as a formatted table.
func outputTable(cols []string, records []index.Record) {
	if len(records) == 0 {
		fmt.Println("(0 rows)")
		return
	}

	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = len(col)
		for _, record := range records {
			if n := len([]rune(formatCell(record[col]))); n > widths[i] {
				widths[i] = n
			}
		}
		if widths[i] > CellMaxLen {
			widths[i] = CellMaxLen
		}
	}

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = padRight(strings.ToUpper(col), widths[i])
	}
	fmt.Println(strings.Join(header, "  "))

	for _, record := range records {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = padRight(truncateString(singleLine(formatCell(record[col])), widths[i]), widths[i])
		}
		fmt.Println(strings.Join(row, "  "))
	}

	fmt.Printf("(%d rows)\n", len(records))
}

func formatCell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
