package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/matsen/nk/internal/note"
)

// Constants for output formatting.
const (
	ContentMaxLen = 60 // Content column width in note tables
	TagsMaxLen    = 30 // Tags column width in note tables
	CellMaxLen    = 40 // Column cap for query tables

	// DateLayout renders timestamps as day/month/year - hour:minute.
	DateLayout = "02/01/2006 - 15:04"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	_ = log.Sync()
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputNote writes a single note in the selected format.
func outputNote(n note.Note, verb string) {
	if humanOutput {
		outputHuman("%s note %d\n", verb, n.ID)
		printNotesTable([]note.Note{n})
		return
	}
	outputJSON(n)
}

// outputNotes writes a list of notes in the selected format.
func outputNotes(notes []note.Note) {
	if humanOutput {
		printNotesTable(notes)
		return
	}
	if notes == nil {
		notes = []note.Note{}
	}
	outputJSON(notes)
}

// printNotesTable prints notes as an aligned table.
func printNotesTable(notes []note.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}

	idWidth := len("ID")
	for _, n := range notes {
		if w := len(strconv.Itoa(n.ID)); w > idWidth {
			idWidth = w
		}
	}
	dateWidth := len(DateLayout)

	fmt.Printf("%s  %s  %s  %s  %s\n",
		padLeft("ID", idWidth),
		padRight("CREATED", dateWidth),
		padRight("UPDATED", dateWidth),
		padRight("TAGS", TagsMaxLen),
		"CONTENT")
	fmt.Println(strings.Repeat("-", idWidth+2*dateWidth+TagsMaxLen+ContentMaxLen+8))

	for _, n := range notes {
		fmt.Printf("%s  %s  %s  %s  %s\n",
			padLeft(strconv.Itoa(n.ID), idWidth),
			padRight(formatDate(n.CreatedAt), dateWidth),
			padRight(formatDate(n.UpdatedAt), dateWidth),
			padRight(truncateString(n.Tags.String(), TagsMaxLen), TagsMaxLen),
			truncateString(singleLine(n.Content), ContentMaxLen))
	}
}

// formatDate renders t in local time, or "-" for the zero time.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(DateLayout)
}

// singleLine collapses runs of whitespace, including newlines, to one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateString shortens s to maxLen runes, marking the cut with "...".
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

// padRight pads a string with spaces on the right.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// padLeft pads a string with spaces on the left.
func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
