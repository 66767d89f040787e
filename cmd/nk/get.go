package main

import (
	"errors"

	"github.com/matsen/nk/internal/clipboard"
	"github.com/matsen/nk/internal/note"
	"github.com/spf13/cobra"
)

var getCopy bool

func init() {
	getCmd.Flags().BoolVar(&getCopy, "copy", false, "Copy the note's content to the system clipboard")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single note",
	Long: `Show a single note by id.

With --copy the note's content is also copied to the clipboard (pbcopy on
macOS; wl-copy, xclip or xsel on Linux).`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	s := mustLoadStore()

	n, err := s.Get(id)
	exitOnError(err)

	if getCopy {
		if err := clipboard.Copy(n.Content); err != nil {
			if errors.Is(err, clipboard.ErrClipboardUnavailable) {
				exitWithError(ExitError, "clipboard unavailable: install pbcopy, wl-copy, xclip or xsel")
			}
			exitWithError(ExitError, "copying to clipboard: %v", err)
		}
		log.Debugw("copied note", "id", id)
	}

	if humanOutput {
		printNotesTable([]note.Note{n})
		outputHuman("\n%s\n", n.Content)
		return nil
	}
	outputJSON(n)
	return nil
}
