package main

import (
	"github.com/spf13/cobra"
)

var editContent string

func init() {
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content (omit to only refresh the update time)")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note's content",
	Long: `Replace a note's content and refresh its update time.

Without --content the text is kept and only the update time changes.

Examples:
  nk edit 1 --content "Write report v2"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	s := mustLoadStore()

	exitOnError(s.Edit(id, editContent))
	mustSaveStore(s)

	n, err := s.Get(id)
	exitOnError(err)
	outputNote(n, "Edited")
	return nil
}
