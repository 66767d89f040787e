package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var addTags []string

func init() {
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag to attach (can be repeated)")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <content>...",
	Short: "Add a note",
	Long: `Add a note with the given content and optional tags.

Multiple content arguments are joined with spaces. The new note gets the
smallest id not currently in use.

Examples:
  nk add "Buy milk" --tag home --tag errand
  nk add Call mom`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s := mustLoadStore()

	id, err := s.Add(strings.Join(args, " "), addTags...)
	exitOnError(err)
	mustSaveStore(s)

	n, err := s.Get(id)
	exitOnError(err)
	outputNote(n, "Added")
	return nil
}
