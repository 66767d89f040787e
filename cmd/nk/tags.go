package main

import (
	"github.com/spf13/cobra"
)

var tagArgs []string

func init() {
	for _, cmd := range []*cobra.Command{addTagCmd, removeTagCmd} {
		cmd.Flags().StringArrayVarP(&tagArgs, "tag", "t", nil, "Tag (can be repeated)")
		cmd.MarkFlagRequired("tag")
		rootCmd.AddCommand(cmd)
	}
}

var addTagCmd = &cobra.Command{
	Use:   "add-tag <id> --tag <tag>...",
	Short: "Add tags to a note",
	Long: `Add one or more tags to a note. Tags already present are kept once.

Example:
  nk add-tag 0 --tag urgent --tag home`,
	Args: cobra.ExactArgs(1),
	RunE: runAddTag,
}

var removeTagCmd = &cobra.Command{
	Use:   "remove-tag <id> --tag <tag>...",
	Short: "Remove tags from a note",
	Long: `Remove one or more tags from a note. Tags that are not present are
ignored, and the update time only changes when something was removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemoveTag,
}

func runAddTag(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	s := mustLoadStore()

	exitOnError(s.AddTag(id, tagArgs...))
	mustSaveStore(s)

	n, err := s.Get(id)
	exitOnError(err)
	outputNote(n, "Tagged")
	return nil
}

func runRemoveTag(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	s := mustLoadStore()

	before, err := s.Get(id)
	exitOnError(err)
	exitOnError(s.RemoveTag(id, tagArgs...))

	n, err := s.Get(id)
	exitOnError(err)
	if !n.Tags.Equal(before.Tags) {
		mustSaveStore(s)
	}
	outputNote(n, "Untagged")
	return nil
}
