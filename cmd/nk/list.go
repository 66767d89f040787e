package main

import (
	"github.com/spf13/cobra"
)

var (
	listSort  string
	listLimit int
)

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "id", "Sort by: id, date, update, content")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum notes to show (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all notes",
	Long: `List all notes in the chosen order.

Sort keys:
  id       ascending id (default)
  date     creation time, oldest first
  update   last update, oldest first
  content  alphabetical by content

Equal keys are ordered by id.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	key := mustSortKey(cmd, listSort)
	s := mustLoadStore()

	notes := s.List(key)
	if listLimit > 0 && len(notes) > listLimit {
		notes = notes[:listLimit]
	}
	outputNotes(notes)
	return nil
}
