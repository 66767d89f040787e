package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a note",
	Long:    `Remove a note by id. The id becomes available to the next add.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

// RemoveResponse is the response for the remove command.
type RemoveResponse struct {
	Status string `json:"status"`
	ID     int    `json:"id"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := mustParseID(args[0])
	s := mustLoadStore()

	exitOnError(s.Remove(id))
	mustSaveStore(s)

	if humanOutput {
		outputHuman("Removed note %d\n", id)
	} else {
		outputJSON(RemoveResponse{Status: "removed", ID: id})
	}
	return nil
}
