package main

import (
	"github.com/spf13/cobra"
)

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Confirm removal of every note")
	rootCmd.AddCommand(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear --yes",
	Short: "Remove all notes",
	Long: `Remove every note from the notes file. Ids start again at 0.

Requires --yes.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

// ClearResponse is the response for the clear command.
type ClearResponse struct {
	Status  string `json:"status"`
	Removed int    `json:"removed"`
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		exitWithError(ExitError, "refusing to remove all notes without --yes")
	}

	s := mustLoadStore()
	removed := s.Clear()
	mustSaveStore(s)

	if humanOutput {
		outputHuman("Removed %d notes\n", removed)
	} else {
		outputJSON(ClearResponse{Status: "cleared", Removed: removed})
	}
	return nil
}
