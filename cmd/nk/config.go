package main

import (
	"github.com/matsen/nk/internal/clipboard"
	"github.com/matsen/nk/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the resolved configuration and where the notes file came from.

Settings are read from $XDG_CONFIG_HOME/nk/config.yml:

  notes_file: ~/notes/notes.json
  default_sort: update
  human: true

The notes file can be overridden with $NK_NOTES_FILE (also read from a .env
file in the working directory) or --file; the default sort with
$NK_DEFAULT_SORT.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResponse is the JSON output of the config command.
type ConfigResponse struct {
	config.Settings
	Clipboard bool `json:"clipboard"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	resp := ConfigResponse{Settings: settings, Clipboard: clipboard.IsAvailable()}
	if humanOutput {
		outputHuman("config:       %s\n", settings.ConfigPath)
		outputHuman("notes_file:   %s (%s)\n", settings.NotesFile, settings.NotesFileSource)
		outputHuman("default_sort: %s\n", settings.DefaultSort)
		outputHuman("human:        %v\n", settings.Human)
		outputHuman("clipboard:    %v\n", resp.Clipboard)
		return nil
	}
	outputJSON(resp)
	return nil
}
