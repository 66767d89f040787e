// Package main provides the nk CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/nk/internal/config"
	"github.com/matsen/nk/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	notesFile   string
	verbose     bool

	settings config.Settings
	log      = zap.NewNop().Sugar()
)

func main() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		// Print the error since we have SilenceErrors: true
		// This ensures Cobra errors (like missing required flags) are visible
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nk",
	Short: "Personal note manager",
	Long: `nk manages short text notes stored in a local JSON or YAML file.

Notes have a numeric id, content, tags and timestamps. Ids of removed notes
are reused by the next add. A disposable SQLite index next to the notes file
backs full-text search (search --fts) and ad-hoc SQL (query).

All commands output JSON by default; use --human for tables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVarP(&notesFile, "file", "f", "", "Notes file (default from $NK_NOTES_FILE, config, or notes.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	rootCmd.Version = Version
}

// setup loads .env, the global config and the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	l, err := logger.New("nk", verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	log = l

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	settings = config.Resolve(notesFile, cfg)
	if settings.Human && !cmd.Flags().Changed("human") {
		humanOutput = true
	}

	log.Debugw("resolved settings",
		"notes_file", settings.NotesFile,
		"source", settings.NotesFileSource,
		"config", settings.ConfigPath)
	return nil
}
