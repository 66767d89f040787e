package main

import (
	"github.com/matsen/nk/internal/note"
	"github.com/spf13/cobra"
)

var (
	searchSort  string
	searchLimit int
	searchFTS   bool
)

func init() {
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "id", "Sort by: id, date, update, content")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (0 = all)")
	searchCmd.Flags().BoolVar(&searchFTS, "fts", false, "Use the full-text index (word match, ranked by relevance)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search notes by keyword",
	Long: `Search notes whose content or tags contain the keyword, ignoring case.

By default the keyword matches any substring. With --fts the SQLite
full-text index is used instead: whole words are matched and results are
ordered by relevance, ignoring --sort.

Examples:
  nk search milk
  nk search report --sort update
  nk search "quarterly report" --fts --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	key := mustSortKey(cmd, searchSort)
	s := mustLoadStore()

	var results []note.Note
	if searchFTS {
		x := mustOpenIndex()
		defer x.Close()

		ids, err := x.SearchText(keyword, searchLimit)
		if err != nil {
			exitWithError(ExitError, "full-text search: %v", err)
		}
		for _, id := range ids {
			n, err := s.Get(id)
			if err != nil {
				continue // removed after indexing
			}
			results = append(results, n)
		}
	} else {
		results = s.Search(keyword, key)
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}
	}

	log.Debugw("search", "keyword", keyword, "fts", searchFTS, "results", len(results))
	outputNotes(results)
	return nil
}
