package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

var (
	searchLimit    int
	searchCategory string
	searchSources  string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search MCP servers and skills",
	Long: `Search every enabled catalog and rank entries by relevance.

Entries are scored on name similarity, keyword overlap, description and
feature matches. Entries listed by several sources are merged, keeping the
highest score. An empty query lists everything.

Examples:
  capseek search postgres
  capseek search "read pdf files" --source local,official
  capseek search --category database -n 5`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of results (default from settings)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Only entries in this category")
	searchCmd.Flags().StringVarP(&searchSources, "source", "s", domain.SourceAll,
		"Comma separated sources: local, official, community, github, skills-index or all")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	sources, err := domain.ParseSources(searchSources)
	if err != nil {
		return err
	}

	query := domain.Query{
		Text:     strings.Join(args, " "),
		Category: searchCategory,
		Sources:  sources,
		Limit:    searchLimit,
	}

	resp, err := searchService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printSourceWarnings(cmd.ErrOrStderr(), resp.SourceErrors)

	if searchJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	printResults(cmd.OutOrStdout(), resp.Results)
	return nil
}
