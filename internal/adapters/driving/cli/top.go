package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

var (
	topBy       string
	topCategory string
	topLimit    int
	topJSON     bool
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "List the top rated or most downloaded entries",
	Long: `List entries ordered by a raw metric instead of relevance.

Examples:
  capseek top
  capseek top --by downloads --category database -n 3`,
	Args: cobra.NoArgs,
	RunE: runTop,
}

func init() {
	topCmd.Flags().StringVar(&topBy, "by", string(domain.CriterionRatings), "Metric: ratings or downloads")
	topCmd.Flags().StringVar(&topCategory, "category", "", "Only entries in this category")
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "Maximum number of entries (default from settings)")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	by := domain.Criterion(topBy)
	if by != domain.CriterionRatings && by != domain.CriterionDownloads {
		return fmt.Errorf("%w: %q (use ratings or downloads)", domain.ErrUnknownCriterion, topBy)
	}

	entries, err := searchService.Top(cmd.Context(), domain.TopOptions{
		By:       by,
		Category: topCategory,
		Limit:    topLimit,
	})
	if err != nil {
		return fmt.Errorf("top failed: %w", err)
	}

	if topJSON {
		return writeJSON(cmd.OutOrStdout(), entries)
	}

	if by == domain.CriterionDownloads {
		cmd.Printf("Most downloaded (top %d)\n\n", len(entries))
	} else {
		cmd.Printf("Top rated (top %d)\n\n", len(entries))
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}
