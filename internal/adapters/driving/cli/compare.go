package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

var (
	compareCriteria []string
	compareJSON     bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <name> <name> [name...]",
	Short: "Compare entries side by side",
	Long: `Compare two or more entries across downloads, features, ratings and
popularity (downloads × rating).

Names are resolved by exact match first, then by substring. Names that
match nothing are kept in the report with zero metrics and suggestions.

Examples:
  capseek compare postgres sqlite
  capseek compare pdf docx xlsx --criteria ratings,popularity`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringSliceVarP(&compareCriteria, "criteria", "c", nil,
		"Criteria: downloads, features, ratings, popularity (default downloads,features,ratings)")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	if compareService == nil {
		return errors.New("compare service not configured")
	}

	criteria, err := domain.ParseCriteria(compareCriteria)
	if err != nil {
		return err
	}

	report, err := compareService.Compare(cmd.Context(), args, criteria)
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if compareJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	printComparison(cmd.OutOrStdout(), report)
	return nil
}

func printComparison(w io.Writer, r *domain.ComparisonReport) {
	fmt.Fprintf(w, "Comparing %d entries\n\n", r.Summary.TotalEntries)

	for _, e := range r.Entries {
		if e.Unknown {
			fmt.Fprintf(w, "  ? %s (not found)", e.Input)
			if len(e.Suggestions) > 0 {
				fmt.Fprintf(w, " did you mean: %s", strings.Join(e.Suggestions, ", "))
			}
			fmt.Fprintln(w)
			continue
		}
		m := e.Entry.Metrics
		fmt.Fprintf(w, "  %s %s  ⭐ %.1f  📥 %s  features: %d\n",
			e.Entry.Source.Icon(), e.Entry.Name, m.Rating, formatCount(m.Downloads), len(e.Entry.Features))
	}
	fmt.Fprintln(w)

	for _, c := range r.Criteria {
		fmt.Fprintf(w, "[%s]\n", c)
		for i, v := range r.Rankings[c] {
			fmt.Fprintf(w, "  %s %s  %s\n", rankLabel(i+1), v.Name, formatValue(c, v.Value))
		}
		fmt.Fprintln(w)
	}

	if r.Summary.BestOverall != "" {
		fmt.Fprintf(w, "Best overall: %s\n", r.Summary.BestOverall)
	}
	if len(r.Summary.UseCaseOverlap) > 0 {
		fmt.Fprintf(w, "Shared use cases: %s\n", strings.Join(r.Summary.UseCaseOverlap, ", "))
	}

	if len(r.Summary.FeatureComparison) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Features:")
		for _, f := range r.Summary.FeatureComparison {
			fmt.Fprintf(w, "  %-28s %s\n", f.Feature, strings.Join(f.Entries, ", "))
		}
	}

	if r.Recommendation != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Recommendation)
	}
}

func formatValue(c domain.Criterion, v float64) string {
	switch c {
	case domain.CriterionRatings:
		return fmt.Sprintf("%.1f/5", v)
	case domain.CriterionFeatures:
		return fmt.Sprintf("%d features", int(v))
	default:
		return formatCount(int64(v))
	}
}
