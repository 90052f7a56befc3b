package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	recommendLimit int
	recommendJSON  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <task>",
	Short: "Recommend entries for a task",
	Long: `Expand a task description into keywords and rank the entries that
match any of them.

Chinese and English task descriptions are both understood.

Examples:
  capseek recommend "build a web scraper"
  capseek recommend "分析数据库查询" -n 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Maximum number of results (default from settings)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	task := strings.Join(args, " ")
	resp, err := searchService.Recommend(cmd.Context(), task, recommendLimit)
	if err != nil {
		return fmt.Errorf("recommend failed: %w", err)
	}

	printSourceWarnings(cmd.ErrOrStderr(), resp.SourceErrors)

	if recommendJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recommended for: %s\n", task)
	if len(resp.Keywords) > 0 {
		fmt.Fprintf(out, "Keywords: %s\n", strings.Join(resp.Keywords, ", "))
	}
	fmt.Fprintln(out)
	printResults(out, resp.Results)
	return nil
}
