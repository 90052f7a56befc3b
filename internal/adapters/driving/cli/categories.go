package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with entry counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	summaries, err := searchService.Categories(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if categoriesJSON {
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	if len(summaries) == 0 {
		cmd.Println("No categories found.")
		return nil
	}

	cmd.Println("Categories:")
	cmd.Println()
	for _, s := range summaries {
		icon := s.Icon
		if icon == "" {
			icon = "•"
		}
		cmd.Printf("%s %s (%d) [%s]\n", icon, s.Name, s.Count, s.ID)
	}
	return nil
}
