package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local catalog snapshot",
	Long: `Import catalog documents and live indexes into the local snapshot.

Snapshot entries take precedence over the built-in data of their source.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON catalog document",
	Long: `Load a catalog document and replace the snapshot of every source it lists.

The document holds {"entries": [...], "categories": [...]}. Entries that fail
validation are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

var catalogSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the live GitHub index into the snapshot",
	Long: `Search GitHub for repositories tagged with the configured topic and store
them as the github source. Set GITHUB_TOKEN for higher rate limits.`,
	Args: cobra.NoArgs,
	RunE: runCatalogSync,
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show snapshot entries per source",
	Args:  cobra.NoArgs,
	RunE:  runCatalogStatus,
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Drop cached search results",
	Args:  cobra.NoArgs,
	RunE:  runCatalogRefresh,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogSyncCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogRefreshCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	cmd.Printf("Importing %s...\n", args[0])
	n, err := catalogService.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	refreshResults()

	cmd.Printf("Imported %d entries.\n", n)
	return nil
}

func runCatalogSync(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	cmd.Println("Synchronising the GitHub index...")
	n, err := catalogService.Sync(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	refreshResults()

	cmd.Printf("Stored %d entries.\n", n)
	return nil
}

func runCatalogStatus(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	infos, err := catalogService.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if len(infos) == 0 {
		cmd.Println("The snapshot is empty. Built-in data is in use.")
		return nil
	}

	cmd.Println("Snapshot:")
	for _, info := range infos {
		cmd.Printf("  %s %-13s %5d entries  updated %s\n",
			info.Source.Icon(), info.Source, info.Entries, info.UpdatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func runCatalogRefresh(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	searchService.Refresh()
	cmd.Println("Cached results cleared.")
	return nil
}

func refreshResults() {
	if searchService != nil {
		searchService.Refresh()
	}
}
