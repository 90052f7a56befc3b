package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
	"github.com/custodia-labs/capseek/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services injected by the composition root.
var (
	searchService   driving.SearchService
	compareService  driving.CompareService
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	installer       driven.Installer
)

// Services groups the ports the commands drive.
type Services struct {
	Search    driving.SearchService
	Compare   driving.CompareService
	Catalog   driving.CatalogService
	Settings  driving.SettingsService
	Installer driven.Installer
}

var rootCmd = &cobra.Command{
	Use:   "capseek",
	Short: "Find, rank and compare MCP servers and agent skills",
	Long: `capseek searches the catalogs of MCP servers and agent skills you have
enabled, merges duplicates across them and ranks what is left against
your query.

Sources:
  local         skills installed under the local skills directory
  official      officially maintained MCP servers
  community     community maintained MCP servers
  github        skill repositories on GitHub
  skills-index  the public skills leaderboard`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	searchService = s.Search
	compareService = s.Compare
	catalogService = s.Catalog
	settingsService = s.Settings
	installer = s.Installer
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
