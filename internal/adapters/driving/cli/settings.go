package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in the configuration file.

Keys use dotted names, for example:
  sources.github.enabled     enable or disable a source
  sources.local.path         directory scanned for installed skills
  search.min_score           relevance threshold in [0, 1]
  cache.ttl                  cached result lifetime in seconds
  cache.max_entries          number of cached queries kept
  ui.locale                  narrative language (en, zh)`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsEnableCmd = &cobra.Command{
	Use:   "enable <source>",
	Short: "Enable a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSourceEnabled(cmd, args[0], true)
	},
}

var settingsDisableCmd = &cobra.Command{
	Use:   "disable <source>",
	Short: "Disable a source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSourceEnabled(cmd, args[0], false)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsEnableCmd)
	settingsCmd.AddCommand(settingsDisableCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Sources]")
	for _, src := range domain.AllSources() {
		cmd.Printf("  %s %-13s %s\n", src.Icon(), src, enabledLabel(settings.Sources.IsEnabled(src)))
	}
	localPath := settings.Sources.LocalPath
	if localPath == "" {
		localPath = "(default)"
	}
	cmd.Printf("  Local path: %s (depth %d)\n", localPath, settings.Sources.LocalMaxDepth)
	if settings.Sources.GitHubLive {
		cmd.Printf("  GitHub: live, topic %q\n", settings.Sources.GitHubTopic)
	} else {
		cmd.Println("  GitHub: bundled index")
	}
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Default limit: %d\n", settings.Search.DefaultLimit)
	cmd.Printf("  Recommend limit: %d\n", settings.Search.RecommendLimit)
	cmd.Printf("  Min score: %.2f\n", settings.Search.MinScore)
	cmd.Printf("  Source timeout: %s\n", settings.Search.SourceTimeout)
	cmd.Printf("  Max workers: %d\n", settings.Search.MaxWorkers)
	cmd.Println()

	cmd.Println("[Scoring]")
	cmd.Printf("  Stars weight: %.2f\n", settings.Scoring.StarsWeight)
	cmd.Printf("  Rank weight: %.2f\n", settings.Scoring.RankWeight)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Cache.Enabled))
	cmd.Printf("  TTL: %s\n", settings.Cache.TTL)
	cmd.Printf("  Max entries: %d\n", settings.Cache.MaxEntries)
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.Catalog.Document != "" {
		cmd.Printf("  Document: %s\n", settings.Catalog.Document)
	} else {
		cmd.Println("  Document: (built-in)")
	}
	cmd.Println()

	locale := settings.UI.Locale
	if locale == "" {
		locale = "(auto)"
	}
	cmd.Println("[UI]")
	cmd.Printf("  Locale: %s\n", locale)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("%s = %s\n", args[0], args[1])
	cmd.Println("The change applies from the next command.")
	return nil
}

func setSourceEnabled(cmd *cobra.Command, name string, enabled bool) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	src, err := domain.ParseSource(name)
	if err != nil {
		return err
	}
	if err := settingsService.SetSourceEnabled(src, enabled); err != nil {
		return fmt.Errorf("failed to update %s: %w", src, err)
	}

	cmd.Printf("Source %s %s.\n", src, enabledLabel(enabled))
	return nil
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
