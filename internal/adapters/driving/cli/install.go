package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

var installCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Show how to install an entry",
	Long: `Resolve a name against the enabled catalogs and print the command that
installs it. Nothing is executed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if installer == nil {
		return errors.New("installer not configured")
	}

	entry, err := searchService.Lookup(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s %s (%s)\n", entry.Source.Icon(), entry.Name, entry.Source)
	if err := installer.Install(cmd.Context(), domain.InstallRequestFor(*entry)); err != nil {
		return fmt.Errorf("install %s: %w", entry.Name, err)
	}
	return nil
}
