package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var home string

	rootCmd := &cobra.Command{
		Use:     "finman",
		Short:   "Personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&home, "home", "", "data directory (default $FINMAN_HOME or ~/.finman)")

	rootCmd.AddCommand(newRegisterCommand(&home))
	rootCmd.AddCommand(newLoginCommand(&home))
	rootCmd.AddCommand(newLogoutCommand(&home))
	rootCmd.AddCommand(newCategoryCommand(&home))
	rootCmd.AddCommand(newBudgetCommand(&home))
	rootCmd.AddCommand(newIncomeCommand(&home))
	rootCmd.AddCommand(newExpenseCommand(&home))
	rootCmd.AddCommand(newStatsCommand(&home))
	rootCmd.AddCommand(newReportCommand(&home))
	rootCmd.AddCommand(newSnapshotCommand(&home))
	rootCmd.AddCommand(newImportCommand(&home))

	return rootCmd
}
