package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/importer"
	"github.com/finman-cli/finman/internal/model"
	"github.com/finman-cli/finman/internal/wallet"
)

func newImportCommand(home *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV statement",
		Long: "Import transactions from a CSV statement. Each row goes through " +
			"the same validation as a hand-entered operation, so an expense row " +
			"with an unregistered category stops the import at that row.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*home)
			if err != nil {
				return err
			}
			defer a.Close()

			login, err := a.requireLogin()
			if err != nil {
				return err
			}

			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(registry.Formats(), ", "))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			rows, err := parser.Parse(f)
			if err != nil {
				return err
			}

			imported := 0
			for i, row := range rows {
				day := row.Date
				params := wallet.AddParams{
					Category: row.Category,
					Amount:   row.Amount,
					Date:     &day,
					Comment:  row.Comment,
				}

				var warnings []string
				if row.Kind == model.KindIncome {
					warnings, err = a.svc.AddIncome(login, params)
				} else {
					warnings, err = a.svc.AddExpense(login, params)
				}
				if err != nil {
					return fmt.Errorf("row %d: %w", i+2, err)
				}
				imported++
				printWarnings(cmd, warnings)
			}

			a.autoCommit(fmt.Sprintf("import %d rows from %s", imported, args[0]))
			cmd.Printf("imported %d transactions\n", imported)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "ledger", "statement format (ledger, bank)")

	return cmd
}
