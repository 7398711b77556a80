package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/model"
	"github.com/finman-cli/finman/internal/wallet"
)

func newIncomeCommand(home *string) *cobra.Command {
	incomeCmd := &cobra.Command{
		Use:   "income",
		Short: "Record income",
	}
	incomeCmd.AddCommand(newAddOperationCommand(home, model.KindIncome))
	return incomeCmd
}

func newExpenseCommand(home *string) *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Record expenses",
	}
	expenseCmd.AddCommand(newAddOperationCommand(home, model.KindExpense))
	return expenseCmd
}

func newAddOperationCommand(home *string, kind model.Kind) *cobra.Command {
	var dateStr string
	var comment string

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Add a " + string(kind) + " transaction",
		Args:  cobra.ExactArgs(2),
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

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			var day *time.Time
			if dateStr != "" {
				d, err := parseDate(dateStr)
				if err != nil {
					return err
				}
				day = &d
			}

			params := wallet.AddParams{
				Category: args[0],
				Amount:   amount,
				Date:     day,
				Comment:  comment,
			}

			var warnings []string
			if kind == model.KindIncome {
				warnings, err = a.svc.AddIncome(login, params)
			} else {
				warnings, err = a.svc.AddExpense(login, params)
			}
			if err != nil {
				return err
			}

			a.autoCommit(string(kind) + " add " + args[0] + " " + args[1])
			cmd.Println("operation added")
			printWarnings(cmd, warnings)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&comment, "comment", "", "free-text comment")

	return cmd
}
