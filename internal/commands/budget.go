package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/report"
	"github.com/finman-cli/finman/internal/stats"
)

func newBudgetCommand(home *string) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}
	budgetCmd.AddCommand(newBudgetSetCommand(home))
	budgetCmd.AddCommand(newBudgetShowCommand(home))
	return budgetCmd
}

func newBudgetSetCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Assign a spending limit to a category",
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

			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if err := a.svc.SetBudget(login, args[0], limit); err != nil {
				return err
			}
			a.autoCommit("budget set " + args[0])
			cmd.Printf("budget set: %s = %s\n", args[0], report.FormatMoney(limit))
			return nil
		},
	}
}

func newBudgetShowCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget status per category",
		Args:  cobra.NoArgs,
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

			w, err := a.svc.Wallet(login)
			if err != nil {
				return err
			}
			budgets, err := stats.Budgets(w, stats.Range{})
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				cmd.Println("(no budgets set)")
				return nil
			}

			categories := make([]string, 0, len(budgets))
			for c := range budgets {
				categories = append(categories, c)
			}
			sort.Strings(categories)

			for _, c := range categories {
				st := budgets[c]
				line := "- " + c + ": " + report.FormatMoney(st.Limit) +
					", remaining: " + report.FormatMoney(st.Remaining)
				if st.Remaining.IsNegative() {
					line += " (EXCEEDED)"
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}
