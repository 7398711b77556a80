package commands

import (
	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/report"
)

func newStatsCommand(home *string) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show ledger statistics",
	}
	statsCmd.AddCommand(newStatsShowCommand(home))
	return statsCmd
}

func newStatsShowCommand(home *string) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the full report, optionally scoped to a date range",
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

			r, err := rangeFromFlags(from, to)
			if err != nil {
				return err
			}

			w, err := a.svc.Wallet(login)
			if err != nil {
				return err
			}
			out, err := report.Build(w, r)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "end date YYYY-MM-DD")

	return cmd
}
