package commands

import (
	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/report"
)

func newReportCommand(home *string) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write reports to disk",
	}
	reportCmd.AddCommand(newReportFileCommand(home))
	return reportCmd
}

func newReportFileCommand(home *string) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Render the report and save it to a file",
		Args:  cobra.ExactArgs(1),
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
			if err := report.SaveToFile(args[0], out); err != nil {
				return err
			}
			cmd.Printf("report saved: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "end date YYYY-MM-DD")

	return cmd
}
