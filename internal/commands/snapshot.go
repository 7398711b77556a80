package commands

import (
	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/store"
)

func newSnapshotCommand(home *string) *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export and import wallet snapshots",
	}
	snapshotCmd.AddCommand(newSnapshotExportCommand(home))
	snapshotCmd.AddCommand(newSnapshotImportCommand(home))
	return snapshotCmd
}

func newSnapshotExportCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the active account's wallet to a snapshot file",
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

			w, err := a.svc.Wallet(login)
			if err != nil {
				return err
			}
			if err := store.ExportSnapshot(args[0], w); err != nil {
				return err
			}
			cmd.Printf("snapshot exported: %s\n", args[0])
			return nil
		},
	}
}

func newSnapshotImportCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the active account's wallet with a snapshot",
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

			w, err := store.ImportSnapshot(args[0], login)
			if err != nil {
				return err
			}
			if err := a.wallets.Save(w); err != nil {
				return err
			}
			a.autoCommit("snapshot import")
			cmd.Printf("snapshot imported for: %s\n", login)
			return nil
		},
	}
}
