package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newCategoryCommand(home *string) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	categoryCmd.AddCommand(newCategoryAddCommand(home))
	categoryCmd.AddCommand(newCategoryListCommand(home))
	return categoryCmd
}

func newCategoryAddCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Register a category",
		Args:  cobra.MinimumNArgs(1),
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

			// Multi-word names work unquoted: join the args.
			name := strings.Join(args, " ")
			if err := a.svc.AddCategory(login, name); err != nil {
				return err
			}
			a.autoCommit("category add " + name)
			cmd.Printf("category added: %s\n", strings.TrimSpace(name))
			return nil
		},
	}
}

func newCategoryListCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered categories",
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

			categories := w.Categories()
			if len(categories) == 0 {
				cmd.Println("(no categories)")
				return nil
			}
			for _, c := range categories {
				cmd.Printf("- %s\n", c)
			}
			return nil
		},
	}
}
