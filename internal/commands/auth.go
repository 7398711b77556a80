package commands

import (
	"github.com/spf13/cobra"

	"github.com/finman-cli/finman/internal/auth"
)

func newRegisterCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "register <login> <password>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*home)
			if err != nil {
				return err
			}
			defer a.Close()

			u, err := a.auth.Register(args[0], args[1])
			if err != nil {
				return err
			}
			if err := auth.SaveSession(a.home, u.Login); err != nil {
				return err
			}
			cmd.Printf("registered and logged in: %s\n", u.Login)
			return nil
		},
	}
}

func newLoginCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login <login> <password>",
		Short: "Log in to an existing account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*home)
			if err != nil {
				return err
			}
			defer a.Close()

			u, err := a.auth.Login(args[0], args[1])
			if err != nil {
				return err
			}
			if err := auth.SaveSession(a.home, u.Login); err != nil {
				return err
			}
			cmd.Printf("logged in: %s\n", u.Login)
			return nil
		},
	}
}

func newLogoutCommand(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(*home)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := auth.ClearSession(a.home); err != nil {
				return err
			}
			cmd.Println("logged out")
			return nil
		},
	}
}
