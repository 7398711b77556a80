package main

import (
	"os"

	"github.com/finman-cli/finman/internal/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
