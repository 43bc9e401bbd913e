package main

import (
	"os"

	"github.com/spf13/cobra"

	"fieldesk/internal/interfaces/cli/migrate"
	"fieldesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldesk",
		Short: "Fieldesk - service ticket management",
		Long:  `Fieldesk is a role-aware service ticket dashboard with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
