package main

import (
	"os"

	"github.com/spf13/cobra"

	"redress/internal/interfaces/cli/migrate"
	"redress/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "redress",
		Short: "Redress - complaint tracking service",
		Long:  `Redress is a complaint tracking service with registration, assignment workflow, comments, and reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
