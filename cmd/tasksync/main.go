package main

import (
	"os"

	"github.com/spf13/cobra"

	"tasksync/internal/interfaces/cli/migrate"
	"tasksync/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasksync",
		Short: "tasksync - ClickUp webhook to ticket synchronization",
		Long:  `tasksync receives ClickUp webhooks and mirrors tasks and comments into local project tickets.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
