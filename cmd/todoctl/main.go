package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mecoding/todo-api/cmd/todoctl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "todoctl",
		Short: "Admin tool for the todo API",
		Long:  "CLI tool for applying the database schema and seeding reference data",
	}

	rootCmd.AddCommand(commands.NewMigrateCmd())
	rootCmd.AddCommand(commands.NewSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
