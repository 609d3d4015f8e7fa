package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mecoding/todo-api/internal/config"
	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
	"github.com/mecoding/todo-api/internal/services/category"
)

// NewSeedCmd creates the seed command
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed default categories",
		Long:  "Insert the default set of categories, skipping any that already exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
				}
			}()

			svc := category.NewService(database.NewCategoryRepository(db), nil)
			ctx := context.Background()

			defaults := []struct {
				name        string
				description string
			}{
				{"Personal", "Personal tasks and activities"},
				{"Work", "Work-related tasks"},
				{"Shopping", "Shopping lists and errands"},
			}

			for _, d := range defaults {
				desc := d.description
				err := svc.Create(ctx, &models.Category{Name: d.name, Description: &desc})
				if errors.Is(err, database.ErrDuplicateName) {
					fmt.Printf("  - %s (already exists)\n", d.name)
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to seed category %q: %w", d.name, err)
				}
				fmt.Printf("  - %s\n", d.name)
			}

			fmt.Println("Seed complete")
			return nil
		},
	}

	return cmd
}
