package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blog-cms/internal/infrastructure/database"
	"blog-cms/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back the schema migrations",
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.MigrationsPath
			}

			direction := database.MigrationDirection(args[0])
			if err := database.Migrate(dir, cfg.DatabaseURL(), direction); err != nil {
				return err
			}
			logger.Info("Migrations applied", "direction", direction, "dir", dir)
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", direction)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (defaults to MIGRATIONS_PATH)")
	return cmd
}
