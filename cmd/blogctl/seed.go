package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"blog-cms/internal/domain"
	"blog-cms/internal/infrastructure/database"
	"blog-cms/internal/repository"
	"blog-cms/internal/service"
	"blog-cms/internal/validator"
)

func newSeedCmd() *cobra.Command {
	var in domain.AuthorInput
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the roles and a first admin on an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			pool, err := database.NewPostgres(ctx, database.PoolConfig{
				Host:     cfg.DBHost,
				Port:     cfg.DBPort,
				User:     cfg.DBUser,
				Password: cfg.DBPassword,
				Database: cfg.DBName,
				SSLMode:  cfg.DBSSLMode,
				MaxConns: 2,
				MinConns: 1,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.HealthCheck(ctx, pool); err != nil {
				return fmt.Errorf("database not reachable: %w", err)
			}

			manage := service.NewManageService(
				repository.NewPostgresPostRepository(pool),
				repository.NewPostgresAuthorRepository(pool),
				repository.NewPostgresCategoryRepository(pool),
				repository.NewPostgresTagRepository(pool),
				repository.NewPostgresCommentRepository(pool),
				repository.NewPostgresContactMessageRepository(pool),
				validator.NewValidator(),
			)

			author, created, err := manage.Bootstrap(ctx, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !created {
				fmt.Fprintln(out, "authors already exist, nothing to do")
				return nil
			}
			fmt.Fprintf(out, "created admin %s (id %d)\n", author.Email, author.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Email, "admin-email", "", "email of the first admin")
	cmd.Flags().StringVar(&in.Password, "admin-password", "", "password of the first admin")
	cmd.Flags().StringVar(&in.Name, "admin-name", "Administrator", "display name of the first admin")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout")
	_ = cmd.MarkFlagRequired("admin-email")
	_ = cmd.MarkFlagRequired("admin-password")
	return cmd
}
