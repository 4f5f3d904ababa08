package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/budget_tracker/internal/platform/config"
	"github.com/SscSPs/budget_tracker/internal/repositories/database/pgsql"
	"github.com/spf13/cobra"
)

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return pgsql.RunMigrations(cfg.DatabaseURL, logger)
		},
	}
}
