package main

import (
	"context"
	"fmt"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/database"
	"github.com/deppfellow/inventory-api/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log := logger.NewLogger(cfg.Observability)

		ctx, cancel := context.WithTimeout(cmd.Context(), migrationTimeout)
		defer cancel()

		return database.Migrate(ctx, &log, cfg)
	},
}
