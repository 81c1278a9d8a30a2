package main

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/util"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the storefront tables and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var db *gorm.DB

			return runWithApp(cmd.Context(), func(ctx context.Context, logger *slog.Logger) error {
				start := time.Now()
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				logger.Info("Migration completed", slog.String("elapsed", util.FormatDuration(time.Since(start))))

				return nil
			}, &db)
		},
	}
}
