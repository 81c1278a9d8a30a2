package main

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the default catalog, ads, notices and home sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var seedUC usecase.SeedUsecase

			return runWithApp(cmd.Context(), func(ctx context.Context, logger *slog.Logger) error {
				start := time.Now()
				report, err := seedUC.Seed(ctx, drop)
				if err != nil {
					return err
				}
				cmd.Printf("Seeded %d categories, %d products, %d ads, %d notices in %s\n",
					report.Categories, report.Products, report.Ads, report.Notices,
					util.FormatDuration(time.Since(start)))

				return nil
			}, &seedUC)
		},
	}
	cmd.Flags().BoolVar(&drop, "drop", false, "remove the stored category tree and home section before seeding")

	return cmd
}
