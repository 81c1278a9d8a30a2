package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type seedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSeedService creates the catalog seeder.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// Seed replaces products, ads and notices and upserts the category tree and home section.
// Everything happens in one transaction, so a failed run leaves the previous catalog intact.
func (srv *seedService) Seed(ctx context.Context, drop bool) (*usecase.SeedReport, error) {
	catalog := newDefaultCatalog()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()
		homeRepo := repoFactory.HomeSectionRepo()

		if drop {
			if err := categoryRepo.Clear(ctx); err != nil {
				return errors.Wrap(err, "failed to drop category tree")
			}
			if err := homeRepo.Clear(ctx); err != nil {
				return errors.Wrap(err, "failed to drop home section")
			}
			srv.logger.Info("Dropped existing shop data")
		}

		if _, err := categoryRepo.ReplaceTree(ctx, catalog.Categories); err != nil {
			return errors.Wrap(err, "failed to seed category tree")
		}
		if err := repoFactory.ProductRepo().ReplaceAll(ctx, catalog.Products); err != nil {
			return errors.Wrap(err, "failed to seed products")
		}
		if err := repoFactory.AdSlideRepo().ReplaceAll(ctx, catalog.Ads); err != nil {
			return errors.Wrap(err, "failed to seed ads")
		}
		if err := repoFactory.NoticeRepo().ReplaceAll(ctx, catalog.Notices); err != nil {
			return errors.Wrap(err, "failed to seed notices")
		}
		if _, err := homeRepo.Replace(ctx, catalog.Home); err != nil {
			return errors.Wrap(err, "failed to seed home section")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Seed failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute seed transaction")
	}

	report := &usecase.SeedReport{
		Categories: len(catalog.Categories),
		Products:   len(catalog.Products),
		Ads:        len(catalog.Ads),
		Notices:    len(catalog.Notices),
	}
	srv.logger.Info("Seed completed",
		slog.Int("categories", report.Categories),
		slog.Int("products", report.Products),
		slog.Int("ads", report.Ads),
		slog.Int("notices", report.Notices),
	)

	return report, nil
}
