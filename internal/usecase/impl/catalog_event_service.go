package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type catalogEventService struct {
	homeRepo repository.HomeSectionRepository
	logger   *slog.Logger
}

// CatalogEventServiceParams holds dependencies for CatalogEventService, injected by Fx.
type CatalogEventServiceParams struct {
	fx.In

	HomeRepo repository.HomeSectionRepository
	Logger   *slog.Logger
}

// NewCatalogEventService creates the consumer side of catalog change events.
func NewCatalogEventService(params CatalogEventServiceParams) usecase.CatalogEventUsecase {
	return &catalogEventService{
		homeRepo: params.HomeRepo,
		logger:   params.Logger,
	}
}

func (srv *catalogEventService) HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	switch event.Type {
	case service.EventProductDeleted:
		return srv.pruneHomeSection(ctx, logger, event.EntityID)
	default:
		logger.DebugContext(ctx, "Catalog event needs no follow-up",
			slog.String("event_type", event.Type),
			slog.String("entity_id", event.EntityID),
		)

		return nil
	}
}

// pruneHomeSection drops a deleted product from the curated home lists.
func (srv *catalogEventService) pruneHomeSection(ctx context.Context, logger *slog.Logger, productID string) error {
	if productID == "" {
		return nil
	}

	removed, err := srv.homeRepo.RemoveProductID(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to prune home section")
	}

	if removed {
		logger.InfoContext(ctx, "Removed deleted product from home section", slog.String("product_id", productID))
	}

	return nil
}
