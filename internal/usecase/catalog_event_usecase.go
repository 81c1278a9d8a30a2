package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// CatalogEventUsecase reacts to catalog change events delivered by Pub/Sub push.
type CatalogEventUsecase interface {
	// HandleCatalogEvent applies follow-up maintenance for one event. Event types
	// without follow-up work are accepted and ignored.
	HandleCatalogEvent(ctx context.Context, event *service.CatalogEvent) error
}
