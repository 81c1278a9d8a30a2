package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// catalogEventNotifier publishes catalog change events after a mutation has been stored.
// Publishing is best effort: failures are logged and never surface to the caller.
type catalogEventNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func (n *catalogEventNotifier) notify(ctx context.Context, eventType, entityID string) {
	if n.publisher == nil {
		return
	}

	event := &service.CatalogEvent{
		RequestID:  deliverycontext.RequestID(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: n.now().UTC(),
	}
	if actorID, ok := deliverycontext.GetUserIDFromContext(ctx); ok {
		event.ActorID = actorID.String()
	}

	if err := n.publisher.PublishCatalogEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish catalog event",
			slog.String("event_type", eventType),
			slog.String("entity_id", entityID),
			slog.Any("error", err),
		)
	}
}
