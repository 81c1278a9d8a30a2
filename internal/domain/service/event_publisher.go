package service

import (
	"context"
	"time"
)

// Catalog event types published after successful admin mutations.
const (
	EventProductCreated     = "catalog.product.created"
	EventProductUpdated     = "catalog.product.updated"
	EventProductDeleted     = "catalog.product.deleted"
	EventCategoriesReplaced = "catalog.categories.replaced"
	EventAdChanged          = "catalog.ad.changed"
	EventNoticeChanged      = "catalog.notice.changed"
	EventHomeReplaced       = "catalog.home.replaced"
)

// CatalogEvent tells downstream consumers (cache purgers, search indexers) that catalog data changed.
type CatalogEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change event
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
