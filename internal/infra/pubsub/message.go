package pubsub

import (
	"encoding/json"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// outboundMessage is a catalog event rendered for the wire.
type outboundMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serialises event. Events about the same entity share an ordering
// key so a delete can never overtake the update that preceded it; catalog-wide
// events (categories, home) are keyed by their type.
func encodeEvent(event *service.CatalogEvent) (*outboundMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", event.Type)
	}

	attrs := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
	}
	key := event.Type
	if event.EntityID != "" {
		attrs["entity_id"] = event.EntityID
		key = entityKind(event.Type) + ":" + event.EntityID
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return &outboundMessage{data: data, attributes: attrs, orderingKey: key}, nil
}

// entityKind maps an event type to the catalog entity it concerns.
func entityKind(eventType string) string {
	switch eventType {
	case service.EventProductCreated, service.EventProductUpdated, service.EventProductDeleted:
		return "product"
	case service.EventAdChanged:
		return "ad"
	case service.EventNoticeChanged:
		return "notice"
	default:
		return eventType
	}
}
