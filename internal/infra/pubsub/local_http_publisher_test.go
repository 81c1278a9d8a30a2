package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishCatalogEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	event := &service.CatalogEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.EventProductUpdated,
		EntityID:   "p1",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishCatalogEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "2024-05-01T12:00:00Z", received.Message.PublishTime)
	assert.Equal(t, service.EventProductUpdated, received.Message.Attributes["event_type"])
	assert.Equal(t, "p1", received.Message.Attributes["entity_id"])
	assert.Equal(t, "product:p1", received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.CatalogEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.EntityID, decoded.EntityID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishCatalogEvent(context.Background(), &service.CatalogEvent{EventID: "evt-2", Type: service.EventAdChanged})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
