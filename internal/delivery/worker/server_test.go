package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWorkerEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCatalogEventUsecase) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eventUC := mockUsecase.NewMockCatalogEventUsecase(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, EventUC: eventUC})

	return newEcho(cfg, logger, push), eventUC
}

func TestWorkerServer_Health(t *testing.T) {
	e, _ := createTestWorkerEcho(t)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerServer_PushRoute(t *testing.T) {
	e, eventUC := createTestWorkerEcho(t)

	data, err := json.Marshal(service.CatalogEvent{EventID: "evt-1", Type: service.EventProductDeleted, EntityID: "p1"})
	require.NoError(t, err)
	var msg handler.PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "evt-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	eventUC.EXPECT().
		HandleCatalogEvent(mock.Anything, mock.MatchedBy(func(ev *service.CatalogEvent) bool {
			return ev.EntityID == "p1" && ev.Type == service.EventProductDeleted
		})).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
