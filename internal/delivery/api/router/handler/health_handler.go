package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(isoMillis),
	})
}

// APIIndex identifies the API at GET /api.
func APIIndex(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"message": "Store API",
		"version": "1.0",
	})
}
