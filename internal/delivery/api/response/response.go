// Package response renders the storefront's JSON bodies and cache headers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Cache policies for public shop reads, served through a CDN.
const (
	ShopCacheControl    = "public, s-maxage=60, stale-while-revalidate=120"
	ListingCacheControl = "public, s-maxage=30, stale-while-revalidate=60"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes data with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Cached writes data with status 200 and the given Cache-Control policy.
func Cached(c echo.Context, cacheControl string, data any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, cacheControl)

	return c.JSON(http.StatusOK, data)
}

// Created writes data with status 201.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes {"error": message}.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error")
}
