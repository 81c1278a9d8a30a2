// Package context carries request-scoped values between the transport layer
// and the usecases: the correlation id, a logger bound to it, and the caller.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey uint8

const (
	requestIDKey ctxKey = iota + 1
	loggerKey
	userIDKey
)

// HeaderXRequestID is the header used to propagate the correlation id.
const HeaderXRequestID = echo.HeaderXRequestID

// WithRequestID returns a copy of ctx carrying the correlation id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the correlation id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the logger stored by WithLogger, falling back to
// the component's own logger for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// Bind attaches the correlation id and its logger to the request behind c.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	req := c.Request()
	ctx := WithLogger(WithRequestID(req.Context(), requestID), logger)
	c.SetRequest(req.WithContext(ctx))
}
