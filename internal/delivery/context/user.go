package context

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// echo.Context keys.
const (
	echoUserIDKey    = "storefront.user_id"
	echoAdminUserKey = "storefront.admin_user"
)

// WithUserID returns a new context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext extracts the authenticated user's ID from context.Context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// SetUserID stores the authenticated user's ID on both echo.Context and the request context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(echoUserIDKey, userID)
	req := c.Request()
	c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
}

// GetUserID extracts the authenticated user's ID from echo.Context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(echoUserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// SetAdminUser stores the admin record loaded by the admin guard.
func SetAdminUser(c echo.Context, user *entity.User) {
	c.Set(echoAdminUserKey, user)
}

// GetAdminUser returns the admin stored by SetAdminUser, or nil.
func GetAdminUser(c echo.Context) *entity.User {
	user, _ := c.Get(echoAdminUserKey).(*entity.User)

	return user
}
