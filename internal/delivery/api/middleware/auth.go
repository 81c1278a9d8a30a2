package middleware

import (
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
}

// AuthMiddleware gates routes on a valid bearer token and, for admin routes, the admin role.
type AuthMiddleware struct {
	accessUC usecase.AccessUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{accessUC: params.AccessUC}
}

// Authenticate verifies the Authorization header and stores the caller's user ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.accessUC.Authenticate(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, identity.UserID)

		return next(c)
	}
}

// RequireAdmin loads the caller and rejects anyone without the admin role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.accessUC.AuthorizeAdmin(c.Request().Context(), userID)
		if err != nil {
			return err
		}

		deliverycontext.SetAdminUser(c, user)

		return next(c)
	}
}
