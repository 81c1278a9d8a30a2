package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity is the caller established by a valid bearer token.
type Identity struct {
	UserID uuid.UUID
}

// AccessUsecase guards authenticated and admin-only operations.
type AccessUsecase interface {
	// Authenticate validates an Authorization header value of the form "Bearer <token>".
	Authenticate(ctx context.Context, authorizationHeader string) (*Identity, error)

	// AuthorizeAdmin loads the caller and requires the admin role.
	AuthorizeAdmin(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
