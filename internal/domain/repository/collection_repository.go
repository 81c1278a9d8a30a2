package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository stores one cart per user. Replace is an upsert, so concurrent writers are last-write-wins.
type CartRepository interface {
	// Get returns the user's cart lines, empty when the user never saved a cart.
	Get(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)

	// Replace overwrites the user's cart lines and returns what was stored.
	Replace(ctx context.Context, userID uuid.UUID, items []entity.CartItem) ([]entity.CartItem, error)
}

// FavoritesRepository stores one favorites list per user with the same semantics as CartRepository.
type FavoritesRepository interface {
	Get(ctx context.Context, userID uuid.UUID) ([]string, error)
	Replace(ctx context.Context, userID uuid.UUID, productIDs []string) ([]string, error)
}
