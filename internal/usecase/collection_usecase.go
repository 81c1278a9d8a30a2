package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionUsecase manages each user's cart and favorites. Writes replace the whole collection.
type CollectionUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)

	// ReplaceCart normalizes the raw client lines and stores them.
	ReplaceCart(ctx context.Context, userID uuid.UUID, rawItems []any) ([]entity.CartItem, error)

	GetFavorites(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceFavorites(ctx context.Context, userID uuid.UUID, rawIDs []any) ([]string, error)
}
