package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository persists catalog products keyed by their business ID.
type ProductRepository interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID returns the product or domainerrors.ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs returns the products whose ids are listed, in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)

	// FindByCategory returns products whose category id equals categoryID exactly.
	FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)

	// Create inserts a product. A duplicate id yields domainerrors.ErrProductAlreadyExists.
	Create(ctx context.Context, product *entity.Product) error

	// Update merges patch into the stored product and returns the result.
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)

	// Delete removes the product or returns domainerrors.ErrProductNotFound.
	Delete(ctx context.Context, id string) error

	// ReplaceAll deletes every product and inserts products.
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}
