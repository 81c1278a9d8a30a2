package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/listing"
)

// CatalogUsecase serves the public storefront reads.
type CatalogUsecase interface {
	GetCategoryTree(ctx context.Context) ([]entity.CategoryNode, error)
	ListAds(ctx context.Context) ([]*entity.AdSlide, error)
	ListNotices(ctx context.Context) ([]*entity.Notice, error)

	// GetHomeFeed resolves the curated id lists to products, keeping curated order.
	GetHomeFeed(ctx context.Context) (*entity.HomeFeed, error)

	// ListCategoryProducts returns products whose category id matches exactly.
	ListCategoryProducts(ctx context.Context, categoryID string) ([]*entity.Product, error)

	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// GetProductsByIDs returns products in the order of ids, skipping unknown ids.
	GetProductsByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)

	// SearchProducts runs the listing pipeline over the whole catalog.
	SearchProducts(ctx context.Context, query listing.Query) ([]*entity.Product, error)

	// ProductQRCode renders a PNG share code for an existing product.
	ProductQRCode(ctx context.Context, id string) ([]byte, error)
}
