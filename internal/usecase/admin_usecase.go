package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// Fields is a decoded JSON object from an admin request body. Values keep their JSON types
// and are coerced by the service, so "12.5" and 12.5 are both accepted as a price.
type Fields map[string]any

// Has reports whether key was present in the body, even when its value is null.
func (f Fields) Has(key string) bool {
	_, ok := f[key]

	return ok
}

// AdminUsecase defines the catalog mutations available to admins.
type AdminUsecase interface {
	GetCategoryTree(ctx context.Context) ([]entity.CategoryNode, error)
	ReplaceCategoryTree(ctx context.Context, tree []entity.CategoryNode) ([]entity.CategoryNode, error)

	ListAds(ctx context.Context) ([]*entity.AdSlide, error)
	CreateAd(ctx context.Context, fields Fields) (*entity.AdSlide, error)
	UpdateAd(ctx context.Context, id int64, fields Fields) (*entity.AdSlide, error)
	DeleteAd(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, fields Fields) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, fields Fields) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// ExportProducts writes the whole catalog to w and returns the document's content type and file name.
	ExportProducts(ctx context.Context, w io.Writer) (contentType, fileName string, err error)

	ListNotices(ctx context.Context) ([]*entity.Notice, error)
	CreateNotice(ctx context.Context, fields Fields) (*entity.Notice, error)
	UpdateNotice(ctx context.Context, id int64, fields Fields) (*entity.Notice, error)
	DeleteNotice(ctx context.Context, id int64) error

	GetHomeSection(ctx context.Context) (*entity.HomeSection, error)
	ReplaceHomeSection(ctx context.Context, section *entity.HomeSection) (*entity.HomeSection, error)
}
