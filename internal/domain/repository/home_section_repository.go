package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// HomeSectionRepository stores the single curated home section record.
type HomeSectionRepository interface {
	// Get returns the record, or one with empty lists when none was saved.
	Get(ctx context.Context) (*entity.HomeSection, error)

	// Replace overwrites all three id lists in one write.
	Replace(ctx context.Context, section *entity.HomeSection) (*entity.HomeSection, error)

	// RemoveProductID drops id from every list in a single statement and
	// reports whether the stored record changed.
	RemoveProductID(ctx context.Context, id string) (bool, error)

	// Clear removes the stored record.
	Clear(ctx context.Context) error
}
