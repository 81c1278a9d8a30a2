package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CategoryRepository stores the single category tree.
type CategoryRepository interface {
	// GetTree returns the stored tree, or an empty tree when none was saved.
	GetTree(ctx context.Context) ([]entity.CategoryNode, error)

	// ReplaceTree overwrites the whole tree in one write.
	ReplaceTree(ctx context.Context, tree []entity.CategoryNode) ([]entity.CategoryNode, error)

	// Clear removes the stored tree.
	Clear(ctx context.Context) error
}
