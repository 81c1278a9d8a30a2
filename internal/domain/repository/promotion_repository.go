package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AdSlideRepository persists ad slides keyed by their numeric id.
type AdSlideRepository interface {
	// List returns all slides ordered by id ascending.
	List(ctx context.Context) ([]*entity.AdSlide, error)

	// Create inserts a slide. A duplicate id yields domainerrors.ErrAdAlreadyExists.
	Create(ctx context.Context, slide *entity.AdSlide) error

	// Update overwrites title, subtitle and image of the slide with the given id.
	Update(ctx context.Context, slide *entity.AdSlide) (*entity.AdSlide, error)

	// Delete removes the slide or returns domainerrors.ErrAdNotFound.
	Delete(ctx context.Context, id int64) error

	// ReplaceAll deletes every slide and inserts slides.
	ReplaceAll(ctx context.Context, slides []*entity.AdSlide) error
}

// NoticeRepository persists notices keyed by their numeric id.
type NoticeRepository interface {
	// List returns all notices ordered by id ascending.
	List(ctx context.Context) ([]*entity.Notice, error)

	// Create inserts a notice. A duplicate id yields domainerrors.ErrNoticeAlreadyExists.
	Create(ctx context.Context, notice *entity.Notice) error

	// Update overwrites the text of the notice with the given id.
	Update(ctx context.Context, notice *entity.Notice) (*entity.Notice, error)

	// Delete removes the notice or returns domainerrors.ErrNoticeNotFound.
	Delete(ctx context.Context, id int64) error

	// ReplaceAll deletes every notice and inserts notices.
	ReplaceAll(ctx context.Context, notices []*entity.Notice) error
}
