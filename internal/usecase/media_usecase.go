package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/service"
)

// UploadImageInput is one uploaded file as received from a multipart form.
type UploadImageInput struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// MediaUsecase stores admin image uploads and serves them back.
type MediaUsecase interface {
	// UploadImage validates size and content type, stores the file and returns its URL.
	UploadImage(ctx context.Context, input UploadImageInput) (string, error)

	// OpenImage returns a previously uploaded image by object key.
	OpenImage(ctx context.Context, key string) (*service.StoredObject, error)
}
