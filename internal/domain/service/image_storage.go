package service

import (
	"context"
	"io"
)

// StoredObject describes an object read back from image storage.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStorage persists uploaded images and serves them back.
type ImageStorage interface {
	// Save writes data under key and returns the public URL path for it.
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Open reads the object stored under key. A missing key yields domainerrors.ErrNotFound.
	Open(ctx context.Context, key string) (*StoredObject, error)
}
