// Package storage keeps uploaded images in a gocloud.dev bucket. The bucket URL
// picks the driver: file:// for local disks, gs:// for Cloud Storage, mem:// for throwaway runs.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL     = "mem://"
	defaultPublicBaseURL = "/uploads"
)

type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the image storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := defaultPublicBaseURL
	if cfg := params.Config.Upload; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		if cfg.PublicBaseURL != "" {
			publicBaseURL = cfg.PublicBaseURL
		}
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open upload bucket %s", bucketURL)
	}

	params.Logger.Info("Upload bucket opened",
		slog.String("bucket_url", bucketURL),
		slog.String("public_base_url", publicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobImageStorage(bucket, publicBaseURL), nil
}

// NewBlobImageStorage wraps an already opened bucket.
func NewBlobImageStorage(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save writes the object and returns its public URL path.
func (s *blobImageStorage) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !isPlainKey(key) {
		return "", errors.Errorf("invalid object key %q", key)
	}

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobImageStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	if !isPlainKey(key) {
		return nil, domainerrors.ErrNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to open object %s", key)
	}

	return &service.StoredObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

// isPlainKey rejects empty keys and anything that could address outside the flat upload namespace.
func isPlainKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, `/\`) && !strings.Contains(key, "..")
}
