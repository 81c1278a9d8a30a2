package storage

import (
	"context"
	"io"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStorage_SaveAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobImageStorage(bucket, "/uploads/")
	ctx := context.Background()

	url, err := storage.Save(ctx, "1700000000000-shoe.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1700000000000-shoe.png", url)

	obj, err := storage.Open(ctx, "1700000000000-shoe.png")
	require.NoError(t, err)
	defer obj.Body.Close()

	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)
}

func TestBlobImageStorage_OpenMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewBlobImageStorage(bucket, "/uploads").Open(context.Background(), "nope.png")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBlobImageStorage_RejectsUnsafeKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobImageStorage(bucket, "/uploads")
	ctx := context.Background()

	for _, key := range []string{"", "../etc/passwd", "dir/file.png", `dir\file.png`} {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Save(ctx, key, []byte("x"), "image/png")
			assert.Error(t, err)

			_, err = storage.Open(ctx, key)
			assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		})
	}
}
