package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "meatly/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBucketStore_Upload(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	defer bucket.Close()

	store := &bucketStore{
		bucket:        bucket,
		publicBaseURL: "https://cdn.meatly.dev",
		logger:        discardLogger(),
	}

	url, err := store.Upload(context.Background(), "docs/pan.png", []byte("png-bytes"), "image/png")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.meatly.dev/docs/pan.png", url)

	// The object must be readable back from the bucket.
	data, err := bucket.ReadAll(context.Background(), "docs/pan.png")
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestBucketStore_IsRemote(t *testing.T) {
	store := &bucketStore{publicBaseURL: "https://cdn.meatly.dev"}

	assert.True(t, store.IsRemote("https://cdn.meatly.dev/docs/pan.png"))
	assert.True(t, store.IsRemote("https://example.com/elsewhere.png"))
	assert.True(t, store.IsRemote("http://example.com/elsewhere.png"))
	assert.False(t, store.IsRemote("local-handle/pan.png"))
	assert.False(t, store.IsRemote("file:///tmp/pan.png"))
}

func TestUnconfiguredStore_UploadFails(t *testing.T) {
	store := &unconfiguredStore{}

	_, err := store.Upload(context.Background(), "docs/pan.png", []byte("png-bytes"), "image/png")
	assert.ErrorIs(t, err, domainerrors.ErrStorageUnconfigured)

	assert.True(t, store.IsRemote("https://example.com/pan.png"))
	assert.False(t, store.IsRemote("local-handle/pan.png"))
}
