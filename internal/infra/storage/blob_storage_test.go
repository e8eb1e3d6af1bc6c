package storage

import (
	"context"
	"testing"

	"parceltrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_Put(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	ctx := context.Background()

	storage := NewBlobStorage(bucket, "https://cdn.example.com/avatars/")

	url, err := storage.Put(ctx, "profile_pictures/u-alice.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/profile_pictures/u-alice.jpg", url)

	data, err := bucket.ReadAll(ctx, "profile_pictures/u-alice.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	attrs, err := bucket.Attributes(ctx, "profile_pictures/u-alice.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestBlobStorage_PutOverwrites(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	ctx := context.Background()

	storage := NewBlobStorage(bucket, "")

	_, err := storage.Put(ctx, "profile_pictures/u-bob.jpg", "image/png", []byte("old"))
	require.NoError(t, err)
	url, err := storage.Put(ctx, "profile_pictures/u-bob.jpg", "image/png", []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, "profile_pictures/u-bob.jpg", url)

	data, err := bucket.ReadAll(ctx, "profile_pictures/u-bob.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestBlobStorage_Get(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	ctx := context.Background()

	storage := NewBlobStorage(bucket, "http://localhost:8080/static")
	_, err := storage.Put(ctx, "profile_pictures/u-alice.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	obj, err := storage.Get(ctx, "profile_pictures/u-alice.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), obj.Data)
	assert.Equal(t, "image/jpeg", obj.ContentType)

	_, err = storage.Get(ctx, "profile_pictures/u-nobody.jpg")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
}
