// Package storage keeps uploaded objects in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"parceltrack/config"
	"parceltrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets, the Firebase Storage backend
	_ "gocloud.dev/blob/memblob"  // mem:// fallback
)

const inMemoryBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the dependencies of the object storage.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens storage.bucketUrl, or an in-memory bucket when unset, and closes it on shutdown.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Warn("storage.bucketUrl not configured, avatars are kept in memory")
		cfg = &config.StorageConfig{BucketURL: inMemoryBucketURL}
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Object storage opened", slog.String("bucket", cfg.BucketURL))

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an open bucket. Object URLs are publicBaseURL joined with the key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{bucket: bucket, publicBaseURL: strings.TrimSuffix(publicBaseURL, "/")}
}

// Put overwrites key with data and returns its public URL.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "no-cache",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return s.publicURL(key)
}

func (s *blobStorage) Get(ctx context.Context, key string) (*service.Object, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, service.ErrObjectNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read attributes of %s", key)
	}

	return &service.Object{Data: data, ContentType: attrs.ContentType}, nil
}

func (s *blobStorage) publicURL(key string) (string, error) {
	if s.publicBaseURL == "" {
		return key, nil
	}

	u, err := url.JoinPath(s.publicBaseURL, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to build object URL")
	}

	return u, nil
}
