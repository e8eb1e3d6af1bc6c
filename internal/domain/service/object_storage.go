package service

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when a key holds no object.
var ErrObjectNotFound = errors.New("object not found")

// Object is a stored file and the content type it was written with.
type Object struct {
	Data        []byte
	ContentType string
}

// ObjectStorage stores uploaded files and exposes them by URL.
type ObjectStorage interface {
	// Put writes data under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Get reads the object under key.
	Get(ctx context.Context, key string) (*Object, error)
}
