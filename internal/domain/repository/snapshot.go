// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"
)

// Snapshot is one emission of a live query: either the full current value or a terminal error.
type Snapshot[T any] struct {
	Data T
	// ReadTime is the store's time for this emission. Expiry checks use it instead of the local clock.
	ReadTime time.Time
	Err      error
}

// SendSnapshot delivers s unless ctx is done first. It reports whether s was delivered.
func SendSnapshot[T any](ctx context.Context, out chan<- Snapshot[T], s Snapshot[T]) bool {
	select {
	case out <- s:
		return true
	case <-ctx.Done():
		return false
	}
}
