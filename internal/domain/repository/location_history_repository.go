package repository

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// LocationHistoryWriter is the part of LocationHistoryRepository usable inside a transaction.
type LocationHistoryWriter interface {
	// CreateLocationHistory appends an entry and assigns its ID.
	CreateLocationHistory(ctx context.Context, entry *entity.LocationHistory) error
}

// LocationHistoryRepository defines the interface for the append-only waypoint log.
type LocationHistoryRepository interface {
	LocationHistoryWriter

	// WatchLocationHistory emits a parcel's entries ordered by timestamp, newest first.
	WatchLocationHistory(ctx context.Context, parcelID string) <-chan Snapshot[[]*entity.LocationHistory]
}
