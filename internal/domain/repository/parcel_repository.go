package repository

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/domain/entity"
)

// Domain-specific errors for parcel persistence.
var (
	// ErrParcelNotFound is returned when a parcel document does not exist.
	ErrParcelNotFound = errors.New("parcel not found")
)

// ParcelWriter is the part of ParcelRepository usable inside a transaction.
type ParcelWriter interface {
	// UpdateParcelStatus sets status and updatedAt. Returns ErrParcelNotFound if the parcel does not exist.
	UpdateParcelStatus(ctx context.Context, id string, status entity.ParcelStatus, updatedAt time.Time) error

	// UpdateParcelLocation sets currentLocation and updatedAt only.
	UpdateParcelLocation(ctx context.Context, id string, location entity.GeoPoint, updatedAt time.Time) error

	// ApplyLocationUpdate sets currentLocation, status and updatedAt together.
	ApplyLocationUpdate(ctx context.Context, id string, location entity.GeoPoint, status entity.ParcelStatus, updatedAt time.Time) error
}

// ParcelRepository defines the interface for parcel persistence.
type ParcelRepository interface {
	ParcelWriter

	// CreateParcel persists a new parcel and assigns its ID.
	CreateParcel(ctx context.Context, parcel *entity.Parcel) error

	// FindParcelByID retrieves a parcel. Returns ErrParcelNotFound if it does not exist.
	FindParcelByID(ctx context.Context, id string) (*entity.Parcel, error)

	// WatchParcel emits the parcel every time it changes. Emissions are skipped while the parcel does not exist.
	WatchParcel(ctx context.Context, id string) <-chan Snapshot[*entity.Parcel]

	// WatchParcelsBySender emits every parcel created by senderID.
	WatchParcelsBySender(ctx context.Context, senderID string) <-chan Snapshot[[]*entity.Parcel]

	// WatchParcelsByReceiver emits every parcel addressed to receiverID.
	WatchParcelsByReceiver(ctx context.Context, receiverID string) <-chan Snapshot[[]*entity.Parcel]
}
