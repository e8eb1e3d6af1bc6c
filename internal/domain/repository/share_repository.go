package repository

import (
	"context"
	"errors"

	"parceltrack/internal/domain/entity"
)

// ErrShareNotFound is returned when a shared location does not exist.
var ErrShareNotFound = errors.New("shared location not found")

// ShareRepository defines the interface for shared location grants.
type ShareRepository interface {
	// CreateShare persists a grant and assigns its ID.
	CreateShare(ctx context.Context, share *entity.ShareableLocation) error

	// FindShareByID returns ErrShareNotFound when the grant does not exist.
	FindShareByID(ctx context.Context, id string) (*entity.ShareableLocation, error)

	// FindActiveShares lists the active grants on parcelID held by granteeID, expired ones included.
	FindActiveShares(ctx context.Context, parcelID, granteeID string) ([]*entity.ShareableLocation, error)

	// DeactivateShare sets isActive to false. Deactivating an inactive grant is not an error.
	DeactivateShare(ctx context.Context, id string) error

	// WatchActiveShares emits grants with sharedWith == granteeID and isActive == true.
	// Expired grants are included; callers filter them against Snapshot.ReadTime.
	WatchActiveShares(ctx context.Context, granteeID string) <-chan Snapshot[[]*entity.ShareableLocation]
}
