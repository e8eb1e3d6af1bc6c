package usecase

import (
	"context"

	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"
)

// SharingUsecase defines the shared location operations
type SharingUsecase interface {
	// ShareLocation grants recipientEmail a snapshot of the parcel's location for expirationHours.
	ShareLocation(ctx context.Context, parcelID, recipientEmail string, expirationHours int) (string, error)

	// ShareParcelWithMultiple grants each recipient independently and returns the IDs that succeeded.
	ShareParcelWithMultiple(ctx context.Context, parcelID string, recipients []string, options entity.ShareOptions) ([]string, error)

	// StopSharing deactivates a grant. Idempotent.
	StopSharing(ctx context.Context, shareID string) error

	// GetSharedLocations emits the user's active, unexpired grants and deactivates expired ones it sees.
	GetSharedLocations(ctx context.Context, userID string) <-chan repository.Snapshot[[]*entity.ShareableLocation]
}
