package usecase

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// NotificationUsecase is the parcel notification function
type NotificationUsecase interface {
	// SendParcelNotification pushes a message to the target user's device on behalf of the caller.
	SendParcelNotification(ctx context.Context, notification *entity.ParcelNotification) (*entity.NotificationResult, error)
}
