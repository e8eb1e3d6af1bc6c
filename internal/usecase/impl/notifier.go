package impl

import (
	"context"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"
)

// publishNotification hands a push message for userID to the notifier on behalf of caller.
func publishNotification(
	ctx context.Context,
	publisher service.EventPublisher,
	caller *entity.Caller,
	userID, title, body, parcelID string,
) error {
	return publisher.PublishParcelNotification(ctx, &service.ParcelNotificationEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		CallerID:    caller.UID,
		CallerEmail: caller.Email,
		UserID:      userID,
		Title:       title,
		Body:        body,
		ParcelID:    parcelID,
	})
}
