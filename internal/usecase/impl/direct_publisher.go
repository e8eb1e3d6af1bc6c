package impl

import (
	"context"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"
)

// directPublisher delivers parcel notifications in-process, without a queue.
type directPublisher struct {
	notifications usecase.NotificationUsecase
}

// NewDirectPublisher creates an EventPublisher that calls the notification function synchronously.
func NewDirectPublisher(notifications usecase.NotificationUsecase) service.EventPublisher {
	return &directPublisher{notifications: notifications}
}

func (p *directPublisher) PublishParcelNotification(ctx context.Context, event *service.ParcelNotificationEvent) error {
	ctx = deliverycontext.WithCaller(ctx, &entity.Caller{UID: event.CallerID, Email: event.CallerEmail})

	_, err := p.notifications.SendParcelNotification(ctx, &entity.ParcelNotification{
		UserID:   event.UserID,
		Title:    event.Title,
		Body:     event.Body,
		ParcelID: event.ParcelID,
	})

	return err
}

func (p *directPublisher) Close() error {
	return nil
}
