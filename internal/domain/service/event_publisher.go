package service

import (
	"context"
)

// ParcelNotificationEvent asks the notifier to push a message to one user.
// The caller fields carry the identity that triggered it; the notifier rejects events without one.
type ParcelNotificationEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	CallerID    string `json:"caller_id"`
	CallerEmail string `json:"caller_email,omitempty"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	ParcelID    string `json:"parcel_id"`
}

// EventPublisher hands parcel notifications to the notifier
type EventPublisher interface {
	// PublishParcelNotification publishes an event for async delivery
	PublishParcelNotification(ctx context.Context, event *ParcelNotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
