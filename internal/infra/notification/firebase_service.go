// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"parceltrack/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxMulticastTokens is the FCM limit for one multicast request.
const maxMulticastTokens = 500

// fcmSender is the subset of *messaging.Client used here.
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client fcmSender
	logger *slog.Logger
}

// Params defines the dependencies of the push service.
type Params struct {
	fx.In

	Client *messaging.Client `optional:"true"`
	Logger *slog.Logger
}

// NewNotificationService returns the FCM service, or a log-only one when Firebase is not configured.
func NewNotificationService(params Params) service.NotificationService {
	if params.Client == nil {
		params.Logger.Warn("FCM not configured, push notifications are logged only")

		return &logOnlyService{logger: params.Logger}
	}

	return &firebaseService{client: params.Client, logger: params.Logger}
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.DebugContext(ctx, "Push notification sent", slog.String("message_id", messageID))

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

// logOnlyService stands in for FCM in local development.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendSingleNotification(ctx context.Context, _ string, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Push notification (not sent)",
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for _, token := range tokens {
		_ = s.SendSingleNotification(ctx, token, title, body, data)
	}

	return len(tokens), 0, nil, nil
}
