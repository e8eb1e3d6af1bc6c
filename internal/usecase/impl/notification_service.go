package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	userRepo        repository.UserRepository
	preferencesRepo repository.PreferencesRepository
	pushSvc         service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	PreferencesRepo repository.PreferencesRepository
	PushSvc         service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:        params.UserRepo,
		preferencesRepo: params.PreferencesRepo,
		pushSvc:         params.PushSvc,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendParcelNotification looks up the target's push token and sends the message.
func (s *notificationService) SendParcelNotification(ctx context.Context, n *entity.ParcelNotification) (*entity.NotificationResult, error) {
	if _, err := requireCaller(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(n.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	user, err := s.userRepo.FindUserByID(ctx, n.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrFailedPrecondition.WithDetails("user does not exist")
	}
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}
	if user.FCMToken == "" {
		return nil, domainerrors.ErrFailedPrecondition
	}

	prefs, err := s.preferencesRepo.GetPreferences(ctx, user.ID)
	if err != nil {
		s.log(ctx).Warn("Failed to read preferences, sending anyway", slog.String("user_id", user.ID), slog.Any("error", err))
	} else if !prefs.NotificationsEnabled {
		s.log(ctx).Info("Notifications disabled by user", slog.String("user_id", user.ID))

		return &entity.NotificationResult{Success: true, Skipped: true}, nil
	}

	data := map[string]string{
		"title":    n.Title,
		"body":     n.Body,
		"parcelId": n.ParcelID,
	}
	if err := s.pushSvc.SendSingleNotification(ctx, user.FCMToken, n.Title, n.Body, data); err != nil {
		s.log(ctx).Error("Failed to send notification", slog.String("user_id", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to send notification")
	}

	return &entity.NotificationResult{Success: true}, nil
}
