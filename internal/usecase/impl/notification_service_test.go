package impl

import (
	"context"
	"testing"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	mockRepo "parceltrack/internal/mocks/repository"
	mockSvc "parceltrack/internal/mocks/service"
	mockUsecase "parceltrack/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceMocks struct {
	userRepo        *mockRepo.MockUserRepository
	preferencesRepo *mockRepo.MockPreferencesRepository
	pushSvc         *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) (*notificationService, *notificationServiceMocks) {
	m := &notificationServiceMocks{
		userRepo:        mockRepo.NewMockUserRepository(t),
		preferencesRepo: mockRepo.NewMockPreferencesRepository(t),
		pushSvc:         mockSvc.NewMockNotificationService(t),
	}

	svc := NewNotificationService(NotificationServiceParams{
		UserRepo:        m.userRepo,
		PreferencesRepo: m.preferencesRepo,
		PushSvc:         m.pushSvc,
		Logger:          newDiscardLogger(),
	}).(*notificationService)

	return svc, m
}

func parcelNotification() *entity.ParcelNotification {
	return &entity.ParcelNotification{
		UserID:   "u-bob",
		Title:    "Parcel Delivered",
		Body:     "Your parcel has been delivered",
		ParcelID: "p-1",
	}
}

func TestNotificationService_SendsWithDataPayload(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := callerContext()

	m.userRepo.EXPECT().FindUserByID(ctx, "u-bob").Return(&entity.User{ID: "u-bob", FCMToken: "tok-1"}, nil)
	m.preferencesRepo.EXPECT().GetPreferences(ctx, "u-bob").Return(entity.DefaultPreferences("u-bob"), nil)
	m.pushSvc.EXPECT().SendSingleNotification(ctx, "tok-1", "Parcel Delivered", "Your parcel has been delivered", map[string]string{
		"title":    "Parcel Delivered",
		"body":     "Your parcel has been delivered",
		"parcelId": "p-1",
	}).Return(nil)

	result, err := svc.SendParcelNotification(ctx, parcelNotification())

	require.NoError(t, err)
	assert.Equal(t, &entity.NotificationResult{Success: true}, result)
}

func TestNotificationService_Unauthenticated(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	_, err := svc.SendParcelNotification(context.Background(), parcelNotification())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestNotificationService_FailedPrecondition(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := callerContext()

	m.userRepo.EXPECT().FindUserByID(ctx, "u-bob").Return(&entity.User{ID: "u-bob"}, nil).Once()
	_, err := svc.SendParcelNotification(ctx, parcelNotification())
	assert.True(t, errors.Is(err, domainerrors.ErrFailedPrecondition))

	m.userRepo.EXPECT().FindUserByID(ctx, "u-bob").Return(nil, repository.ErrUserNotFound).Once()
	_, err = svc.SendParcelNotification(ctx, parcelNotification())
	assert.True(t, errors.Is(err, domainerrors.ErrFailedPrecondition))
}

func TestNotificationService_SkipsWhenDisabled(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := callerContext()

	prefs := entity.DefaultPreferences("u-bob")
	prefs.NotificationsEnabled = false
	m.userRepo.EXPECT().FindUserByID(ctx, "u-bob").Return(&entity.User{ID: "u-bob", FCMToken: "tok-1"}, nil)
	m.preferencesRepo.EXPECT().GetPreferences(ctx, "u-bob").Return(prefs, nil)

	result, err := svc.SendParcelNotification(ctx, parcelNotification())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	m.pushSvc.AssertNotCalled(t, "SendSingleNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_SendFailureIsInternal(t *testing.T) {
	svc, m := createTestNotificationService(t)
	ctx := callerContext()

	m.userRepo.EXPECT().FindUserByID(ctx, "u-bob").Return(&entity.User{ID: "u-bob", FCMToken: "tok-1"}, nil)
	m.preferencesRepo.EXPECT().GetPreferences(ctx, "u-bob").Return(nil, errors.New("timeout"))
	m.pushSvc.EXPECT().SendSingleNotification(ctx, "tok-1", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("registration-token-not-registered"))

	_, err := svc.SendParcelNotification(ctx, parcelNotification())
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestDirectPublisher_CallsNotificationAsEventCaller(t *testing.T) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	publisher := NewDirectPublisher(notifications)

	notifications.EXPECT().SendParcelNotification(mock.Anything, parcelNotification()).
		RunAndReturn(func(ctx context.Context, _ *entity.ParcelNotification) (*entity.NotificationResult, error) {
			caller, err := requireCaller(ctx)
			require.NoError(t, err)
			assert.Equal(t, "u-alice", caller.UID)

			return &entity.NotificationResult{Success: true}, nil
		})

	err := publisher.PublishParcelNotification(context.Background(), &service.ParcelNotificationEvent{
		CallerID:    "u-alice",
		CallerEmail: "alice@example.com",
		UserID:      "u-bob",
		Title:       "Parcel Delivered",
		Body:        "Your parcel has been delivered",
		ParcelID:    "p-1",
	})

	require.NoError(t, err)
	assert.NoError(t, publisher.Close())
}
