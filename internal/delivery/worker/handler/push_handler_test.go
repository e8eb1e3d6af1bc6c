package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"parceltrack/config"
	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/service"
	mockUsecase "parceltrack/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	h, err := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.DiscardHandler),
		Notifications: notifications,
	})
	require.NoError(t, err)

	return h, notifications
}

func developConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event *service.ParcelNotificationEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/parcel-notifications"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func push(h *PushHandler, body []byte, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pubsub/parcel-notifications", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

var testEvent = &service.ParcelNotificationEvent{
	RequestID:   "req-event",
	CallerID:    "u-alice",
	CallerEmail: "alice@example.com",
	UserID:      "u-bob",
	Title:       "Parcel Delivered",
	Body:        "Your parcel has been delivered",
	ParcelID:    "p-1",
}

func TestPushHandler_DeliversAsCaller(t *testing.T) {
	h, notifications := newTestPushHandler(t, developConfig())

	notifications.EXPECT().SendParcelNotification(mock.Anything, &entity.ParcelNotification{
		UserID:   "u-bob",
		Title:    "Parcel Delivered",
		Body:     "Your parcel has been delivered",
		ParcelID: "p-1",
	}).RunAndReturn(func(ctx context.Context, _ *entity.ParcelNotification) (*entity.NotificationResult, error) {
		caller := deliverycontext.GetCaller(ctx)
		require.NotNil(t, caller)
		assert.Equal(t, "u-alice", caller.UID)
		assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

		return &entity.NotificationResult{Success: true}, nil
	})

	rec := push(h, pushBody(t, testEvent, map[string]string{"request_id": "req-attr"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing push token is acknowledged", domainerrors.ErrFailedPrecondition, http.StatusOK},
		{"anonymous event is acknowledged", domainerrors.ErrUnauthenticated, http.StatusOK},
		{"send failure is retried", domainerrors.ErrInternalError.WrapMessage("fcm unavailable"), http.StatusServiceUnavailable},
		{"unclassified failure is retried", errors.New("connection reset"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifications := newTestPushHandler(t, developConfig())
			notifications.EXPECT().SendParcelNotification(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := push(h, pushBody(t, testEvent, nil), "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, developConfig())

	assert.Equal(t, http.StatusBadRequest, push(h, []byte(`{"message":{"data":"!!not base64"}}`), "").Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, push(h, []byte(`{"message":{"data":"`+notJSON+`"}}`), "").Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://notifier.example.com/pubsub/parcel-notifications",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, notifications := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "google-signed" {
			return nil, errors.New("invalid signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	assert.Equal(t, http.StatusUnauthorized, push(h, pushBody(t, testEvent, nil), "").Code)
	assert.Equal(t, http.StatusUnauthorized, push(h, pushBody(t, testEvent, nil), "Bearer forged").Code)

	notifications.EXPECT().SendParcelNotification(mock.Anything, mock.Anything).Return(&entity.NotificationResult{Success: true}, nil)
	assert.Equal(t, http.StatusOK, push(h, pushBody(t, testEvent, nil), "Bearer google-signed").Code)
	assert.Equal(t, cfg.PubSub.PushAudience, gotAudience)
}

func TestPushHandler_NoVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestPushHandler_RefusesUnauthenticatedSetups(t *testing.T) {
	tests := []struct {
		name   string
		pubsub *config.PubSubConfig
	}{
		{"no pubsub section", nil},
		{"local without secret", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{"direct", &config.PubSubConfig{Provider: constants.PubSubProviderDirect}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.Env.Env = constants.EnvProduction

			_, err := NewPushHandler(PushHandlerParams{
				Config:        cfg,
				Logger:        slog.New(slog.DiscardHandler),
				Notifications: mockUsecase.NewMockNotificationUsecase(t),
			})

			assert.Error(t, err)
		})
	}
}

func TestPushHandler_LocalPushSecret(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, PushSecret: "s3cret"}}
	cfg.Env.Env = constants.EnvProduction

	h, notifications := newTestPushHandler(t, cfg)
	require.False(t, h.verifyPushAuth)

	pushWithSecret := func(secret string) int {
		req := httptest.NewRequest(http.MethodPost, "/pubsub/parcel-notifications", bytes.NewReader(pushBody(t, testEvent, nil)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if secret != "" {
			req.Header.Set(constants.PushSecretHeader, secret)
		}
		rec := httptest.NewRecorder()
		_ = h.HandlePush(echo.New().NewContext(req, rec))

		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, pushWithSecret(""))
	assert.Equal(t, http.StatusUnauthorized, pushWithSecret("guess"))
	notifications.AssertNotCalled(t, "SendParcelNotification", mock.Anything, mock.Anything)

	notifications.EXPECT().SendParcelNotification(mock.Anything, mock.Anything).Return(&entity.NotificationResult{Success: true}, nil).Once()
	assert.Equal(t, http.StatusOK, pushWithSecret("s3cret"))
}
