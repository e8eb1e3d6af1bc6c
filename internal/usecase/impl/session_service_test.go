package impl

import (
	"context"
	"testing"
	"time"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/service"
	mockSvc "parceltrack/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (*sessionService, *mockSvc.MockPasswordAuthenticator, *mockSvc.MockTokenService) {
	authenticator := mockSvc.NewMockPasswordAuthenticator(t)
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		Authenticator: authenticator,
		Tokens:        tokens,
		Config:        &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}},
		Logger:        newDiscardLogger(),
	}).(*sessionService)

	return svc, authenticator, tokens
}

func TestSessionService_Login(t *testing.T) {
	svc, authenticator, tokens := createTestSessionService(t)
	ctx := context.Background()

	authenticator.EXPECT().Authenticate(ctx, "alice@example.com", "s3cret-pass").
		Return(&entity.Identity{UID: "u-alice", Email: "alice@example.com"}, nil)
	tokens.EXPECT().GenerateToken("u-alice", "alice@example.com", service.TokenTypeAccess, time.Hour).Return("signed", nil)

	result, err := svc.Login(ctx, "Alice@Example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "signed", result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, "u-alice", result.UserID)
}

func TestSessionService_Login_BadPassword(t *testing.T) {
	svc, authenticator, _ := createTestSessionService(t)
	ctx := context.Background()

	authenticator.EXPECT().Authenticate(ctx, "alice@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_ResetPassword(t *testing.T) {
	svc, authenticator, _ := createTestSessionService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ResetPassword(ctx, "reset-token", "short"), domainerrors.ErrValidationFailed)

	authenticator.EXPECT().ResetPassword(ctx, "reset-token", "long-enough-pw").Return(nil)
	assert.NoError(t, svc.ResetPassword(ctx, "reset-token", "long-enough-pw"))
}

func TestSessionService_DisabledWithoutAuthenticator(t *testing.T) {
	svc := NewSessionService(SessionServiceParams{
		Config: &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}},
		Logger: newDiscardLogger(),
	})
	ctx := context.Background()

	_, err := svc.Login(ctx, "alice@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, domainerrors.ErrFailedPrecondition)

	assert.ErrorIs(t, svc.ResetPassword(ctx, "reset-token", "long-enough-pw"), domainerrors.ErrFailedPrecondition)
}
