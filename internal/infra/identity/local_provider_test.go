package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	mockRepo "parceltrack/internal/mocks/repository"
	mockSvc "parceltrack/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func createTestLocalProvider(t *testing.T) (*LocalProvider, *mockRepo.MockCredentialRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	credentials := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	provider := NewLocalProvider(credentials, hasher, tokens, 30*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	provider.now = func() time.Time { return testNow }

	return provider, credentials, hasher, tokens
}

func TestLocalProvider_LookupByEmail(t *testing.T) {
	provider, credentials, _, _ := createTestLocalProvider(t)
	ctx := context.Background()

	credentials.EXPECT().FindCredentialByEmail(ctx, "bob@example.com").
		Return(&entity.Credential{UID: "u-bob", Email: "bob@example.com"}, nil)
	credentials.EXPECT().FindCredentialByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrCredentialNotFound)

	identity, err := provider.LookupByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-bob", identity.UID)

	_, err = provider.LookupByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, service.ErrIdentityNotFound)
}

func TestLocalProvider_CreateIdentity(t *testing.T) {
	provider, credentials, hasher, _ := createTestLocalProvider(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("Temp-pass").Return("hashed", nil)
	credentials.EXPECT().CreateCredential(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
		return c.UID != "" && c.Email == "new@example.com" && c.PasswordHash == "hashed" && c.CreatedAt.Equal(testNow)
	})).Return(nil)

	identity, err := provider.CreateIdentity(ctx, "new@example.com", "Temp-pass")

	require.NoError(t, err)
	assert.NotEmpty(t, identity.UID)
	assert.Equal(t, "new@example.com", identity.Email)
}

func TestLocalProvider_SendPasswordReset(t *testing.T) {
	provider, credentials, _, tokens := createTestLocalProvider(t)
	ctx := context.Background()

	credentials.EXPECT().FindCredentialByEmail(ctx, "bob@example.com").
		Return(&entity.Credential{UID: "u-bob", Email: "bob@example.com"}, nil)
	tokens.EXPECT().GenerateToken("u-bob", "bob@example.com", service.TokenTypeReset, 30*time.Minute).Return("reset-token", nil)

	assert.NoError(t, provider.SendPasswordReset(ctx, "bob@example.com"))
}

func TestLocalProvider_Authenticate(t *testing.T) {
	provider, credentials, hasher, _ := createTestLocalProvider(t)
	ctx := context.Background()

	credentials.EXPECT().FindCredentialByEmail(ctx, "bob@example.com").
		Return(&entity.Credential{UID: "u-bob", Email: "bob@example.com", PasswordHash: "hashed"}, nil)
	hasher.EXPECT().Check("right", "hashed").Return(true).Once()
	hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()
	credentials.EXPECT().FindCredentialByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrCredentialNotFound)

	identity, err := provider.Authenticate(ctx, "bob@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "u-bob", identity.UID)

	_, err = provider.Authenticate(ctx, "bob@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = provider.Authenticate(ctx, "ghost@example.com", "right")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLocalProvider_ResetPassword(t *testing.T) {
	provider, credentials, hasher, tokens := createTestLocalProvider(t)
	ctx := context.Background()

	tokens.EXPECT().ValidateToken("good", service.TokenTypeReset).
		Return(&service.Claims{Email: "bob@example.com", RegisteredClaims: jwt.RegisteredClaims{Subject: "u-bob"}}, nil).Once()
	tokens.EXPECT().ValidateToken("bad", service.TokenTypeReset).Return(nil, errors.New("expired")).Once()
	hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	credentials.EXPECT().UpdatePasswordHash(ctx, "u-bob", "new-hash").Return(nil)

	assert.NoError(t, provider.ResetPassword(ctx, "good", "new-password"))
	assert.ErrorIs(t, provider.ResetPassword(ctx, "bad", "new-password"), domainerrors.ErrResetTokenInvalid)
}
