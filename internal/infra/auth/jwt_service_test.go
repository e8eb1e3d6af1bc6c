package auth

import (
	"testing"
	"time"

	"parceltrack/config"
	"parceltrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: "test_secret_key_very_long_for_testing"}})
	require.NotNil(t, svc)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken("u-alice", "alice@example.com", service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u-alice", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken("u-alice", "alice@example.com", service.TokenTypeReset, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token, service.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("u-alice", "alice@example.com", service.TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateToken(token, service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	other := NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: "another_secret"}})
	token, err := other.GenerateToken("u-mallory", "m@example.com", service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = newTestJWTService(t).ValidateToken(token, service.TokenTypeAccess)
	assert.Error(t, err)

	_, err = newTestJWTService(t).ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestNewJWTService_NoSecret(t *testing.T) {
	assert.Nil(t, NewJWTService(&config.Config{Auth: &config.AuthConfig{}}))
}
