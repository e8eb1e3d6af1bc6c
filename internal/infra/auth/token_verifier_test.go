package auth

import (
	"context"
	"testing"
	"time"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDTokenVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeIDTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.err
}

func TestFirebaseVerifier_MapsClaims(t *testing.T) {
	v := &firebaseVerifier{client: &fakeIDTokenVerifier{token: &auth.Token{
		UID:    "u-alice",
		Claims: map[string]any{"email": "alice@example.com", "name": "Alice"},
	}}}

	caller, err := v.VerifyToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, &entity.Caller{UID: "u-alice", Email: "alice@example.com", DisplayName: "Alice"}, caller)
}

func TestFirebaseVerifier_Error(t *testing.T) {
	v := &firebaseVerifier{client: &fakeIDTokenVerifier{err: errors.New("expired")}}

	_, err := v.VerifyToken(context.Background(), "id-token")
	assert.Error(t, err)
}

func TestLocalVerifier(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{Provider: config.AuthProviderLocal, JWTSecret: "local-secret"}}
	tokens := NewJWTService(cfg)
	verifier, err := NewTokenVerifier(VerifierParams{Config: cfg, Tokens: tokens})
	require.NoError(t, err)

	token, err := tokens.GenerateToken("u-bob", "bob@example.com", service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	caller, err := verifier.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-bob", caller.UID)
	assert.Equal(t, "bob@example.com", caller.Email)

	reset, err := tokens.GenerateToken("u-bob", "bob@example.com", service.TokenTypeReset, time.Hour)
	require.NoError(t, err)
	_, err = verifier.VerifyToken(context.Background(), reset)
	assert.Error(t, err)
}

func TestNewTokenVerifier_MissingClients(t *testing.T) {
	_, err := NewTokenVerifier(VerifierParams{Config: &config.Config{Auth: &config.AuthConfig{Provider: config.AuthProviderFirebase}}})
	assert.Error(t, err)

	_, err = NewTokenVerifier(VerifierParams{Config: &config.Config{Auth: &config.AuthConfig{Provider: config.AuthProviderLocal}}})
	assert.Error(t, err)
}
