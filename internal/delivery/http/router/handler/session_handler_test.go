package handler

import (
	"context"
	"net/http"
	"testing"

	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type fakeSessionUsecase struct {
	resetToken string
}

func (f *fakeSessionUsecase) Login(_ context.Context, email, password string) (*usecase.LoginResult, error) {
	if email != "alice@example.com" || password != "correct horse" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return &usecase.LoginResult{AccessToken: "jwt", TokenType: "Bearer", ExpiresIn: 3600, UserID: "u-alice"}, nil
}

func (f *fakeSessionUsecase) ResetPassword(_ context.Context, resetToken, _ string) error {
	if resetToken != f.resetToken {
		return domainerrors.ErrResetTokenInvalid
	}

	return nil
}

func TestSessionHandler(t *testing.T) {
	h := NewSessionHandler(&fakeSessionUsecase{resetToken: "reset-1"})
	e := newTestEcho(nil)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/reset-password", h.ResetPassword)

	rec := doJSON(e, http.MethodPost, "/auth/login", map[string]string{"email": "alice@example.com", "password": "correct horse"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"jwt","token_type":"Bearer","expires_in":3600,"user_id":"u-alice"}`, string(decodeEnvelope(t, rec).Data))

	rec = doJSON(e, http.MethodPost, "/auth/login", map[string]string{"email": "alice@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Error.Code)

	rec = doJSON(e, http.MethodPost, "/auth/reset-password", map[string]string{"token": "reset-1", "new_password": "n3w-password"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/reset-password", map[string]string{"token": "stale", "new_password": "n3w-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
