package usecase

import (
	"context"
)

// LoginResult is returned by a successful local login
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	UserID      string `json:"user_id"`
}

// SessionUsecase defines email/password sessions for local identities
type SessionUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
