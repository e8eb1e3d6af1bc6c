package impl

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/config"
	deliverycontext "parceltrack/internal/delivery/context"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"go.uber.org/fx"
)

var errPasswordSignInDisabled = domainerrors.ErrFailedPrecondition.WithDetails("password sign-in is disabled for this identity provider")

// sessionService issues access tokens for local identities.
type sessionService struct {
	authenticator service.PasswordAuthenticator
	tokens        service.TokenService
	accessTTL     time.Duration
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Authenticator service.PasswordAuthenticator `optional:"true"`
	Tokens        service.TokenService          `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authenticator: params.Authenticator,
		tokens:        params.Tokens,
		accessTTL:     params.Config.Auth.AccessTokenTTL,
		logger:        params.Logger,
	}
}

// Login verifies the password and returns a signed access token.
func (s *sessionService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	if s.authenticator == nil || s.tokens == nil {
		return nil, errPasswordSignInDisabled
	}

	identity, err := s.authenticator.Authenticate(ctx, normalizeEmail(email), password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(identity.UID, identity.Email, service.TokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("User logged in", slog.String("user_id", identity.UID))

	return &usecase.LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
		UserID:      identity.UID,
	}, nil
}

// ResetPassword sets a new password using a reset token.
func (s *sessionService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < 8 {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	if s.authenticator == nil {
		return errPasswordSignInDisabled
	}

	return s.authenticator.ResetPassword(ctx, resetToken, newPassword)
}
