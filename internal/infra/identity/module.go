package identity

import (
	"context"
	"log/slog"

	"parceltrack/config"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of both providers. Unused ones are nil.
type Params struct {
	fx.In

	Ctx          context.Context
	Config       *config.Config
	Logger       *slog.Logger
	FirebaseAuth *auth.Client                    `optional:"true"`
	Credentials  repository.CredentialRepository `optional:"true"`
	Hasher       service.PasswordHasher
	Tokens       service.TokenService `optional:"true"`
}

// Result exposes the configured provider. Authenticator is nil unless identities are local.
type Result struct {
	fx.Out

	Provider      service.IdentityProvider
	Authenticator service.PasswordAuthenticator
}

// New builds the identity provider selected by auth.provider.
func New(params Params) (Result, error) {
	cfg := params.Config

	switch cfg.Auth.Provider {
	case config.AuthProviderFirebase:
		if params.FirebaseAuth == nil {
			return Result{}, errors.New("firebase auth client is not available")
		}
		provider, err := NewFirebaseProvider(params.Ctx, params.FirebaseAuth, cfg.Firebase.WebAPIKey, params.Logger)
		if err != nil {
			return Result{}, err
		}

		return Result{Provider: provider}, nil
	case config.AuthProviderLocal:
		if params.Credentials == nil || params.Tokens == nil {
			return Result{}, errors.New("local identities need the postgres store and auth.jwtSecret")
		}
		provider := NewLocalProvider(params.Credentials, params.Hasher, params.Tokens, cfg.Auth.ResetTokenTTL, params.Logger)

		return Result{Provider: provider, Authenticator: provider}, nil
	}

	return Result{}, errors.Errorf("unknown auth provider %q", cfg.Auth.Provider)
}
