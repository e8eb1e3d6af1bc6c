package auth

import (
	"context"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams defines the clients a token verifier can be built from.
type VerifierParams struct {
	fx.In

	Config       *config.Config
	FirebaseAuth *auth.Client         `optional:"true"`
	Tokens       service.TokenService `optional:"true"`
}

// NewTokenVerifier returns the verifier for auth.provider.
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	switch params.Config.Auth.Provider {
	case config.AuthProviderFirebase:
		if params.FirebaseAuth == nil {
			return nil, errors.New("firebase auth client is not available")
		}

		return &firebaseVerifier{client: params.FirebaseAuth}, nil
	case config.AuthProviderLocal:
		if params.Tokens == nil {
			return nil, errors.New("token service is not available")
		}

		return &localVerifier{tokens: params.Tokens}, nil
	}

	return nil, errors.Errorf("unknown auth provider %q", params.Config.Auth.Provider)
}

// idTokenVerifier is the subset of *auth.Client used to check Firebase ID tokens.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (*entity.Caller, error) {
	idToken, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	caller := &entity.Caller{UID: idToken.UID}
	if email, ok := idToken.Claims["email"].(string); ok {
		caller.Email = email
	}
	if name, ok := idToken.Claims["name"].(string); ok {
		caller.DisplayName = name
	}

	return caller, nil
}

type localVerifier struct {
	tokens service.TokenService
}

func (v *localVerifier) VerifyToken(_ context.Context, token string) (*entity.Caller, error) {
	claims, err := v.tokens.ValidateToken(token, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	return &entity.Caller{UID: claims.Subject, Email: claims.Email}, nil
}
