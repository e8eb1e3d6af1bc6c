// Package identity implements the identity providers behind user lookup, provisioning and sign-in.
package identity

import (
	"context"
	"log/slog"

	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const requestTypePasswordReset = "PASSWORD_RESET"

// firebaseUsers is the subset of *auth.Client used for account lookup and creation.
type firebaseUsers interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

// resetMailer asks Firebase to email a password reset link.
type resetMailer interface {
	SendPasswordResetEmail(ctx context.Context, email string) error
}

type firebaseProvider struct {
	users  firebaseUsers
	mailer resetMailer
	logger *slog.Logger
}

// NewFirebaseProvider creates an IdentityProvider backed by Firebase Authentication.
func NewFirebaseProvider(ctx context.Context, client *auth.Client, webAPIKey string, logger *slog.Logger) (service.IdentityProvider, error) {
	mailer, err := newIdentityToolkitMailer(ctx, webAPIKey)
	if err != nil {
		return nil, err
	}

	return &firebaseProvider{
		users:  client,
		mailer: mailer,
		logger: logger,
	}, nil
}

func (p *firebaseProvider) LookupByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	record, err := p.users.GetUserByEmail(ctx, email)
	if auth.IsUserNotFound(err) {
		return nil, service.ErrIdentityNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up identity")
	}

	return toIdentity(record), nil
}

func (p *firebaseProvider) CreateIdentity(ctx context.Context, email, password string) (*entity.Identity, error) {
	record, err := p.users.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	p.logger.Info("Identity created", slog.String("uid", record.UID))

	return toIdentity(record), nil
}

func (p *firebaseProvider) SendPasswordReset(ctx context.Context, email string) error {
	if p.mailer == nil {
		return errors.New("password reset email is not configured")
	}

	return p.mailer.SendPasswordResetEmail(ctx, email)
}

func toIdentity(record *auth.UserRecord) *entity.Identity {
	if record == nil || record.UserInfo == nil {
		return &entity.Identity{}
	}

	return &entity.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}
}

type identityToolkitMailer struct {
	relyingParty *identitytoolkit.RelyingpartyService
}

// newIdentityToolkitMailer returns nil when no web API key is configured.
func newIdentityToolkitMailer(ctx context.Context, webAPIKey string) (resetMailer, error) {
	if webAPIKey == "" {
		return nil, nil
	}

	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(webAPIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &identityToolkitMailer{relyingParty: svc.Relyingparty}, nil
}

func (m *identityToolkitMailer) SendPasswordResetEmail(ctx context.Context, email string) error {
	_, err := m.relyingParty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		Email:       email,
		RequestType: requestTypePasswordReset,
	}).Context(ctx).Do()

	return errors.Wrap(err, "failed to send password reset email")
}
