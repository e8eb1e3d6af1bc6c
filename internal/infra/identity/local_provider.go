package identity

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LocalProvider keeps email/password identities in the relational store.
// Reset tokens are logged instead of emailed.
type LocalProvider struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	resetTTL    time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewLocalProvider is the constructor for LocalProvider.
func NewLocalProvider(
	credentials repository.CredentialRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	resetTTL time.Duration,
	logger *slog.Logger,
) *LocalProvider {
	return &LocalProvider{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		resetTTL:    resetTTL,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *LocalProvider) LookupByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, email)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, service.ErrIdentityNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entity.Identity{UID: credential.UID, Email: credential.Email}, nil
}

func (p *LocalProvider) CreateIdentity(ctx context.Context, email, password string) (*entity.Identity, error) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := p.now().UTC()
	credential := &entity.Credential{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.credentials.CreateCredential(ctx, credential); err != nil {
		return nil, errors.Wrap(err, "failed to store credential")
	}

	return &entity.Identity{UID: credential.UID, Email: credential.Email}, nil
}

// SendPasswordReset issues a single-use reset token and writes it to the log.
func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	credential, err := p.credentials.FindCredentialByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := p.tokens.GenerateToken(credential.UID, credential.Email, service.TokenTypeReset, p.resetTTL)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}

	p.logger.InfoContext(ctx, "Password reset token issued",
		slog.String("uid", credential.UID),
		slog.String("email", credential.Email),
		slog.String("reset_token", token),
	)

	return nil
}

func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (*entity.Identity, error) {
	credential, err := p.credentials.FindCredentialByEmail(ctx, email)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load credential")
	}

	if !p.hasher.Check(password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return &entity.Identity{UID: credential.UID, Email: credential.Email}, nil
}

func (p *LocalProvider) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := p.tokens.ValidateToken(resetToken, service.TokenTypeReset)
	if err != nil {
		return domainerrors.ErrResetTokenInvalid
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	err = p.credentials.UpdatePasswordHash(ctx, claims.Subject, hash)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		return domainerrors.ErrResetTokenInvalid
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update password")
	}

	return nil
}
