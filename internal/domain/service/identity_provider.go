package service

import (
	"context"
	"errors"

	"parceltrack/internal/domain/entity"
)

// ErrIdentityNotFound is returned when the authentication provider has no account for an email.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityProvider manages authentication identities.
type IdentityProvider interface {
	// LookupByEmail returns the identity registered for email, or ErrIdentityNotFound.
	LookupByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// CreateIdentity registers a new email/password identity.
	CreateIdentity(ctx context.Context, email, password string) (*entity.Identity, error)

	// SendPasswordReset starts the password reset flow for email.
	SendPasswordReset(ctx context.Context, email string) error
}

// PasswordAuthenticator verifies email/password logins (local identities only).
type PasswordAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*entity.Identity, error)

	// ResetPassword consumes a reset token issued by SendPasswordReset.
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
