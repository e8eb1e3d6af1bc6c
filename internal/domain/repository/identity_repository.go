package repository

import (
	"context"
	"errors"

	"parceltrack/internal/domain/entity"
)

// Domain-specific errors for locally stored credentials.
var (
	ErrCredentialNotFound      = errors.New("credential not found")
	ErrCredentialAlreadyExists = errors.New("credential already exists")
)

// CredentialRepository persists email/password identities for the local identity provider.
type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential *entity.Credential) error
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
	UpdatePasswordHash(ctx context.Context, uid, hash string) error
}
