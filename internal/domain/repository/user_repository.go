package repository

import (
	"context"
	"errors"

	"parceltrack/internal/domain/entity"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user document does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when creating a user whose ID is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the interface for user profile records.
type UserRepository interface {
	// CreateUser persists a user under user.ID.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// FindUserByEmail retrieves the first user whose email equals email exactly.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// SearchUsersByEmailPrefix returns up to limit users whose email starts with prefix, ordered by email.
	SearchUsersByEmailPrefix(ctx context.Context, prefix string, limit int) ([]*entity.User, error)

	// UpdateProfile sets display name and gender.
	UpdateProfile(ctx context.Context, id, displayName, gender string) error

	// UpdatePhotoURL sets the avatar URL.
	UpdatePhotoURL(ctx context.Context, id, photoURL string) error

	// UpdatePushToken sets the FCM token.
	UpdatePushToken(ctx context.Context, id, token string) error
}
