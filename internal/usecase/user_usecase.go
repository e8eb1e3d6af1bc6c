package usecase

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// UserUsecase defines user resolution and lookup operations
type UserUsecase interface {
	// FindUserByEmail returns the user ID for email, provisioning the account when it does not exist.
	FindUserByEmail(ctx context.Context, email string) (string, error)

	// SearchUsers matches an email prefix. Queries shorter than three characters return nothing.
	SearchUsers(ctx context.Context, query string) ([]*entity.UserSearchResult, error)

	GetUserEmail(ctx context.Context, userID string) (string, error)

	// UpdatePushToken stores the caller's FCM token.
	UpdatePushToken(ctx context.Context, token string) error
}
