package usecase

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// UpdateProfileInput represents the editable profile fields
type UpdateProfileInput struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Gender      string `json:"gender" validate:"max=32"`
}

// ProfileUsecase defines the caller's profile operations
type ProfileUsecase interface {
	// GetProfile returns the caller's profile, creating a default one on first access.
	GetProfile(ctx context.Context) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
	UploadAvatar(ctx context.Context, contentType string, data []byte) (*entity.User, error)
}
