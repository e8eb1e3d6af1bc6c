package usecase

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// UpdatePreferencesInput carries the settings to change; nil fields are left as they are
type UpdatePreferencesInput struct {
	NotificationsEnabled    *bool `json:"notifications_enabled,omitempty"`
	DarkThemeEnabled        *bool `json:"dark_theme_enabled,omitempty"`
	LocationTrackingEnabled *bool `json:"location_tracking_enabled,omitempty"`
}

// PreferencesUsecase defines the caller's settings operations
type PreferencesUsecase interface {
	GetPreferences(ctx context.Context) (*entity.Preferences, error)
	UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*entity.Preferences, error)
}
