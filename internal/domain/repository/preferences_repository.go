package repository

import (
	"context"

	"parceltrack/internal/domain/entity"
)

// PreferencesRepository stores per-user settings.
type PreferencesRepository interface {
	// GetPreferences returns the saved settings, or entity.DefaultPreferences when none exist.
	GetPreferences(ctx context.Context, userID string) (*entity.Preferences, error)

	// SavePreferences replaces the user's settings.
	SavePreferences(ctx context.Context, prefs *entity.Preferences) error
}
