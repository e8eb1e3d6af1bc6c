package entity

import (
	"time"
)

// User is an account's profile record. ID equals the identity provider UID.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"` // Always lower-case.
	DisplayName string    `json:"display_name"`
	Gender      string    `json:"gender"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	FCMToken    string    `json:"-"` // Push token of the user's latest device.
	CreatedAt   time.Time `json:"created_at"`
}

// UserSearchResult is one hit of an email prefix search.
type UserSearchResult struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name,omitempty"`
	IsExactMatch bool   `json:"is_exact_match"`
}

// Identity is an account known to the authentication provider.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// Caller is the authenticated principal of a request.
type Caller struct {
	UID         string
	Email       string
	DisplayName string
}

// Preferences are the per-user application settings.
type Preferences struct {
	UserID                  string    `json:"-"`
	NotificationsEnabled    bool      `json:"notifications_enabled"`
	DarkThemeEnabled        bool      `json:"dark_theme_enabled"`
	LocationTrackingEnabled bool      `json:"location_tracking_enabled"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DefaultPreferences returns the settings of a user who never saved any.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:                  userID,
		NotificationsEnabled:    true,
		DarkThemeEnabled:        false,
		LocationTrackingEnabled: true,
	}
}

// Credential is a locally stored email/password identity.
type Credential struct {
	UID          string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
