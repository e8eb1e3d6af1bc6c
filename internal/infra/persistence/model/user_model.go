package model

import (
	"time"
)

// UserModel mirrors the 'users' table. ID is the identity provider UID.
type UserModel struct {
	ID          string `gorm:"type:varchar(128);primaryKey"`
	Email       string `gorm:"type:varchar(255);not null;index"`
	DisplayName string `gorm:"type:varchar(100)"`
	Gender      string `gorm:"type:varchar(32)"`
	PhotoURL    string `gorm:"type:text"`
	FCMToken    string `gorm:"column:fcm_token;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserPreferencesModel mirrors the 'user_preferences' table, one row per user.
type UserPreferencesModel struct {
	UserID                  string `gorm:"type:varchar(128);primaryKey"`
	NotificationsEnabled    bool   `gorm:"not null"`
	DarkThemeEnabled        bool   `gorm:"not null"`
	LocationTrackingEnabled bool   `gorm:"not null"`
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferencesModel) TableName() string {
	return "user_preferences"
}

// CredentialModel mirrors the 'user_credentials' table used by the local identity provider.
type CredentialModel struct {
	UID          string `gorm:"column:uid;type:varchar(128);primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "user_credentials"
}
