package model

import (
	"time"
)

// SharedLocationModel mirrors the 'shared_locations' table.
// Permissions is stored as a JSON array of permission names.
type SharedLocationModel struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	ParcelID        string    `gorm:"type:uuid;not null"`
	SharedBy        string    `gorm:"type:varchar(128);not null"`
	SharedWith      string    `gorm:"type:varchar(128);not null;index:idx_shared_locations_grantee"`
	ExpiresAt       time.Time `gorm:"not null"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	TrackingNumber  string    `gorm:"type:varchar(32)"`
	CreatedAt       time.Time `gorm:"not null"`
	IsActive        bool      `gorm:"not null;index:idx_shared_locations_grantee"`
	Permissions     []string  `gorm:"type:jsonb;serializer:json"`
	NotifyOnUpdates bool      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SharedLocationModel) TableName() string {
	return "shared_locations"
}
