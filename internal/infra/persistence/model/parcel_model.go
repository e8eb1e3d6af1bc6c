package model

import (
	"time"
)

// ParcelModel mirrors the 'parcels' table. IDs are UUIDs generated by the application.
type ParcelModel struct {
	ID                    string    `gorm:"type:uuid;primaryKey"`
	TrackingNumber        string    `gorm:"type:varchar(32);not null;index"`
	SourceAddress         string    `gorm:"type:text"`
	DestinationAddress    string    `gorm:"type:text"`
	Description           string    `gorm:"type:text"`
	Status                string    `gorm:"type:varchar(20);not null"`
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
	EstimatedDeliveryTime *time.Time
	CurrentLatitude       *float64
	CurrentLongitude      *float64
	SenderID              string `gorm:"type:varchar(128);not null;index"`
	SenderEmail           string `gorm:"type:varchar(255)"`
	ReceiverID            string `gorm:"type:varchar(128);not null;index"`
	ReceiverEmail         string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ParcelModel) TableName() string {
	return "parcels"
}

// LocationHistoryModel mirrors the append-only 'location_history' table.
type LocationHistoryModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	ParcelID    string    `gorm:"type:uuid;not null;index:idx_location_history_parcel_ts"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Timestamp   time.Time `gorm:"not null;index:idx_location_history_parcel_ts"`
	Status      string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (LocationHistoryModel) TableName() string {
	return "location_history"
}
