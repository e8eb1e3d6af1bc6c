package usecase

import (
	"context"
	"time"

	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"
)

// CreateParcelInput represents the input for creating a parcel
type CreateParcelInput struct {
	TrackingNumber        string     `json:"tracking_number"` // generated when empty
	SourceAddress         string     `json:"source_address" validate:"required"`
	DestinationAddress    string     `json:"destination_address" validate:"required"`
	Description           string     `json:"description"`
	ReceiverEmail         string     `json:"receiver_email" validate:"required,email"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
}

// AddLocationHistoryInput represents a waypoint report for a parcel
type AddLocationHistoryInput struct {
	Location    entity.GeoPoint     `json:"location"`
	Status      entity.ParcelStatus `json:"status" validate:"required"`
	Description string              `json:"description"`
}

// ParcelUsecase defines the parcel lifecycle operations
type ParcelUsecase interface {
	// CreateParcel resolves the receiver, stamps the caller as sender and persists the parcel.
	CreateParcel(ctx context.Context, input *CreateParcelInput) (string, error)

	GetParcel(ctx context.Context, id string) (*entity.Parcel, error)

	// UpdateParcelStatus changes the status and notifies the receiver unless the new status is PENDING.
	UpdateParcelStatus(ctx context.Context, id string, status entity.ParcelStatus) error

	// UpdateParcelLocation moves the parcel without recording history or notifying anyone.
	UpdateParcelLocation(ctx context.Context, id string, location entity.GeoPoint) error

	// AddLocationHistory appends a waypoint and mirrors it onto the parcel atomically.
	AddLocationHistory(ctx context.Context, id string, input *AddLocationHistoryInput) (string, error)

	GetParcelUpdates(ctx context.Context, id string) <-chan repository.Snapshot[*entity.Parcel]
	GetSentParcels(ctx context.Context, userID string) <-chan repository.Snapshot[[]*entity.Parcel]
	GetReceivedParcels(ctx context.Context, userID string) <-chan repository.Snapshot[[]*entity.Parcel]
	GetLocationHistory(ctx context.Context, parcelID string) <-chan repository.Snapshot[[]*entity.LocationHistory]

	// GenerateParcelQRCode renders the parcel's label QR code as PNG.
	GenerateParcelQRCode(ctx context.Context, id string) ([]byte, error)
}
