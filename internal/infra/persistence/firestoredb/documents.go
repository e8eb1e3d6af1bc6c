// Package firestoredb implements the persistence layer on Cloud Firestore.
package firestoredb

import (
	"time"

	"parceltrack/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// parcelDocument is the stored shape of parcels/{id}.
type parcelDocument struct {
	TrackingNumber        string         `firestore:"trackingNumber"`
	SourceAddress         string         `firestore:"sourceAddress"`
	DestinationAddress    string         `firestore:"destinationAddress"`
	Description           string         `firestore:"description"`
	Status                string         `firestore:"status"`
	CreatedAt             time.Time      `firestore:"createdAt"`
	UpdatedAt             time.Time      `firestore:"updatedAt"`
	EstimatedDeliveryTime *time.Time     `firestore:"estimatedDeliveryTime"`
	CurrentLocation       *latlng.LatLng `firestore:"currentLocation"`
	SenderID              string         `firestore:"senderId"`
	SenderEmail           string         `firestore:"senderEmail"`
	ReceiverID            string         `firestore:"receiverId"`
	ReceiverEmail         string         `firestore:"receiverEmail"`
}

// locationHistoryDocument is the stored shape of location_history/{id}.
type locationHistoryDocument struct {
	ParcelID    string         `firestore:"parcelId"`
	Location    *latlng.LatLng `firestore:"location"`
	Timestamp   time.Time      `firestore:"timestamp"`
	Status      string         `firestore:"status"`
	Description string         `firestore:"description"`
}

// shareDocument is the stored shape of shared_locations/{id}.
type shareDocument struct {
	ParcelID        string         `firestore:"parcelId"`
	SharedBy        string         `firestore:"sharedBy"`
	SharedWith      string         `firestore:"sharedWith"`
	ExpiresAt       time.Time      `firestore:"expiresAt"`
	Location        *latlng.LatLng `firestore:"location"`
	TrackingNumber  string         `firestore:"trackingNumber"`
	CreatedAt       time.Time      `firestore:"createdAt"`
	IsActive        bool           `firestore:"isActive"`
	Permissions     []string       `firestore:"permissions"`
	NotifyOnUpdates bool           `firestore:"notifyOnUpdates"`
}

// userDocument is the stored shape of users/{uid}.
type userDocument struct {
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	Gender      string    `firestore:"gender"`
	PhotoURL    string    `firestore:"photoUrl"`
	FCMToken    string    `firestore:"fcmToken"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// preferencesDocument is the stored shape of user_preferences/{uid}.
type preferencesDocument struct {
	NotificationsEnabled    bool      `firestore:"notificationsEnabled"`
	DarkThemeEnabled        bool      `firestore:"darkThemeEnabled"`
	LocationTrackingEnabled bool      `firestore:"locationTrackingEnabled"`
	UpdatedAt               time.Time `firestore:"updatedAt"`
}

func toLatLng(p entity.GeoPoint) *latlng.LatLng {
	return &latlng.LatLng{Latitude: p.Latitude, Longitude: p.Longitude}
}

func fromLatLng(ll *latlng.LatLng) entity.GeoPoint {
	return entity.GeoPoint{Latitude: ll.GetLatitude(), Longitude: ll.GetLongitude()}
}

func newParcelDocument(p *entity.Parcel) *parcelDocument {
	doc := &parcelDocument{
		TrackingNumber:        p.TrackingNumber,
		SourceAddress:         p.SourceAddress,
		DestinationAddress:    p.DestinationAddress,
		Description:           p.Description,
		Status:                string(p.Status),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		EstimatedDeliveryTime: p.EstimatedDeliveryTime,
		SenderID:              p.SenderID,
		SenderEmail:           p.SenderEmail,
		ReceiverID:            p.ReceiverID,
		ReceiverEmail:         p.ReceiverEmail,
	}
	if p.CurrentLocation != nil {
		doc.CurrentLocation = toLatLng(*p.CurrentLocation)
	}

	return doc
}

func (d *parcelDocument) toEntity(id string) *entity.Parcel {
	parcel := &entity.Parcel{
		ID:                    id,
		TrackingNumber:        d.TrackingNumber,
		SourceAddress:         d.SourceAddress,
		DestinationAddress:    d.DestinationAddress,
		Description:           d.Description,
		Status:                entity.ParcelStatus(d.Status),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
		EstimatedDeliveryTime: d.EstimatedDeliveryTime,
		SenderID:              d.SenderID,
		SenderEmail:           d.SenderEmail,
		ReceiverID:            d.ReceiverID,
		ReceiverEmail:         d.ReceiverEmail,
	}
	if d.CurrentLocation != nil {
		loc := fromLatLng(d.CurrentLocation)
		parcel.CurrentLocation = &loc
	}

	return parcel
}

func newLocationHistoryDocument(e *entity.LocationHistory) *locationHistoryDocument {
	return &locationHistoryDocument{
		ParcelID:    e.ParcelID,
		Location:    toLatLng(e.Location),
		Timestamp:   e.Timestamp,
		Status:      string(e.Status),
		Description: e.Description,
	}
}

func (d *locationHistoryDocument) toEntity(id string) *entity.LocationHistory {
	return &entity.LocationHistory{
		ID:          id,
		ParcelID:    d.ParcelID,
		Location:    fromLatLng(d.Location),
		Timestamp:   d.Timestamp,
		Status:      entity.ParcelStatus(d.Status),
		Description: d.Description,
	}
}

func newShareDocument(s *entity.ShareableLocation) *shareDocument {
	permissions := make([]string, 0, len(s.Permissions))
	for _, p := range s.Permissions {
		permissions = append(permissions, string(p))
	}

	return &shareDocument{
		ParcelID:        s.ParcelID,
		SharedBy:        s.SharedBy,
		SharedWith:      s.SharedWith,
		ExpiresAt:       s.ExpiresAt,
		Location:        toLatLng(s.Location),
		TrackingNumber:  s.TrackingNumber,
		CreatedAt:       s.CreatedAt,
		IsActive:        s.IsActive,
		Permissions:     permissions,
		NotifyOnUpdates: s.NotifyOnUpdates,
	}
}

func (d *shareDocument) toEntity(id string) *entity.ShareableLocation {
	permissions := make([]entity.SharePermission, 0, len(d.Permissions))
	for _, p := range d.Permissions {
		permissions = append(permissions, entity.SharePermission(p))
	}

	return &entity.ShareableLocation{
		ID:              id,
		ParcelID:        d.ParcelID,
		SharedBy:        d.SharedBy,
		SharedWith:      d.SharedWith,
		ExpiresAt:       d.ExpiresAt,
		Location:        fromLatLng(d.Location),
		TrackingNumber:  d.TrackingNumber,
		CreatedAt:       d.CreatedAt,
		IsActive:        d.IsActive,
		Permissions:     permissions,
		NotifyOnUpdates: d.NotifyOnUpdates,
	}
}

func (d *userDocument) toEntity(id string) *entity.User {
	return &entity.User{
		ID:          id,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Gender:      d.Gender,
		PhotoURL:    d.PhotoURL,
		FCMToken:    d.FCMToken,
		CreatedAt:   d.CreatedAt,
	}
}

// decode reads a snapshot into a document struct and converts it with toEntity.
func decode[D any, E any](snap *firestore.DocumentSnapshot, toEntity func(*D, string) E) (E, error) {
	var doc D
	if err := snap.DataTo(&doc); err != nil {
		var zero E

		return zero, err
	}

	return toEntity(&doc, snap.Ref.ID), nil
}
