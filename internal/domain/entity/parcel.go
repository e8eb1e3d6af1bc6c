// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// ParcelStatus is the lifecycle state of a parcel.
type ParcelStatus string

const (
	ParcelStatusPending   ParcelStatus = "PENDING"
	ParcelStatusPickedUp  ParcelStatus = "PICKED_UP"
	ParcelStatusInTransit ParcelStatus = "IN_TRANSIT"
	ParcelStatusDelivered ParcelStatus = "DELIVERED"
	ParcelStatusCancelled ParcelStatus = "CANCELLED"
)

var parcelStatuses = []ParcelStatus{
	ParcelStatusPending,
	ParcelStatusPickedUp,
	ParcelStatusInTransit,
	ParcelStatusDelivered,
	ParcelStatusCancelled,
}

// IsValid reports whether s is a known status.
func (s ParcelStatus) IsValid() bool {
	return slices.Contains(parcelStatuses, s)
}

// StatusNotification is the push message sent to a receiver on a status change.
type StatusNotification struct {
	Title string
	Body  string
}

var statusNotifications = map[ParcelStatus]StatusNotification{
	ParcelStatusPickedUp:  {Title: "Parcel Picked Up", Body: "Your parcel has been picked up"},
	ParcelStatusInTransit: {Title: "Parcel In Transit", Body: "Your parcel is on its way"},
	ParcelStatusDelivered: {Title: "Parcel Delivered", Body: "Your parcel has been delivered"},
	ParcelStatusCancelled: {Title: "Parcel Cancelled", Body: "Your parcel has been cancelled"},
}

// Notification returns the receiver notification for a transition into s.
// PENDING has none.
func (s ParcelStatus) Notification() (StatusNotification, bool) {
	n, ok := statusNotifications[s]

	return n, ok
}

// Parcel represents a shipment between a sender and a receiver.
type Parcel struct {
	ID                    string       `json:"id"`                                // Document ID.
	TrackingNumber        string       `json:"tracking_number"`                   // Human-facing tracking number, e.g. PCL7K2M9QXA.
	SourceAddress         string       `json:"source_address"`                    // Pickup address.
	DestinationAddress    string       `json:"destination_address"`               // Delivery address.
	Description           string       `json:"description"`                       // Free-text contents description.
	Status                ParcelStatus `json:"status"`                            // Current lifecycle state.
	CreatedAt             time.Time    `json:"created_at"`                        // When the sender submitted the parcel.
	UpdatedAt             time.Time    `json:"updated_at"`                        // Last status or location change.
	EstimatedDeliveryTime *time.Time   `json:"estimated_delivery_time,omitempty"` // Optional ETA.
	CurrentLocation       *GeoPoint    `json:"current_location,omitempty"`        // Last known position, nil until first reported.
	SenderID              string       `json:"sender_id"`                         // User ID of the creator.
	SenderEmail           string       `json:"sender_email"`                      // Email of the creator.
	ReceiverID            string       `json:"receiver_id"`                       // Resolved user ID of the receiver.
	ReceiverEmail         string       `json:"receiver_email"`                    // Email the sender addressed the parcel to.
}

// HasParty reports whether uid is the parcel's sender or receiver.
func (p *Parcel) HasParty(uid string) bool {
	return uid != "" && (p.SenderID == uid || p.ReceiverID == uid)
}

// LocationHistory is one recorded waypoint of a parcel. Entries are never modified.
type LocationHistory struct {
	ID          string       `json:"id"`
	ParcelID    string       `json:"parcel_id"`
	Location    GeoPoint     `json:"location"`
	Timestamp   time.Time    `json:"timestamp"`
	Status      ParcelStatus `json:"status"`      // Parcel status at the time of the waypoint.
	Description string       `json:"description"` // e.g. "Arrived at sorting facility".
}
