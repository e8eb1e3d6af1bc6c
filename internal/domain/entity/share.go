package entity

import (
	"slices"
	"time"
)

// SharePermission is a capability granted with a shared location.
type SharePermission string

const (
	SharePermissionView            SharePermission = "VIEW"
	SharePermissionUpdateStatus    SharePermission = "UPDATE_STATUS"
	SharePermissionUpdateLocation  SharePermission = "UPDATE_LOCATION"
	SharePermissionShareWithOthers SharePermission = "SHARE_WITH_OTHERS"
)

// IsValid reports whether p is a known permission.
func (p SharePermission) IsValid() bool {
	switch p {
	case SharePermissionView, SharePermissionUpdateStatus, SharePermissionUpdateLocation, SharePermissionShareWithOthers:
		return true
	}

	return false
}

// ShareDuration is how long a share grant stays valid.
type ShareDuration string

const (
	ShareDurationOneHour     ShareDuration = "ONE_HOUR"
	ShareDurationTwelveHours ShareDuration = "TWELVE_HOURS"
	ShareDurationOneDay      ShareDuration = "ONE_DAY"
	ShareDurationThreeDays   ShareDuration = "THREE_DAYS"
	ShareDurationOneWeek     ShareDuration = "ONE_WEEK"
)

var shareDurationHours = map[ShareDuration]int{
	ShareDurationOneHour:     1,
	ShareDurationTwelveHours: 12,
	ShareDurationOneDay:      24,
	ShareDurationThreeDays:   72,
	ShareDurationOneWeek:     168,
}

// Hours returns the grant length in hours, or false for an unknown duration.
func (d ShareDuration) Hours() (int, bool) {
	h, ok := shareDurationHours[d]

	return h, ok
}

// ShareOptions configures a multi-recipient share.
type ShareOptions struct {
	Duration        ShareDuration     `json:"duration"`
	Permissions     []SharePermission `json:"permissions"`
	NotifyOnUpdates bool              `json:"notify_on_updates"`
}

// DefaultShareOptions grants VIEW for one day and notifies recipients.
func DefaultShareOptions() ShareOptions {
	return ShareOptions{
		Duration:        ShareDurationOneDay,
		Permissions:     []SharePermission{SharePermissionView},
		NotifyOnUpdates: true,
	}
}

// ShareableLocation is a time-boxed grant letting another user see a parcel's location.
// Location is a snapshot taken when the grant was created.
type ShareableLocation struct {
	ID              string            `json:"id"`
	ParcelID        string            `json:"parcel_id"`
	SharedBy        string            `json:"shared_by"`   // Granter user ID.
	SharedWith      string            `json:"shared_with"` // Grantee user ID.
	ExpiresAt       time.Time         `json:"expires_at"`
	Location        GeoPoint          `json:"location"`
	TrackingNumber  string            `json:"tracking_number"`
	CreatedAt       time.Time         `json:"created_at"`
	IsActive        bool              `json:"is_active"`
	Permissions     []SharePermission `json:"permissions"`
	NotifyOnUpdates bool              `json:"notify_on_updates"`
}

// ExpiredAt reports whether the grant is no longer valid at t.
func (s *ShareableLocation) ExpiredAt(t time.Time) bool {
	return !s.ExpiresAt.After(t)
}

// Allows reports whether the grant carries p. Every grant implies VIEW.
func (s *ShareableLocation) Allows(p SharePermission) bool {
	return p == SharePermissionView || slices.Contains(s.Permissions, p)
}

// ValidAt reports whether the grant is active and unexpired at t.
func (s *ShareableLocation) ValidAt(t time.Time) bool {
	return s.IsActive && !s.ExpiredAt(t)
}

// Involves reports whether uid granted or received the grant.
func (s *ShareableLocation) Involves(uid string) bool {
	return uid != "" && (s.SharedBy == uid || s.SharedWith == uid)
}
