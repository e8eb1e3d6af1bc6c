package entity

// ParcelNotification is a push message addressed to one user about one parcel.
type ParcelNotification struct {
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ParcelID string `json:"parcel_id"`
}

// NotificationResult is what the notification function returns to callers.
type NotificationResult struct {
	Success bool `json:"success"`
	// Skipped is set when the recipient disabled notifications.
	Skipped bool `json:"skipped,omitempty"`
}
