package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		tn, err := NewTrackingNumber()
		require.NoError(t, err)
		assert.True(t, IsTrackingNumber(tn), tn)
		seen[tn] = struct{}{}
	}
	assert.Greater(t, len(seen), 45)
}

func TestParcelStatusNotification(t *testing.T) {
	_, ok := ParcelStatusPending.Notification()
	assert.False(t, ok)

	n, ok := ParcelStatusDelivered.Notification()
	require.True(t, ok)
	assert.Equal(t, "Parcel Delivered", n.Title)
	assert.Equal(t, "Your parcel has been delivered", n.Body)

	assert.False(t, ParcelStatus("LOST").IsValid())
}

func TestShareDurationHours(t *testing.T) {
	h, ok := ShareDurationThreeDays.Hours()
	require.True(t, ok)
	assert.Equal(t, 72, h)

	_, ok = ShareDuration("FOREVER").Hours()
	assert.False(t, ok)
}

func TestShareableLocationExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	share := &ShareableLocation{ExpiresAt: now}

	assert.True(t, share.ExpiredAt(now))
	assert.False(t, share.ExpiredAt(now.Add(-time.Second)))
	assert.True(t, (&ShareableLocation{}).ExpiredAt(now))
}
