package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShareableLocation_Allows(t *testing.T) {
	viewOnly := &ShareableLocation{Permissions: []SharePermission{SharePermissionView}}
	assert.True(t, viewOnly.Allows(SharePermissionView))
	assert.False(t, viewOnly.Allows(SharePermissionUpdateStatus))

	// Grants written without permissions still let the grantee look.
	legacy := &ShareableLocation{}
	assert.True(t, legacy.Allows(SharePermissionView))

	courier := &ShareableLocation{Permissions: []SharePermission{SharePermissionUpdateLocation}}
	assert.True(t, courier.Allows(SharePermissionUpdateLocation))
	assert.False(t, courier.Allows(SharePermissionShareWithOthers))
}

func TestShareableLocation_ValidAt(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	share := &ShareableLocation{IsActive: true, ExpiresAt: now.Add(time.Minute)}

	assert.True(t, share.ValidAt(now))
	assert.False(t, share.ValidAt(now.Add(time.Minute)))

	share.IsActive = false
	assert.False(t, share.ValidAt(now))
}

func TestAccessParties(t *testing.T) {
	parcel := &Parcel{SenderID: "u-alice", ReceiverID: "u-bob"}
	assert.True(t, parcel.HasParty("u-alice"))
	assert.True(t, parcel.HasParty("u-bob"))
	assert.False(t, parcel.HasParty("u-carol"))
	assert.False(t, (&Parcel{}).HasParty(""))

	share := &ShareableLocation{SharedBy: "u-alice", SharedWith: "u-carol"}
	assert.True(t, share.Involves("u-carol"))
	assert.False(t, share.Involves("u-bob"))
	assert.False(t, (&ShareableLocation{}).Involves(""))
}
