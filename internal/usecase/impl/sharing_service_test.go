package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	mockRepo "parceltrack/internal/mocks/repository"
	mockSvc "parceltrack/internal/mocks/service"
	mockUsecase "parceltrack/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryShareRepository keeps grants in memory and serves one snapshot per watch.
type memoryShareRepository struct {
	mu     sync.Mutex
	shares map[string]*entity.ShareableLocation
	seq    int
}

func newMemoryShareRepository() *memoryShareRepository {
	return &memoryShareRepository{shares: make(map[string]*entity.ShareableLocation)}
}

func (r *memoryShareRepository) CreateShare(_ context.Context, share *entity.ShareableLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	share.ID = fmt.Sprintf("s-%d", r.seq)
	stored := *share
	r.shares[share.ID] = &stored

	return nil
}

func (r *memoryShareRepository) FindShareByID(_ context.Context, id string) (*entity.ShareableLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	share, ok := r.shares[id]
	if !ok {
		return nil, repository.ErrShareNotFound
	}
	copied := *share

	return &copied, nil
}

func (r *memoryShareRepository) FindActiveShares(_ context.Context, parcelID, granteeID string) ([]*entity.ShareableLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var data []*entity.ShareableLocation
	for _, share := range r.shares {
		if share.ParcelID == parcelID && share.SharedWith == granteeID && share.IsActive {
			copied := *share
			data = append(data, &copied)
		}
	}

	return data, nil
}

func (r *memoryShareRepository) DeactivateShare(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	share, ok := r.shares[id]
	if !ok {
		return repository.ErrShareNotFound
	}
	share.IsActive = false

	return nil
}

func (r *memoryShareRepository) WatchActiveShares(ctx context.Context, granteeID string) <-chan repository.Snapshot[[]*entity.ShareableLocation] {
	r.mu.Lock()
	var data []*entity.ShareableLocation
	for _, share := range r.shares {
		if share.SharedWith == granteeID && share.IsActive {
			copied := *share
			data = append(data, &copied)
		}
	}
	r.mu.Unlock()

	out := make(chan repository.Snapshot[[]*entity.ShareableLocation], 1)
	out <- repository.Snapshot[[]*entity.ShareableLocation]{Data: data}
	go func() {
		<-ctx.Done()
		close(out)
	}()

	return out
}

func (r *memoryShareRepository) get(id string) *entity.ShareableLocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.shares[id]
}

type sharingServiceMocks struct {
	parcelRepo *mockRepo.MockParcelRepository
	users      *mockUsecase.MockUserUsecase
	publisher  *mockSvc.MockEventPublisher
}

func createTestSharingService(t *testing.T, shareRepo repository.ShareRepository) (*sharingService, *sharingServiceMocks) {
	m := &sharingServiceMocks{
		parcelRepo: mockRepo.NewMockParcelRepository(t),
		users:      mockUsecase.NewMockUserUsecase(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	svc := NewSharingService(SharingServiceParams{
		ParcelRepo: m.parcelRepo,
		ShareRepo:  shareRepo,
		Users:      m.users,
		Publisher:  m.publisher,
		Logger:     newDiscardLogger(),
	}).(*sharingService)
	svc.now = fixedClock

	return svc, m
}

func locatedParcel() *entity.Parcel {
	return &entity.Parcel{
		ID:              "p-1",
		TrackingNumber:  "PCLAB12CD34",
		Status:          entity.ParcelStatusInTransit,
		CurrentLocation: &entity.GeoPoint{Latitude: 25.04, Longitude: 121.52},
		SenderID:        "u-alice",
		ReceiverID:      "u-bob",
	}
}


func TestSharingService_ShareLocation_RoundTrip(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, m := createTestSharingService(t, shares)
	ctx := callerContext()

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)
	m.users.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return("u-bob", nil)

	shareID, err := svc.ShareLocation(ctx, "p-1", "bob@example.com", 24)
	require.NoError(t, err)

	stored := shares.get(shareID)
	require.NotNil(t, stored)
	assert.Equal(t, "u-alice", stored.SharedBy)
	assert.Equal(t, testNow.Add(24*time.Hour), stored.ExpiresAt)
	assert.Equal(t, []entity.SharePermission{entity.SharePermissionView}, stored.Permissions)
	assert.True(t, stored.NotifyOnUpdates)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	snap := <-svc.GetSharedLocations(watchCtx, "u-bob")
	require.NoError(t, snap.Err)
	require.Len(t, snap.Data, 1)
	assert.Equal(t, "PCLAB12CD34", snap.Data[0].TrackingNumber)
	assert.Equal(t, entity.GeoPoint{Latitude: 25.04, Longitude: 121.52}, snap.Data[0].Location)
}

func TestSharingService_ShareLocation_DefaultsToOneDay(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, m := createTestSharingService(t, shares)
	ctx := callerContext()

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)
	m.users.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return("u-bob", nil)

	shareID, err := svc.ShareLocation(ctx, "p-1", "bob@example.com", 0)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(24*time.Hour), shares.get(shareID).ExpiresAt)

	_, err = svc.ShareLocation(ctx, "p-1", "bob@example.com", -1)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSharingService_ShareLocation_NoLocation(t *testing.T) {
	svc, m := createTestSharingService(t, newMemoryShareRepository())
	ctx := callerContext()

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(&entity.Parcel{ID: "p-1", SenderID: "u-alice"}, nil)

	_, err := svc.ShareLocation(ctx, "p-1", "bob@example.com", 24)
	assert.True(t, errors.Is(err, domainerrors.ErrNoLocationAvailable))
}

func TestSharingService_ShareLocation_Unauthenticated(t *testing.T) {
	svc, _ := createTestSharingService(t, newMemoryShareRepository())

	_, err := svc.ShareLocation(context.Background(), "p-1", "bob@example.com", 24)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestSharingService_ShareParcelWithMultiple_SkipsUnresolvableRecipient(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, m := createTestSharingService(t, shares)
	ctx := callerContext()

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)
	m.users.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return("u-bob", nil)
	m.users.EXPECT().FindUserByEmail(ctx, "broken@example.com").Return("", domainerrors.ErrUserCreationFailed)
	m.users.EXPECT().FindUserByEmail(ctx, "carol@example.com").Return("u-carol", nil)
	m.publisher.EXPECT().PublishParcelNotification(ctx, mock.MatchedBy(func(e *service.ParcelNotificationEvent) bool {
		return e.Title == "Parcel Shared" &&
			e.Body == "A parcel has been shared with you by alice@example.com" &&
			e.ParcelID == "p-1"
	})).Return(nil).Times(2)

	ids, err := svc.ShareParcelWithMultiple(ctx, "p-1",
		[]string{"bob@example.com", "broken@example.com", "carol@example.com"},
		entity.ShareOptions{Duration: entity.ShareDurationThreeDays, NotifyOnUpdates: true},
	)

	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "u-bob", shares.get(ids[0]).SharedWith)
	assert.Equal(t, "u-carol", shares.get(ids[1]).SharedWith)
	assert.Equal(t, testNow.Add(72*time.Hour), shares.get(ids[0]).ExpiresAt)
	assert.Equal(t, []entity.SharePermission{entity.SharePermissionView}, shares.get(ids[1]).Permissions)
}

func TestSharingService_ShareParcelWithMultiple_WithoutNotifications(t *testing.T) {
	svc, m := createTestSharingService(t, newMemoryShareRepository())
	ctx := callerContext()

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)
	m.users.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return("u-bob", nil)

	ids, err := svc.ShareParcelWithMultiple(ctx, "p-1", []string{"bob@example.com"}, entity.ShareOptions{
		Duration:    entity.ShareDurationOneHour,
		Permissions: []entity.SharePermission{entity.SharePermissionView, entity.SharePermissionUpdateStatus},
	})

	require.NoError(t, err)
	assert.Len(t, ids, 1)
	m.publisher.AssertNotCalled(t, "PublishParcelNotification", mock.Anything, mock.Anything)
}

func TestSharingService_ShareParcelWithMultiple_AllFail(t *testing.T) {
	svc, m := createTestSharingService(t, newMemoryShareRepository())
	ctx := callerContext()

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)
	m.users.EXPECT().FindUserByEmail(ctx, mock.Anything).Return("", domainerrors.ErrUserNotFound)

	_, err := svc.ShareParcelWithMultiple(ctx, "p-1", []string{"a@example.com", "b@example.com"}, entity.DefaultShareOptions())
	assert.True(t, errors.Is(err, domainerrors.ErrShareFailed))
}

func TestSharingService_ShareParcelWithMultiple_InvalidOptions(t *testing.T) {
	svc, _ := createTestSharingService(t, newMemoryShareRepository())
	ctx := callerContext()

	_, err := svc.ShareParcelWithMultiple(ctx, "p-1", []string{"a@example.com"}, entity.ShareOptions{Duration: "FOREVER"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = svc.ShareParcelWithMultiple(ctx, "p-1", []string{"a@example.com"}, entity.ShareOptions{
		Permissions: []entity.SharePermission{"DELETE"},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSharingService_GetSharedLocations_DropsAndDeactivatesExpired(t *testing.T) {
	shareRepo := mockRepo.NewMockShareRepository(t)
	svc, _ := createTestSharingService(t, shareRepo)
	ctx, cancel := context.WithCancel(callerContext())
	defer cancel()

	readTime := testNow
	expired := &entity.ShareableLocation{ID: "s-old", SharedWith: "u-bob", ExpiresAt: readTime.Add(-time.Minute), IsActive: true}
	atBoundary := &entity.ShareableLocation{ID: "s-edge", SharedWith: "u-bob", ExpiresAt: readTime, IsActive: true}
	valid := &entity.ShareableLocation{ID: "s-new", SharedWith: "u-bob", ExpiresAt: readTime.Add(time.Hour), IsActive: true}

	src := make(chan repository.Snapshot[[]*entity.ShareableLocation], 1)
	src <- repository.Snapshot[[]*entity.ShareableLocation]{
		Data:     []*entity.ShareableLocation{expired, atBoundary, valid},
		ReadTime: readTime,
	}
	close(src)

	var deactivated atomic.Int32
	shareRepo.EXPECT().WatchActiveShares(ctx, "u-bob").Return(src)
	shareRepo.EXPECT().DeactivateShare(mock.Anything, "s-old").
		Run(func(context.Context, string) { deactivated.Add(1) }).Return(nil).Once()
	shareRepo.EXPECT().DeactivateShare(mock.Anything, "s-edge").
		Run(func(context.Context, string) { deactivated.Add(1) }).Return(nil).Once()

	snap := <-svc.GetSharedLocations(ctx, "u-bob")

	require.NoError(t, snap.Err)
	require.Len(t, snap.Data, 1)
	assert.Equal(t, "s-new", snap.Data[0].ID)

	// Deactivation continues after the watcher goes away.
	cancel()
	assert.Eventually(t, func() bool { return deactivated.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestSharingService_GetSharedLocations_EmitsBeforeSlowDeactivation(t *testing.T) {
	shareRepo := mockRepo.NewMockShareRepository(t)
	svc, _ := createTestSharingService(t, shareRepo)
	ctx, cancel := context.WithCancel(callerContext())
	defer cancel()

	src := make(chan repository.Snapshot[[]*entity.ShareableLocation], 1)
	src <- repository.Snapshot[[]*entity.ShareableLocation]{
		Data:     []*entity.ShareableLocation{{ID: "s-old", SharedWith: "u-bob", ExpiresAt: testNow.Add(-time.Hour), IsActive: true}},
		ReadTime: testNow,
	}
	close(src)

	release := make(chan struct{})
	done := make(chan struct{})
	shareRepo.EXPECT().WatchActiveShares(ctx, "u-bob").Return(src)
	shareRepo.EXPECT().DeactivateShare(mock.Anything, "s-old").
		RunAndReturn(func(context.Context, string) error {
			<-release
			close(done)

			return nil
		}).Once()

	select {
	case snap := <-svc.GetSharedLocations(ctx, "u-bob"):
		require.NoError(t, snap.Err)
		assert.Empty(t, snap.Data)
	case <-time.After(time.Second):
		t.Fatal("snapshot waited for deactivation")
	}

	close(release)
	<-done
}

func TestSharingService_GetSharedLocations_ForwardsError(t *testing.T) {
	shareRepo := mockRepo.NewMockShareRepository(t)
	svc, _ := createTestSharingService(t, shareRepo)
	ctx, cancel := context.WithCancel(callerContext())
	defer cancel()

	src := make(chan repository.Snapshot[[]*entity.ShareableLocation], 1)
	src <- repository.Snapshot[[]*entity.ShareableLocation]{Err: errors.New("permission denied")}
	close(src)
	shareRepo.EXPECT().WatchActiveShares(ctx, "u-bob").Return(src)

	var got []repository.Snapshot[[]*entity.ShareableLocation]
	for snap := range svc.GetSharedLocations(ctx, "u-bob") {
		got = append(got, snap)
	}

	require.Len(t, got, 1)
	assert.Error(t, got[0].Err)
}

func TestSharingService_StopSharing(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, _ := createTestSharingService(t, shares)
	ctx := callerContext()

	err := svc.StopSharing(ctx, "s-missing")
	assert.True(t, errors.Is(err, domainerrors.ErrShareNotFound))

	_ = shares.CreateShare(ctx, &entity.ShareableLocation{ParcelID: "p-1", SharedBy: "u-alice", SharedWith: "u-bob", IsActive: true})
	require.NoError(t, svc.StopSharing(ctx, "s-1"))
	assert.False(t, shares.get("s-1").IsActive)

	require.NoError(t, svc.StopSharing(ctx, "s-1"))
}

func TestSharingService_StopSharing_Grantee(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, _ := createTestSharingService(t, shares)

	_ = shares.CreateShare(context.Background(), &entity.ShareableLocation{ParcelID: "p-1", SharedBy: "u-alice", SharedWith: "u-bob", IsActive: true})

	require.NoError(t, svc.StopSharing(callerContextAs("u-bob"), "s-1"))
	assert.False(t, shares.get("s-1").IsActive)
}

func TestSharingService_StopSharing_ParcelSender(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, m := createTestSharingService(t, shares)
	ctx := callerContext()

	// Bob reshared Alice's parcel with Carol.
	_ = shares.CreateShare(ctx, &entity.ShareableLocation{ParcelID: "p-1", SharedBy: "u-bob", SharedWith: "u-carol", IsActive: true})
	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)

	require.NoError(t, svc.StopSharing(ctx, "s-1"))
	assert.False(t, shares.get("s-1").IsActive)
}

func TestSharingService_StopSharing_RejectsUnrelatedCaller(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, m := createTestSharingService(t, shares)
	ctx := callerContextAs("u-mallory")

	_ = shares.CreateShare(ctx, &entity.ShareableLocation{ParcelID: "p-1", SharedBy: "u-alice", SharedWith: "u-bob", IsActive: true})
	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)

	err := svc.StopSharing(ctx, "s-1")

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.True(t, shares.get("s-1").IsActive)
}

func TestSharingService_ShareLocation_RejectsUnrelatedCaller(t *testing.T) {
	shares := newMemoryShareRepository()
	svc, m := createTestSharingService(t, shares)
	ctx := callerContextAs("u-mallory")

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)

	_, err := svc.ShareLocation(ctx, "p-1", "mallory@example.com", 24)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.Empty(t, shares.shares)
}

func TestSharingService_Reshare_NeedsShareWithOthers(t *testing.T) {
	tests := []struct {
		name    string
		grant   entity.ShareableLocation
		allowed bool
	}{
		{
			name:    "grant with SHARE_WITH_OTHERS",
			grant:   entity.ShareableLocation{Permissions: []entity.SharePermission{entity.SharePermissionView, entity.SharePermissionShareWithOthers}, ExpiresAt: testNow.Add(time.Hour)},
			allowed: true,
		},
		{
			name:  "view-only grant",
			grant: entity.ShareableLocation{Permissions: []entity.SharePermission{entity.SharePermissionView}, ExpiresAt: testNow.Add(time.Hour)},
		},
		{
			name:  "expired grant",
			grant: entity.ShareableLocation{Permissions: []entity.SharePermission{entity.SharePermissionShareWithOthers}, ExpiresAt: testNow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := newMemoryShareRepository()
			svc, m := createTestSharingService(t, shares)
			ctx := callerContextAs("u-carol")

			grant := tt.grant
			grant.ParcelID, grant.SharedBy, grant.SharedWith, grant.IsActive = "p-1", "u-alice", "u-carol", true
			_ = shares.CreateShare(ctx, &grant)

			m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)
			if tt.allowed {
				m.users.EXPECT().FindUserByEmail(ctx, "dave@example.com").Return("u-dave", nil)
			}

			_, err := svc.ShareLocation(ctx, "p-1", "dave@example.com", 1)

			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			}
		})
	}
}

func TestSharingService_ShareParcelWithMultiple_RejectsUnrelatedCaller(t *testing.T) {
	svc, m := createTestSharingService(t, newMemoryShareRepository())
	ctx := callerContextAs("u-mallory")

	m.parcelRepo.EXPECT().FindParcelByID(ctx, "p-1").Return(locatedParcel(), nil)

	_, err := svc.ShareParcelWithMultiple(ctx, "p-1", []string{"mallory@example.com"}, entity.DefaultShareOptions())

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
