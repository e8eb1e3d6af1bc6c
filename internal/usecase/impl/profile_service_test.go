package impl

import (
	"context"
	"testing"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	mockRepo "parceltrack/internal/mocks/repository"
	mockSvc "parceltrack/internal/mocks/service"
	"parceltrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (*profileService, *mockRepo.MockUserRepository, *mockSvc.MockObjectStorage) {
	userRepo := mockRepo.NewMockUserRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Storage:  storage,
		Logger:   newDiscardLogger(),
	}).(*profileService)
	svc.now = fixedClock

	return svc, userRepo, storage
}

func TestProfileService_GetProfile_CreatesDefaultOnFirstAccess(t *testing.T) {
	svc, userRepo, _ := createTestProfileService(t)
	ctx := callerContext()

	want := &entity.User{ID: "u-alice", Email: "alice@example.com", DisplayName: "Alice", CreatedAt: testNow}
	userRepo.EXPECT().FindUserByID(ctx, "u-alice").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().CreateUser(ctx, want).Return(nil)

	user, err := svc.GetProfile(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, user)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc, userRepo, _ := createTestProfileService(t)
	ctx := callerContext()

	userRepo.EXPECT().FindUserByID(ctx, "u-alice").Return(&entity.User{ID: "u-alice", DisplayName: "Alice"}, nil).Once()
	userRepo.EXPECT().UpdateProfile(ctx, "u-alice", "Alice W.", "female").Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "u-alice").Return(&entity.User{ID: "u-alice", DisplayName: "Alice W.", Gender: "female"}, nil).Once()

	user, err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{DisplayName: " Alice W. ", Gender: "female"})

	require.NoError(t, err)
	assert.Equal(t, "Alice W.", user.DisplayName)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	svc, userRepo, storage := createTestProfileService(t)
	ctx := callerContext()
	img := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	userRepo.EXPECT().FindUserByID(ctx, "u-alice").Return(&entity.User{ID: "u-alice"}, nil).Once()
	storage.EXPECT().Put(ctx, "profile_pictures/u-alice.jpg", "image/jpeg", img).
		Return("https://cdn.example.com/profile_pictures/u-alice.jpg", nil)
	userRepo.EXPECT().UpdatePhotoURL(ctx, "u-alice", "https://cdn.example.com/profile_pictures/u-alice.jpg").Return(nil)
	userRepo.EXPECT().FindUserByID(ctx, "u-alice").
		Return(&entity.User{ID: "u-alice", PhotoURL: "https://cdn.example.com/profile_pictures/u-alice.jpg"}, nil).Once()

	user, err := svc.UploadAvatar(ctx, "image/jpeg", img)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile_pictures/u-alice.jpg", user.PhotoURL)
}

func TestProfileService_UploadAvatar_Rejects(t *testing.T) {
	svc, userRepo, _ := createTestProfileService(t)
	ctx := callerContext()

	userRepo.EXPECT().FindUserByID(ctx, "u-alice").Return(&entity.User{ID: "u-alice"}, nil)

	_, err := svc.UploadAvatar(ctx, "image/png", make([]byte, constants.MaxAvatarBytes+1))
	assert.True(t, errors.Is(err, domainerrors.ErrAvatarTooLarge))

	_, err = svc.UploadAvatar(ctx, "application/pdf", []byte("%PDF"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = svc.UploadAvatar(ctx, "image/png", nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPreferencesService_UpdatePreferences_PartialUpdate(t *testing.T) {
	repo := mockRepo.NewMockPreferencesRepository(t)
	svc := NewPreferencesService(repo).(*preferencesService)
	svc.now = fixedClock
	ctx := callerContext()

	repo.EXPECT().GetPreferences(ctx, "u-alice").Return(entity.DefaultPreferences("u-alice"), nil)
	repo.EXPECT().SavePreferences(ctx, &entity.Preferences{
		UserID:                  "u-alice",
		NotificationsEnabled:    true,
		DarkThemeEnabled:        true,
		LocationTrackingEnabled: true,
		UpdatedAt:               testNow,
	}).Return(nil)

	dark := true
	prefs, err := svc.UpdatePreferences(ctx, &usecase.UpdatePreferencesInput{DarkThemeEnabled: &dark})

	require.NoError(t, err)
	assert.True(t, prefs.DarkThemeEnabled)
	assert.True(t, prefs.NotificationsEnabled)
}

func TestPreferencesService_Unauthenticated(t *testing.T) {
	svc := NewPreferencesService(mockRepo.NewMockPreferencesRepository(t))

	_, err := svc.GetPreferences(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
