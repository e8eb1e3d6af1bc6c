package impl

import (
	"context"
	"strings"
	"testing"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	mockRepo "parceltrack/internal/mocks/repository"
	mockSvc "parceltrack/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (*userService, *mockRepo.MockUserRepository, *mockSvc.MockIdentityProvider) {
	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	svc := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Identity: identity,
		Logger:   newDiscardLogger(),
	}).(*userService)
	svc.now = fixedClock

	return svc, userRepo, identity
}

func TestUserService_FindUserByEmail_ExistingUser(t *testing.T) {
	svc, userRepo, identity := createTestUserService(t)
	ctx := context.Background()

	identity.EXPECT().LookupByEmail(ctx, "bob@example.com").Return(&entity.Identity{UID: "u-bob", Email: "bob@example.com"}, nil).Once()
	userRepo.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(&entity.User{ID: "u-bob", Email: "bob@example.com"}, nil)

	id, err := svc.FindUserByEmail(ctx, " BOB@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u-bob", id)
}

func TestUserService_FindUserByEmail_ProvisionsUnknownEmail(t *testing.T) {
	svc, userRepo, identity := createTestUserService(t)
	ctx := context.Background()

	identity.EXPECT().LookupByEmail(ctx, "new@example.com").Return(nil, service.ErrIdentityNotFound)
	identity.EXPECT().CreateIdentity(ctx, "new@example.com", mock.MatchedBy(func(pw string) bool {
		return strings.HasPrefix(pw, "Temp-")
	})).Return(&entity.Identity{UID: "u-new", Email: "new@example.com"}, nil)
	userRepo.EXPECT().CreateUser(ctx, &entity.User{ID: "u-new", Email: "new@example.com", CreatedAt: testNow}).Return(nil)
	identity.EXPECT().SendPasswordReset(ctx, "new@example.com").Return(nil)

	id, err := svc.FindUserByEmail(ctx, "new@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u-new", id)
}

func TestUserService_FindUserByEmail_ProvisioningFailures(t *testing.T) {
	t.Run("identity creation", func(t *testing.T) {
		svc, _, identity := createTestUserService(t)
		ctx := context.Background()

		identity.EXPECT().LookupByEmail(ctx, "new@example.com").Return(nil, service.ErrIdentityNotFound)
		identity.EXPECT().CreateIdentity(ctx, "new@example.com", mock.Anything).Return(nil, errors.New("quota exceeded"))

		_, err := svc.FindUserByEmail(ctx, "new@example.com")
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})

	t.Run("reset email", func(t *testing.T) {
		svc, userRepo, identity := createTestUserService(t)
		ctx := context.Background()

		identity.EXPECT().LookupByEmail(ctx, "new@example.com").Return(nil, service.ErrIdentityNotFound)
		identity.EXPECT().CreateIdentity(ctx, "new@example.com", mock.Anything).Return(&entity.Identity{UID: "u-new"}, nil)
		userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(nil)
		identity.EXPECT().SendPasswordReset(ctx, "new@example.com").Return(errors.New("smtp down"))

		_, err := svc.FindUserByEmail(ctx, "new@example.com")
		assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
	})
}

func TestUserService_FindUserByEmail_CreatesMissingRecord(t *testing.T) {
	svc, userRepo, identity := createTestUserService(t)
	ctx := context.Background()

	identity.EXPECT().LookupByEmail(ctx, "bob@example.com").
		Return(&entity.Identity{UID: "u-bob", Email: "bob@example.com", DisplayName: "Bob"}, nil).Twice()
	userRepo.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().CreateUser(ctx, &entity.User{ID: "u-bob", Email: "bob@example.com", DisplayName: "Bob", CreatedAt: testNow}).Return(nil)

	id, err := svc.FindUserByEmail(ctx, "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u-bob", id)
}

func TestUserService_FindUserByEmail_IdentityVanishes(t *testing.T) {
	svc, userRepo, identity := createTestUserService(t)
	ctx := context.Background()

	identity.EXPECT().LookupByEmail(ctx, "bob@example.com").Return(&entity.Identity{UID: "u-bob"}, nil).Once()
	userRepo.EXPECT().FindUserByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	identity.EXPECT().LookupByEmail(ctx, "bob@example.com").Return(nil, service.ErrIdentityNotFound).Once()

	_, err := svc.FindUserByEmail(ctx, "bob@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_FindUserByEmail_Empty(t *testing.T) {
	svc, _, _ := createTestUserService(t)

	_, err := svc.FindUserByEmail(context.Background(), "   ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_SearchUsers_ShortQueryHitsNoStore(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)

	results, err := svc.SearchUsers(callerContext(), "bo")

	require.NoError(t, err)
	assert.Empty(t, results)
	userRepo.AssertNotCalled(t, "SearchUsersByEmailPrefix", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_SearchUsers_ExcludesCallerAndRanksExactFirst(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)
	ctx := callerContext()

	userRepo.EXPECT().SearchUsersByEmailPrefix(ctx, "ann@x.io", 5).Return([]*entity.User{
		{ID: "u-alice", Email: "ann@x.io.me"},
		{ID: "u-1", Email: "ann@x.io.z"},
		{ID: "u-2", Email: "ANN@x.io"},
		{ID: "u-3", Email: "ann@x.io.a"},
	}, nil)

	results, err := svc.SearchUsers(ctx, "Ann@X.io")

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "u-2", results[0].ID)
	assert.True(t, results[0].IsExactMatch)
	assert.Equal(t, "ann@x.io", results[0].Email)
	assert.Equal(t, "u-3", results[1].ID)
	assert.Equal(t, "u-1", results[2].ID)
	for _, r := range results {
		assert.NotEqual(t, "u-alice", r.ID)
	}
}

func TestUserService_GetUserEmail(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByID(ctx, "u-bob").Return(&entity.User{ID: "u-bob", Email: "bob@example.com"}, nil)
	userRepo.EXPECT().FindUserByID(ctx, "u-none").Return(nil, repository.ErrUserNotFound)

	email, err := svc.GetUserEmail(ctx, "u-bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", email)

	_, err = svc.GetUserEmail(ctx, "u-none")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdatePushToken(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)
	ctx := callerContext()

	userRepo.EXPECT().UpdatePushToken(ctx, "u-alice", "fcm-token").Return(nil)

	require.NoError(t, svc.UpdatePushToken(ctx, "fcm-token"))
	assert.True(t, errors.Is(svc.UpdatePushToken(ctx, ""), domainerrors.ErrValidationFailed))
	assert.True(t, errors.Is(svc.UpdatePushToken(context.Background(), "fcm-token"), domainerrors.ErrUnauthenticated))
}
