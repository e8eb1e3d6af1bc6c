package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minSearchQueryLength = 3
	maxSearchResults     = 5
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	identity service.IdentityProvider
	logger   *slog.Logger
	now      func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Identity service.IdentityProvider
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		identity: params.Identity,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindUserByEmail resolves an email to a user ID.
// Unknown identities are provisioned with a throwaway password and sent a reset email.
// Known identities without a user record get one created under their UID.
func (srv *userService) FindUserByEmail(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	_, err := srv.identity.LookupByEmail(ctx, email)
	if errors.Is(err, service.ErrIdentityNotFound) {
		return srv.provisionUser(ctx, email)
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "identity lookup failed")
	}

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	// The identity exists but its user record was never written.
	identity, err := srv.identity.LookupByEmail(ctx, email)
	if errors.Is(err, service.ErrIdentityNotFound) {
		return "", domainerrors.ErrUserNotFound.WrapMessage("identity disappeared during lookup")
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "identity lookup failed")
	}

	if err := srv.userRepo.CreateUser(ctx, srv.newUser(identity, email)); err != nil && !errors.Is(err, repository.ErrUserAlreadyExists) {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to create missing user record")
	}

	srv.log(ctx).Info("Created missing user record", slog.String("user_id", identity.UID))

	return identity.UID, nil
}

func (srv *userService) provisionUser(ctx context.Context, email string) (string, error) {
	identity, err := srv.identity.CreateIdentity(ctx, email, temporaryPassword())
	if err != nil {
		srv.log(ctx).Warn("Failed to create identity", slog.String("email", email), slog.Any("error", err))

		return "", domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.CreateUser(ctx, srv.newUser(identity, email)); err != nil {
		return "", domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	if err := srv.identity.SendPasswordReset(ctx, email); err != nil {
		return "", domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Provisioned user from email", slog.String("user_id", identity.UID))

	return identity.UID, nil
}

func (srv *userService) newUser(identity *entity.Identity, email string) *entity.User {
	return &entity.User{
		ID:          identity.UID,
		Email:       email,
		DisplayName: identity.DisplayName,
		CreatedAt:   srv.now(),
	}
}

// temporaryPassword is never shown to anyone; the user sets a real one through the reset email.
func temporaryPassword() string {
	return "Temp-" + uuid.NewString()
}

// SearchUsers runs a case-insensitive email prefix search.
func (srv *userService) SearchUsers(ctx context.Context, query string) ([]*entity.UserSearchResult, error) {
	if utf8.RuneCountInString(query) < minSearchQueryLength {
		return []*entity.UserSearchResult{}, nil
	}

	q := strings.ToLower(query)
	users, err := srv.userRepo.SearchUsersByEmailPrefix(ctx, q, maxSearchResults)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search users")
	}

	var callerID string
	if caller := deliverycontext.GetCaller(ctx); caller != nil {
		callerID = caller.UID
	}

	results := make([]*entity.UserSearchResult, 0, len(users))
	for _, user := range users {
		if user.ID == callerID {
			continue
		}
		email := strings.ToLower(user.Email)
		results = append(results, &entity.UserSearchResult{
			ID:           user.ID,
			Email:        email,
			DisplayName:  user.DisplayName,
			IsExactMatch: email == q,
		})
	}

	slices.SortStableFunc(results, func(a, b *entity.UserSearchResult) int {
		if a.IsExactMatch != b.IsExactMatch {
			if a.IsExactMatch {
				return -1
			}

			return 1
		}

		return strings.Compare(a.Email, b.Email)
	})

	return results, nil
}

// GetUserEmail returns the email of a user record.
func (srv *userService) GetUserEmail(ctx context.Context, userID string) (string, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrUserNotFound
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user.Email, nil
}

// UpdatePushToken stores the caller's FCM token.
func (srv *userService) UpdatePushToken(ctx context.Context, token string) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(token) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("token is required")
	}

	err = srv.userRepo.UpdatePushToken(ctx, caller.UID, token)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update push token")
	}

	return nil
}
