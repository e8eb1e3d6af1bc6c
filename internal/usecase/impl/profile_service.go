package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "parceltrack/internal/delivery/context"
	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/domain/service"
	"parceltrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	userRepo repository.UserRepository
	storage  service.ObjectStorage
	logger   *slog.Logger
	now      func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Storage  service.ObjectStorage
	Logger   *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		storage:  params.Storage,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// GetProfile returns the caller's user record, creating it from the identity on first access.
func (s *profileService) GetProfile(ctx context.Context) (*entity.User, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, caller.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	user = &entity.User{
		ID:          caller.UID,
		Email:       normalizeEmail(caller.Email),
		DisplayName: caller.DisplayName,
		CreatedAt:   s.now(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return s.reload(ctx, caller.UID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create default profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Created default profile", slog.String("user_id", user.ID))

	return user, nil
}

// UpdateProfile sets display name and gender.
func (s *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("display name is required")
	}

	if err := s.userRepo.UpdateProfile(ctx, user.ID, displayName, strings.TrimSpace(input.Gender)); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	return s.reload(ctx, user.ID)
}

// UploadAvatar stores the picture at profile_pictures/{uid}.jpg and points photoUrl at it.
func (s *profileService) UploadAvatar(ctx context.Context, contentType string, data []byte) (*entity.User, error) {
	user, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}
	if len(data) > constants.MaxAvatarBytes {
		return nil, domainerrors.ErrAvatarTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content type must be an image")
	}

	url, err := s.storage.Put(ctx, constants.AvatarKeyPrefix+user.ID+".jpg", contentType, data)
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WrapMessage(err.Error())
	}

	if err := s.userRepo.UpdatePhotoURL(ctx, user.ID, url); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save photo url")
	}

	return s.reload(ctx, user.ID)
}

func (s *profileService) reload(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	return user, nil
}
