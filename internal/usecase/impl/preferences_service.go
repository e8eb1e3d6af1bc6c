package impl

import (
	"context"
	"time"

	"parceltrack/internal/domain/entity"
	domainerrors "parceltrack/internal/domain/errors"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/usecase"
)

type preferencesService struct {
	repo repository.PreferencesRepository
	now  func() time.Time
}

// NewPreferencesService creates a new preferences service instance
func NewPreferencesService(repo repository.PreferencesRepository) usecase.PreferencesUsecase {
	return &preferencesService{repo: repo, now: time.Now}
}

func (s *preferencesService) GetPreferences(ctx context.Context) (*entity.Preferences, error) {
	caller, err := requireCaller(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.repo.GetPreferences(ctx, caller.UID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load preferences")
	}

	return prefs, nil
}

// UpdatePreferences applies the non-nil fields of input.
func (s *preferencesService) UpdatePreferences(ctx context.Context, input *usecase.UpdatePreferencesInput) (*entity.Preferences, error) {
	prefs, err := s.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}

	if input.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.DarkThemeEnabled != nil {
		prefs.DarkThemeEnabled = *input.DarkThemeEnabled
	}
	if input.LocationTrackingEnabled != nil {
		prefs.LocationTrackingEnabled = *input.LocationTrackingEnabled
	}
	prefs.UpdatedAt = s.now()

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save preferences")
	}

	return prefs, nil
}
