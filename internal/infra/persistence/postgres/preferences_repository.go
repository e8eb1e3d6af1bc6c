package postgres

import (
	"context"

	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.PreferencesRepository {
	return &preferencesRepository{db: db}
}

func (repo *preferencesRepository) GetPreferences(ctx context.Context, userID string) (*entity.Preferences, error) {
	var prefsM model.UserPreferencesModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefsM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// SavePreferences upserts the user's row.
func (repo *preferencesRepository) SavePreferences(ctx context.Context, prefs *entity.Preferences) error {
	prefsM := &model.UserPreferencesModel{
		UserID:                  prefs.UserID,
		NotificationsEnabled:    prefs.NotificationsEnabled,
		DarkThemeEnabled:        prefs.DarkThemeEnabled,
		LocationTrackingEnabled: prefs.LocationTrackingEnabled,
		UpdatedAt:               prefs.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(prefsM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save preferences")
	}

	return nil
}
