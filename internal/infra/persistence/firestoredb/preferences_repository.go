package firestoredb

import (
	"context"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type preferencesRepository struct {
	client *firestore.Client
}

// NewPreferencesRepository is the constructor for the Firestore preferences repository.
func NewPreferencesRepository(client *firestore.Client) repository.PreferencesRepository {
	return &preferencesRepository{client: client}
}

func (repo *preferencesRepository) GetPreferences(ctx context.Context, userID string) (*entity.Preferences, error) {
	snap, err := repo.client.Collection(constants.CollectionPreferences).Doc(userID).Get(ctx)
	if isNotFound(err) {
		return entity.DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get preferences")
	}

	var doc preferencesDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode preferences")
	}

	return &entity.Preferences{
		UserID:                  userID,
		NotificationsEnabled:    doc.NotificationsEnabled,
		DarkThemeEnabled:        doc.DarkThemeEnabled,
		LocationTrackingEnabled: doc.LocationTrackingEnabled,
		UpdatedAt:               doc.UpdatedAt,
	}, nil
}

func (repo *preferencesRepository) SavePreferences(ctx context.Context, prefs *entity.Preferences) error {
	_, err := repo.client.Collection(constants.CollectionPreferences).Doc(prefs.UserID).Set(ctx, &preferencesDocument{
		NotificationsEnabled:    prefs.NotificationsEnabled,
		DarkThemeEnabled:        prefs.DarkThemeEnabled,
		LocationTrackingEnabled: prefs.LocationTrackingEnabled,
		UpdatedAt:               prefs.UpdatedAt,
	})

	return errors.Wrap(err, "failed to save preferences")
}
