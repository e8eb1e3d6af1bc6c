package postgres

import (
	"context"
	"time"

	"parceltrack/config"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type locationHistoryRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewLocationHistoryRepository is the constructor for locationHistoryRepository.
func NewLocationHistoryRepository(db *gorm.DB, cfg *config.Config) repository.LocationHistoryRepository {
	return &locationHistoryRepository{db: db, pollInterval: cfg.Store.PollInterval}
}

func (repo *locationHistoryRepository) CreateLocationHistory(ctx context.Context, entry *entity.LocationHistory) error {
	entryM := &model.LocationHistoryModel{
		ID:          uuid.NewString(),
		ParcelID:    entry.ParcelID,
		Latitude:    entry.Location.Latitude,
		Longitude:   entry.Location.Longitude,
		Timestamp:   entry.Timestamp,
		Status:      string(entry.Status),
		Description: entry.Description,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrParcelNotFound
		}

		return errors.Wrap(err, "failed to create location history")
	}
	entry.ID = entryM.ID

	return nil
}

// WatchLocationHistory polls a parcel's waypoints, newest first.
func (repo *locationHistoryRepository) WatchLocationHistory(ctx context.Context, parcelID string) <-chan repository.Snapshot[[]*entity.LocationHistory] {
	return poll(ctx, repo.pollInterval, func(ctx context.Context) ([]*entity.LocationHistory, error) {
		entries := []*entity.LocationHistory{}
		if !isUUID(parcelID) {
			return entries, nil
		}

		var entryModels []*model.LocationHistoryModel
		err := repo.db.WithContext(ctx).
			Where("parcel_id = ?", parcelID).
			Order("timestamp DESC").
			Find(&entryModels).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to list location history")
		}

		for _, entryM := range entryModels {
			entries = append(entries, toLocationHistoryDomain(entryM))
		}

		return entries, nil
	})
}
