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

// parcelRepository implements repository.ParcelRepository using GORM.
type parcelRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewParcelRepository is the constructor for parcelRepository.
func NewParcelRepository(db *gorm.DB, cfg *config.Config) repository.ParcelRepository {
	return &parcelRepository{db: db, pollInterval: cfg.Store.PollInterval}
}

// CreateParcel inserts a parcel under a fresh UUID.
func (repo *parcelRepository) CreateParcel(ctx context.Context, parcel *entity.Parcel) error {
	parcelM := fromParcelDomain(parcel)
	parcelM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(parcelM).Error; err != nil {
		return errors.Wrap(err, "failed to create parcel")
	}
	parcel.ID = parcelM.ID

	return nil
}

// FindParcelByID retrieves a single parcel.
func (repo *parcelRepository) FindParcelByID(ctx context.Context, id string) (*entity.Parcel, error) {
	parcelM, err := repo.findParcel(repo.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return toParcelDomain(parcelM), nil
}

func (repo *parcelRepository) findParcel(db *gorm.DB, id string) (*model.ParcelModel, error) {
	if !isUUID(id) {
		return nil, repository.ErrParcelNotFound
	}

	var parcelM model.ParcelModel
	if err := db.Where("id = ?", id).First(&parcelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParcelNotFound
		}

		return nil, errors.Wrap(err, "failed to find parcel by id")
	}

	return &parcelM, nil
}

func (repo *parcelRepository) UpdateParcelStatus(ctx context.Context, id string, status entity.ParcelStatus, updatedAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"status":     string(status),
		"updated_at": updatedAt,
	})
}

func (repo *parcelRepository) UpdateParcelLocation(ctx context.Context, id string, location entity.GeoPoint, updatedAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"current_latitude":  location.Latitude,
		"current_longitude": location.Longitude,
		"updated_at":        updatedAt,
	})
}

func (repo *parcelRepository) ApplyLocationUpdate(
	ctx context.Context,
	id string,
	location entity.GeoPoint,
	status entity.ParcelStatus,
	updatedAt time.Time,
) error {
	return repo.update(ctx, id, map[string]any{
		"current_latitude":  location.Latitude,
		"current_longitude": location.Longitude,
		"status":            string(status),
		"updated_at":        updatedAt,
	})
}

func (repo *parcelRepository) update(ctx context.Context, id string, columns map[string]any) error {
	if !isUUID(id) {
		return repository.ErrParcelNotFound
	}

	result := repo.db.WithContext(ctx).Model(&model.ParcelModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update parcel")
	}
	if result.RowsAffected == 0 {
		return repository.ErrParcelNotFound
	}

	return nil
}

// WatchParcel polls the parcel row; nothing is emitted while it does not exist.
func (repo *parcelRepository) WatchParcel(ctx context.Context, id string) <-chan repository.Snapshot[*entity.Parcel] {
	return poll(ctx, repo.pollInterval, func(ctx context.Context) (*entity.Parcel, error) {
		parcel, err := repo.FindParcelByID(ctx, id)
		if errors.Is(err, repository.ErrParcelNotFound) {
			return nil, errNoSnapshot
		}

		return parcel, err
	})
}

func (repo *parcelRepository) WatchParcelsBySender(ctx context.Context, senderID string) <-chan repository.Snapshot[[]*entity.Parcel] {
	return poll(ctx, repo.pollInterval, func(ctx context.Context) ([]*entity.Parcel, error) {
		return repo.listParcels(ctx, "sender_id = ?", senderID)
	})
}

func (repo *parcelRepository) WatchParcelsByReceiver(ctx context.Context, receiverID string) <-chan repository.Snapshot[[]*entity.Parcel] {
	return poll(ctx, repo.pollInterval, func(ctx context.Context) ([]*entity.Parcel, error) {
		return repo.listParcels(ctx, "receiver_id = ?", receiverID)
	})
}

func (repo *parcelRepository) listParcels(ctx context.Context, where string, arg string) ([]*entity.Parcel, error) {
	var parcelModels []*model.ParcelModel
	if err := repo.db.WithContext(ctx).Where(where, arg).Order("created_at DESC").Find(&parcelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list parcels")
	}

	parcels := make([]*entity.Parcel, 0, len(parcelModels))
	for _, parcelM := range parcelModels {
		parcels = append(parcels, toParcelDomain(parcelM))
	}

	return parcels, nil
}
