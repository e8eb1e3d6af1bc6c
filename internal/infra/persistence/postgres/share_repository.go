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

type shareRepository struct {
	db           *gorm.DB
	pollInterval time.Duration
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB, cfg *config.Config) repository.ShareRepository {
	return &shareRepository{db: db, pollInterval: cfg.Store.PollInterval}
}

func (repo *shareRepository) CreateShare(ctx context.Context, share *entity.ShareableLocation) error {
	shareM := fromShareDomain(share)
	shareM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(shareM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrParcelNotFound
		}

		return errors.Wrap(err, "failed to create shared location")
	}
	share.ID = shareM.ID

	return nil
}

func (repo *shareRepository) FindShareByID(ctx context.Context, id string) (*entity.ShareableLocation, error) {
	if !isUUID(id) {
		return nil, repository.ErrShareNotFound
	}

	var shareM model.SharedLocationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find shared location")
	}

	return toShareDomain(&shareM), nil
}

func (repo *shareRepository) FindActiveShares(ctx context.Context, parcelID, granteeID string) ([]*entity.ShareableLocation, error) {
	if !isUUID(parcelID) {
		return []*entity.ShareableLocation{}, nil
	}

	var shareModels []*model.SharedLocationModel
	err := repo.db.WithContext(ctx).
		Where("parcel_id = ? AND shared_with = ? AND is_active = ?", parcelID, granteeID, true).
		Find(&shareModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parcel grants")
	}

	return toShareDomains(shareModels), nil
}

// DeactivateShare clears is_active. The row must exist; its current state does not matter.
func (repo *shareRepository) DeactivateShare(ctx context.Context, id string) error {
	if !isUUID(id) {
		return repository.ErrShareNotFound
	}

	// Postgres reports matched rows, so an already inactive grant still counts.
	result := repo.db.WithContext(ctx).
		Model(&model.SharedLocationModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate shared location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShareNotFound
	}

	return nil
}

func (repo *shareRepository) WatchActiveShares(ctx context.Context, granteeID string) <-chan repository.Snapshot[[]*entity.ShareableLocation] {
	return poll(ctx, repo.pollInterval, func(ctx context.Context) ([]*entity.ShareableLocation, error) {
		var shareModels []*model.SharedLocationModel
		err := repo.db.WithContext(ctx).
			Where("shared_with = ? AND is_active = ?", granteeID, true).
			Order("created_at DESC").
			Find(&shareModels).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to list shared locations")
		}

		return toShareDomains(shareModels), nil
	})
}

func toShareDomains(shareModels []*model.SharedLocationModel) []*entity.ShareableLocation {
	shares := make([]*entity.ShareableLocation, 0, len(shareModels))
	for _, shareM := range shareModels {
		shares = append(shares, toShareDomain(shareM))
	}

	return shares
}
