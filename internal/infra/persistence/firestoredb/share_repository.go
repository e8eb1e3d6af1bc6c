package firestoredb

import (
	"context"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type shareRepository struct {
	client *firestore.Client
}

// NewShareRepository is the constructor for the Firestore share repository.
func NewShareRepository(client *firestore.Client) repository.ShareRepository {
	return &shareRepository{client: client}
}

func (repo *shareRepository) shares() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionSharedLocations)
}

func toShare(snap *firestore.DocumentSnapshot) (*entity.ShareableLocation, error) {
	return decode(snap, (*shareDocument).toEntity)
}

func (repo *shareRepository) CreateShare(ctx context.Context, share *entity.ShareableLocation) error {
	ref := repo.shares().NewDoc()
	if _, err := ref.Create(ctx, newShareDocument(share)); err != nil {
		return errors.Wrap(err, "failed to create shared location")
	}
	share.ID = ref.ID

	return nil
}

func (repo *shareRepository) FindShareByID(ctx context.Context, id string) (*entity.ShareableLocation, error) {
	snap, err := repo.shares().Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, repository.ErrShareNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shared location")
	}

	return toShare(snap)
}

func (repo *shareRepository) FindActiveShares(ctx context.Context, parcelID, granteeID string) ([]*entity.ShareableLocation, error) {
	q := repo.shares().
		Where("parcelId", "==", parcelID).
		Where("sharedWith", "==", granteeID).
		Where("isActive", "==", true)

	shares, err := convertAll(q.Documents(ctx), toShare)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parcel grants")
	}

	return shares, nil
}

func (repo *shareRepository) DeactivateShare(ctx context.Context, id string) error {
	_, err := repo.shares().Doc(id).Update(ctx, []firestore.Update{{Path: "isActive", Value: false}})
	if isNotFound(err) {
		return repository.ErrShareNotFound
	}

	return errors.Wrap(err, "failed to deactivate shared location")
}

func (repo *shareRepository) WatchActiveShares(ctx context.Context, granteeID string) <-chan repository.Snapshot[[]*entity.ShareableLocation] {
	q := repo.shares().
		Where("sharedWith", "==", granteeID).
		Where("isActive", "==", true)

	return watchQuery(ctx, q, toShare)
}
