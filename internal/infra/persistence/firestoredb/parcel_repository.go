package firestoredb

import (
	"context"
	"time"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type parcelRepository struct {
	client *firestore.Client
}

// NewParcelRepository is the constructor for the Firestore parcel repository.
func NewParcelRepository(client *firestore.Client) repository.ParcelRepository {
	return &parcelRepository{client: client}
}

func (repo *parcelRepository) parcels() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionParcels)
}

func toParcel(snap *firestore.DocumentSnapshot) (*entity.Parcel, error) {
	return decode(snap, (*parcelDocument).toEntity)
}

// CreateParcel writes a new document under an auto-generated ID.
func (repo *parcelRepository) CreateParcel(ctx context.Context, parcel *entity.Parcel) error {
	ref := repo.parcels().NewDoc()
	if _, err := ref.Create(ctx, newParcelDocument(parcel)); err != nil {
		return errors.Wrap(err, "failed to create parcel")
	}
	parcel.ID = ref.ID

	return nil
}

func (repo *parcelRepository) FindParcelByID(ctx context.Context, id string) (*entity.Parcel, error) {
	snap, err := repo.parcels().Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, repository.ErrParcelNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get parcel")
	}

	return toParcel(snap)
}

func (repo *parcelRepository) UpdateParcelStatus(ctx context.Context, id string, status entity.ParcelStatus, updatedAt time.Time) error {
	return repo.update(ctx, id, statusUpdates(status, updatedAt))
}

func (repo *parcelRepository) UpdateParcelLocation(ctx context.Context, id string, location entity.GeoPoint, updatedAt time.Time) error {
	return repo.update(ctx, id, locationUpdates(location, updatedAt))
}

func (repo *parcelRepository) ApplyLocationUpdate(
	ctx context.Context,
	id string,
	location entity.GeoPoint,
	status entity.ParcelStatus,
	updatedAt time.Time,
) error {
	return repo.update(ctx, id, append(locationUpdates(location, updatedAt), firestore.Update{Path: "status", Value: string(status)}))
}

func (repo *parcelRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := repo.parcels().Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return repository.ErrParcelNotFound
	}

	return errors.Wrap(err, "failed to update parcel")
}

func statusUpdates(status entity.ParcelStatus, updatedAt time.Time) []firestore.Update {
	return []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: updatedAt},
	}
}

func locationUpdates(location entity.GeoPoint, updatedAt time.Time) []firestore.Update {
	return []firestore.Update{
		{Path: "currentLocation", Value: toLatLng(location)},
		{Path: "updatedAt", Value: updatedAt},
	}
}

func (repo *parcelRepository) WatchParcel(ctx context.Context, id string) <-chan repository.Snapshot[*entity.Parcel] {
	return watchDocument(ctx, repo.parcels().Doc(id), toParcel)
}

func (repo *parcelRepository) WatchParcelsBySender(ctx context.Context, senderID string) <-chan repository.Snapshot[[]*entity.Parcel] {
	return watchQuery(ctx, repo.parcels().Where("senderId", "==", senderID), toParcel)
}

func (repo *parcelRepository) WatchParcelsByReceiver(ctx context.Context, receiverID string) <-chan repository.Snapshot[[]*entity.Parcel] {
	return watchQuery(ctx, repo.parcels().Where("receiverId", "==", receiverID), toParcel)
}
