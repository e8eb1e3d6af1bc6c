package firestoredb

import (
	"context"

	"parceltrack/internal/domain/constants"
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type locationHistoryRepository struct {
	client *firestore.Client
}

// NewLocationHistoryRepository is the constructor for the Firestore location history repository.
func NewLocationHistoryRepository(client *firestore.Client) repository.LocationHistoryRepository {
	return &locationHistoryRepository{client: client}
}

func toLocationHistory(snap *firestore.DocumentSnapshot) (*entity.LocationHistory, error) {
	return decode(snap, (*locationHistoryDocument).toEntity)
}

// CreateLocationHistory appends an entry outside of a transaction.
func (repo *locationHistoryRepository) CreateLocationHistory(ctx context.Context, entry *entity.LocationHistory) error {
	ref := repo.client.Collection(constants.CollectionLocationHistory).NewDoc()
	if _, err := ref.Create(ctx, newLocationHistoryDocument(entry)); err != nil {
		return errors.Wrap(err, "failed to create location history")
	}
	entry.ID = ref.ID

	return nil
}

// WatchLocationHistory requires the composite index (parcelId ASC, timestamp DESC).
func (repo *locationHistoryRepository) WatchLocationHistory(ctx context.Context, parcelID string) <-chan repository.Snapshot[[]*entity.LocationHistory] {
	q := repo.client.Collection(constants.CollectionLocationHistory).
		Where("parcelId", "==", parcelID).
		OrderBy("timestamp", firestore.Desc)

	return watchQuery(ctx, q, toLocationHistory)
}
