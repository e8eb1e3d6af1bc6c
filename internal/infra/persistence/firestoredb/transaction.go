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

// transactionManager runs units of work in Firestore transactions.
// Firestore requires every read of a transaction to happen before its first write.
type transactionManager struct {
	client *firestore.Client
}

// NewTransactionManager is the constructor for the Firestore transaction manager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &transactionManager{client: client}
}

// Execute runs fn in a transaction. Firestore may run fn more than once on contention.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&txFactory{client: tm.client, tx: tx})
	})
}

type txFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (f *txFactory) NewParcelWriter() repository.ParcelWriter {
	return &txParcelWriter{parcels: f.client.Collection(constants.CollectionParcels), tx: f.tx}
}

func (f *txFactory) NewLocationHistoryWriter() repository.LocationHistoryWriter {
	return &txLocationHistoryWriter{history: f.client.Collection(constants.CollectionLocationHistory), tx: f.tx}
}

type txParcelWriter struct {
	parcels *firestore.CollectionRef
	tx      *firestore.Transaction
}

func (w *txParcelWriter) UpdateParcelStatus(_ context.Context, id string, status entity.ParcelStatus, updatedAt time.Time) error {
	return w.update(id, statusUpdates(status, updatedAt))
}

func (w *txParcelWriter) UpdateParcelLocation(_ context.Context, id string, location entity.GeoPoint, updatedAt time.Time) error {
	return w.update(id, locationUpdates(location, updatedAt))
}

func (w *txParcelWriter) ApplyLocationUpdate(
	_ context.Context,
	id string,
	location entity.GeoPoint,
	status entity.ParcelStatus,
	updatedAt time.Time,
) error {
	return w.update(id, append(locationUpdates(location, updatedAt), firestore.Update{Path: "status", Value: string(status)}))
}

// update reads the parcel to fail with ErrParcelNotFound inside the transaction, then writes.
func (w *txParcelWriter) update(id string, updates []firestore.Update) error {
	ref := w.parcels.Doc(id)

	snap, err := w.tx.Get(ref)
	if isNotFound(err) || (err == nil && !snap.Exists()) {
		return repository.ErrParcelNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to read parcel in transaction")
	}

	return errors.Wrap(w.tx.Update(ref, updates), "failed to update parcel in transaction")
}

type txLocationHistoryWriter struct {
	history *firestore.CollectionRef
	tx      *firestore.Transaction
}

func (w *txLocationHistoryWriter) CreateLocationHistory(_ context.Context, entry *entity.LocationHistory) error {
	ref := w.history.NewDoc()
	if err := w.tx.Create(ref, newLocationHistoryDocument(entry)); err != nil {
		return errors.Wrap(err, "failed to create location history in transaction")
	}
	entry.ID = ref.ID

	return nil
}
