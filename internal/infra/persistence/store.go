// Package persistence selects the repository implementations for the configured store driver.
package persistence

import (
	"parceltrack/config"
	"parceltrack/internal/domain/repository"
	"parceltrack/internal/errors"
	"parceltrack/internal/infra/persistence/firestoredb"
	"parceltrack/internal/infra/persistence/postgres"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the store clients. Only the one matching store.driver is non-nil.
type Params struct {
	fx.In

	Config    *config.Config
	Firestore *firestore.Client `optional:"true"`
	DB        *gorm.DB          `optional:"true"`
}

// Repositories is the full set of repositories the usecases depend on.
type Repositories struct {
	fx.Out

	TxManager   repository.TransactionManager
	Parcels     repository.ParcelRepository
	History     repository.LocationHistoryRepository
	Shares      repository.ShareRepository
	Users       repository.UserRepository
	Preferences repository.PreferencesRepository
	// Credentials is nil on the firestore driver.
	Credentials repository.CredentialRepository
}

// NewRepositories builds the repositories for the configured driver.
func NewRepositories(params Params) (Repositories, error) {
	cfg := params.Config

	switch cfg.Store.Driver {
	case config.StoreDriverFirestore:
		if params.Firestore == nil {
			return Repositories{}, errors.New("firestore client is not available")
		}
		client := params.Firestore

		return Repositories{
			TxManager:   firestoredb.NewTransactionManager(client),
			Parcels:     firestoredb.NewParcelRepository(client),
			History:     firestoredb.NewLocationHistoryRepository(client),
			Shares:      firestoredb.NewShareRepository(client),
			Users:       firestoredb.NewUserRepository(client),
			Preferences: firestoredb.NewPreferencesRepository(client),
		}, nil
	case config.StoreDriverPostgres:
		if params.DB == nil {
			return Repositories{}, errors.New("postgres client is not available")
		}
		db := params.DB

		return Repositories{
			TxManager:   postgres.NewTransactionManager(db),
			Parcels:     postgres.NewParcelRepository(db, cfg),
			History:     postgres.NewLocationHistoryRepository(db, cfg),
			Shares:      postgres.NewShareRepository(db, cfg),
			Users:       postgres.NewUserRepository(db),
			Preferences: postgres.NewPreferencesRepository(db),
			Credentials: postgres.NewCredentialRepository(db),
		}, nil
	}

	return Repositories{}, errors.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// Module provides the store clients and the repositories built on them.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		postgres.New,
		NewRepositories,
	),
)
