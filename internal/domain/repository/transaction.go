package repository

import "context"

// TransactionManager runs a unit of work atomically against the configured store.
type TransactionManager interface {
	// Execute runs fn within a transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out writers bound to the current transaction.
type RepositoryFactory interface {
	// NewParcelWriter returns a ParcelWriter bound to the current transaction.
	NewParcelWriter() ParcelWriter

	// NewLocationHistoryWriter returns a LocationHistoryWriter bound to the current transaction.
	NewLocationHistoryWriter() LocationHistoryWriter
}
