package unitofwork

import (
	"context"

	"bookshelf-be/internal/repository/contract"
)

// UnitOfWork binds one repository per entity type to a single shared
// session, so that writes made through any of them are visible to each
// other and commit together atomically.
type UnitOfWork interface {
	// Begin opens the transaction all subsequent writes are staged in.
	Begin(ctx context.Context) error

	// Commit flushes every staged write as one atomic operation and
	// returns the total number of affected rows. On failure the cause is
	// wrapped in an apperr.PersistenceError and the store is unchanged.
	Commit() (int64, error)

	Rollback() error

	// Close releases the session, rolling back any open transaction.
	// Idempotent; meant to be deferred on every path.
	Close() error

	AuthorRepository() contract.AuthorRepository
	BookRepository() contract.BookRepository
}
