package unitofwork

import "context"

// RepositoryFactory hands out request-scoped units of work over the shared
// database handle. Services hold the factory, never a unit, so every call
// gets its own session.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
