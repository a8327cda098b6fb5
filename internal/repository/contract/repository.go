package contract

import (
	"context"

	"bookshelf-be/internal/repository/specification"
)

// Repository is the generic data-access contract, parameterized by entity
// type. Read operations never mutate state and re-query on every call.
// "Not found" is a nil result, not an error; any storage failure surfaces
// as an apperr.InfrastructureError.
//
// Mutations are staged against the owning unit of work's session and become
// durable only when that unit commits.
type Repository[E any] interface {
	// GetByID fetches a single entity by primary key. Returns (nil, nil)
	// when no row matches. The context carries cancellation for the I/O
	// wait.
	GetByID(ctx context.Context, id uint) (*E, error)

	// Find returns the first entity matching every given specification,
	// or (nil, nil). Ties are broken by ascending primary key. Use
	// specification.Include to eagerly load relations.
	Find(ctx context.Context, specs ...specification.Specification) (*E, error)

	// FindAll returns every matching entity, fully materialized. Zero
	// matches yield an empty slice, never an error.
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)

	// GetAll returns every row of the entity's table, fully materialized.
	GetAll(ctx context.Context) ([]*E, error)

	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uint) error
}
