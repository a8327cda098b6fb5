package contract

import "bookshelf-be/internal/entity"

// AuthorRepository widens the generic contract for Author. Domain-specific
// query methods go here without touching callers of Repository[Author].
type AuthorRepository interface {
	Repository[entity.Author]
}
