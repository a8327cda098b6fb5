package contract

import "bookshelf-be/internal/entity"

// BookRepository widens the generic contract for Book. Domain-specific
// query methods go here without touching callers of Repository[Book].
type BookRepository interface {
	Repository[entity.Book]
}
