package entity

import "time"

type Book struct {
	Id        uint
	Title     string
	AuthorId  uint
	CreatedAt time.Time
	UpdatedAt *time.Time

	// Author is populated only when eagerly included by the query.
	Author *Author
}
