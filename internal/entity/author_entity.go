package entity

import "time"

type Author struct {
	Id        uint
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt *time.Time

	// Books is the inverse navigation. It is populated only when the query
	// that produced this Author asked for it; the Author does not own it.
	Books []*Book
}
