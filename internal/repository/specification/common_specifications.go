package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID narrows to a single primary key.
type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByIDs narrows to a set of primary keys.
type ByIDs struct {
	IDs []uint
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

// Include eagerly loads the named relation paths alongside the query result,
// so that reading the relation afterwards performs no further query. A path
// that does not name a real relation makes the query fail.
type Include struct {
	Relations []string
}

func (s Include) Apply(db *gorm.DB) *gorm.DB {
	for _, relation := range s.Relations {
		db = db.Preload(relation)
	}
	return db
}

func With(relations ...string) Specification {
	return Include{Relations: relations}
}

// OrderBy sorts the result by one column, ascending unless Desc is set.
// Field is interpolated into the statement, so it must be a known column
// name, never caller input.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination takes one page of the result. Combine with OrderBy so pages
// are stable between requests.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}

// FilterBy matches a column against an exact value. Field follows the same
// known-column rule as OrderBy.
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}
