package specification

import "gorm.io/gorm"

// Specification is a composable query refinement. A repository read applies
// each one in the order given; implementations may narrow, order, page, or
// eagerly expand the query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
