package specification

import "gorm.io/gorm"

// TitleEquals matches the exact title, case-sensitively.
type TitleEquals struct {
	Title string
}

func (s TitleEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}

// TitleContains matches titles containing the given substring.
type TitleContains struct {
	Fragment string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title LIKE ?", "%"+s.Fragment+"%")
}

// ByAuthorID filters books by their author reference.
type ByAuthorID struct {
	AuthorID uint
}

func (s ByAuthorID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author_id = ?", s.AuthorID)
}
