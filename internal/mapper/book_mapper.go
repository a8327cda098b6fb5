package mapper

import (
	"time"

	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/model"
)

type BookMapper struct{}

func NewBookMapper() *BookMapper {
	return &BookMapper{}
}

func (m *BookMapper) ToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}

	out := bookShallowToEntity(b)
	out.Author = authorShallowToEntity(b.Author)
	return out
}

func (m *BookMapper) ToModel(b *entity.Book) *model.Book {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.Book{
		Id:        b.Id,
		Title:     b.Title,
		AuthorId:  b.AuthorId,
		CreatedAt: b.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func bookShallowToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.Book{
		Id:        b.Id,
		Title:     b.Title,
		AuthorId:  b.AuthorId,
		CreatedAt: b.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
