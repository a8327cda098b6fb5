package mapper

import (
	"time"

	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/model"
)

type AuthorMapper struct{}

func NewAuthorMapper() *AuthorMapper {
	return &AuthorMapper{}
}

func (m *AuthorMapper) ToEntity(a *model.Author) *entity.Author {
	if a == nil {
		return nil
	}

	out := authorShallowToEntity(a)

	// One level only. Books carried by the model are mapped without their
	// Author back-reference to keep the graph acyclic.
	for _, b := range a.Books {
		out.Books = append(out.Books, bookShallowToEntity(b))
	}

	return out
}

func (m *AuthorMapper) ToModel(a *entity.Author) *model.Author {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Author{
		Id:        a.Id,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func authorShallowToEntity(a *model.Author) *entity.Author {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Author{
		Id:        a.Id,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
