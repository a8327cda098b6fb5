package dto

import "time"

// AuthorSummary is the eagerly included author carried inside a book
// response. Null when the query did not ask for the relation.
type AuthorSummary struct {
	Id        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ShowBookResponse struct {
	Id        uint           `json:"id"`
	Title     string         `json:"title"`
	AuthorId  uint           `json:"author_id"`
	Author    *AuthorSummary `json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at"`
}

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	AuthorId uint   `json:"author_id" validate:"required"`
}

type CreateBookResponse struct {
	Id uint `json:"id"`
}

type UpdateBookRequest struct {
	Id       uint
	Title    string `json:"title" validate:"required"`
	AuthorId uint   `json:"author_id" validate:"required"`
}

type UpdateBookResponse struct {
	Id uint `json:"id"`
}
