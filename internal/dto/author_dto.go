package dto

import "time"

type ShowAuthorResponse struct {
	Id        uint       `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type CreateAuthorRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type CreateAuthorResponse struct {
	Id uint `json:"id"`
}

type UpdateAuthorRequest struct {
	Id        uint
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type UpdateAuthorResponse struct {
	Id uint `json:"id"`
}
