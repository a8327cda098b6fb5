package implementation

import (
	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/mapper"
	"bookshelf-be/internal/model"
	"bookshelf-be/internal/repository/contract"
	"bookshelf-be/internal/repository/session"
)

type AuthorRepositoryImpl struct {
	*GormRepository[model.Author, entity.Author]
}

func NewAuthorRepository(sess *session.Session) contract.AuthorRepository {
	return &AuthorRepositoryImpl{
		GormRepository: NewGormRepository[model.Author, entity.Author](sess, mapper.NewAuthorMapper()),
	}
}
