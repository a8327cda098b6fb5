package implementation

import (
	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/mapper"
	"bookshelf-be/internal/model"
	"bookshelf-be/internal/repository/contract"
	"bookshelf-be/internal/repository/session"
)

type BookRepositoryImpl struct {
	*GormRepository[model.Book, entity.Book]
}

func NewBookRepository(sess *session.Session) contract.BookRepository {
	return &BookRepositoryImpl{
		GormRepository: NewGormRepository[model.Book, entity.Book](sess, mapper.NewBookMapper()),
	}
}
