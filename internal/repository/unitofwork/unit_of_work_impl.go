package unitofwork

import (
	"context"
	"errors"

	"bookshelf-be/internal/apperr"
	"bookshelf-be/internal/repository/contract"
	"bookshelf-be/internal/repository/implementation"
	"bookshelf-be/internal/repository/session"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	sess *session.Session

	// Repositories are constructed once, all sharing sess. There is no
	// re-binding to a different session during the unit's lifetime.
	authors contract.AuthorRepository
	books   contract.BookRepository
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	sess := session.New(db)
	return &UnitOfWorkImpl{
		sess:    sess,
		authors: implementation.NewAuthorRepository(sess),
		books:   implementation.NewBookRepository(sess),
	}
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if err := u.sess.Begin(ctx); err != nil {
		return apperr.Infrastructure("unitofwork.Begin", err)
	}
	return nil
}

func (u *UnitOfWorkImpl) Commit() (int64, error) {
	affected, err := u.sess.Commit()
	if err != nil {
		// A write already wrapped by the repository keeps its type.
		var pe *apperr.PersistenceError
		if errors.As(err, &pe) {
			return 0, err
		}
		return 0, apperr.Persistence("unitofwork.Commit", err)
	}
	return affected, nil
}

func (u *UnitOfWorkImpl) Rollback() error {
	return u.sess.Rollback()
}

func (u *UnitOfWorkImpl) Close() error {
	return u.sess.Close()
}

func (u *UnitOfWorkImpl) AuthorRepository() contract.AuthorRepository {
	return u.authors
}

func (u *UnitOfWorkImpl) BookRepository() contract.BookRepository {
	return u.books
}
