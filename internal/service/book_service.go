package service

import (
	"context"

	"bookshelf-be/internal/dto"
	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/repository/specification"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/pkg/events"
)

// Fixed lookups served by the demo endpoints. The exact-title literal
// deliberately differs from the seeded "Ninja" book: the match is
// case-sensitive and exact, so the endpoint demonstrates an absent result.
const (
	exampleBookId        uint = 5
	exampleBookTitle          = "Ninga"
	exampleTitleFragment      = "Ninja"
)

type IBookService interface {
	GetExample(ctx context.Context) (*dto.ShowBookResponse, error)
	Show(ctx context.Context, id uint) (*dto.ShowBookResponse, error)
	GetAll(ctx context.Context) ([]*dto.ShowBookResponse, error)
	GetByAuthor(ctx context.Context, authorId uint, limit, offset int) ([]*dto.ShowBookResponse, error)
	GetByTitle(ctx context.Context) (*dto.ShowBookResponse, error)
	GetAllWithAuthors(ctx context.Context) ([]*dto.ShowBookResponse, error)
	Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error)
	Update(ctx context.Context, req *dto.UpdateBookRequest) (*dto.UpdateBookResponse, error)
	Delete(ctx context.Context, id uint) error
}

type bookService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewBookService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IBookService {
	return &bookService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *bookService) GetExample(ctx context.Context) (*dto.ShowBookResponse, error) {
	return s.Show(ctx, exampleBookId)
}

func (s *bookService) Show(ctx context.Context, id uint) (*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	book, err := uow.BookRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}

	return toShowBookResponse(book), nil
}

func (s *bookService) GetAll(ctx context.Context) ([]*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	books, err := uow.BookRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return toShowBookResponses(books), nil
}

// GetByAuthor lists an author's books in ascending id order. A positive
// limit turns on paging; limit and offset are ignored otherwise.
func (s *bookService) GetByAuthor(ctx context.Context, authorId uint, limit, offset int) ([]*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	specs := []specification.Specification{
		specification.ByAuthorID{AuthorID: authorId},
		specification.OrderBy{Field: "id"},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	books, err := uow.BookRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return toShowBookResponses(books), nil
}

func (s *bookService) GetByTitle(ctx context.Context) (*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	book, err := uow.BookRepository().Find(ctx,
		specification.TitleEquals{Title: exampleBookTitle},
		specification.With("Author"),
	)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}

	return toShowBookResponse(book), nil
}

func (s *bookService) GetAllWithAuthors(ctx context.Context) ([]*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	books, err := uow.BookRepository().FindAll(ctx,
		specification.TitleContains{Fragment: exampleTitleFragment},
		specification.With("Author"),
	)
	if err != nil {
		return nil, err
	}

	return toShowBookResponses(books), nil
}

func (s *bookService) Create(ctx context.Context, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	book := entity.Book{
		Title:    req.Title,
		AuthorId: req.AuthorId,
	}
	if err := uow.BookRepository().Create(ctx, &book); err != nil {
		return nil, err
	}

	rows, err := uow.Commit()
	if err != nil {
		return nil, err
	}

	s.publisherService.PublishChange(events.TopicBookChanged, events.ChangeEvent{
		Entity: "book",
		Action: events.ActionCreated,
		Id:     book.Id,
		Rows:   rows,
	})

	return &dto.CreateBookResponse{Id: book.Id}, nil
}

func (s *bookService) Update(ctx context.Context, req *dto.UpdateBookRequest) (*dto.UpdateBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	book, err := uow.BookRepository().GetByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, nil
	}

	book.Title = req.Title
	book.AuthorId = req.AuthorId
	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return nil, err
	}

	rows, err := uow.Commit()
	if err != nil {
		return nil, err
	}

	s.publisherService.PublishChange(events.TopicBookChanged, events.ChangeEvent{
		Entity: "book",
		Action: events.ActionUpdated,
		Id:     book.Id,
		Rows:   rows,
	})

	return &dto.UpdateBookResponse{Id: book.Id}, nil
}

func (s *bookService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.BookRepository().Delete(ctx, id); err != nil {
		return err
	}

	rows, err := uow.Commit()
	if err != nil {
		return err
	}

	s.publisherService.PublishChange(events.TopicBookChanged, events.ChangeEvent{
		Entity: "book",
		Action: events.ActionDeleted,
		Id:     id,
		Rows:   rows,
	})

	return nil
}

func toShowBookResponse(book *entity.Book) *dto.ShowBookResponse {
	res := &dto.ShowBookResponse{
		Id:        book.Id,
		Title:     book.Title,
		AuthorId:  book.AuthorId,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
	if book.Author != nil {
		res.Author = &dto.AuthorSummary{
			Id:        book.Author.Id,
			FirstName: book.Author.FirstName,
			LastName:  book.Author.LastName,
		}
	}
	return res
}

func toShowBookResponses(books []*entity.Book) []*dto.ShowBookResponse {
	result := make([]*dto.ShowBookResponse, len(books))
	for i, book := range books {
		result[i] = toShowBookResponse(book)
	}
	return result
}
