package service

import (
	"context"

	"bookshelf-be/internal/dto"
	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/pkg/events"
)

// exampleAuthorId is the fixed lookup the demo endpoints serve.
const exampleAuthorId uint = 2

type IAuthorService interface {
	GetExample(ctx context.Context) (*dto.ShowAuthorResponse, error)
	Show(ctx context.Context, id uint) (*dto.ShowAuthorResponse, error)
	GetAll(ctx context.Context) ([]*dto.ShowAuthorResponse, error)
	Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.CreateAuthorResponse, error)
	Update(ctx context.Context, req *dto.UpdateAuthorRequest) (*dto.UpdateAuthorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type authorService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewAuthorService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IAuthorService {
	return &authorService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *authorService) GetExample(ctx context.Context) (*dto.ShowAuthorResponse, error) {
	return s.Show(ctx, exampleAuthorId)
}

func (s *authorService) Show(ctx context.Context, id uint) (*dto.ShowAuthorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	author, err := uow.AuthorRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		// Absent surfaces as a success with null data.
		return nil, nil
	}

	return toShowAuthorResponse(author), nil
}

func (s *authorService) GetAll(ctx context.Context) ([]*dto.ShowAuthorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	authors, err := uow.AuthorRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowAuthorResponse, len(authors))
	for i, author := range authors {
		result[i] = toShowAuthorResponse(author)
	}
	return result, nil
}

func (s *authorService) Create(ctx context.Context, req *dto.CreateAuthorRequest) (*dto.CreateAuthorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	author := entity.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := uow.AuthorRepository().Create(ctx, &author); err != nil {
		return nil, err
	}

	rows, err := uow.Commit()
	if err != nil {
		return nil, err
	}

	s.publisherService.PublishChange(events.TopicAuthorChanged, events.ChangeEvent{
		Entity: "author",
		Action: events.ActionCreated,
		Id:     author.Id,
		Rows:   rows,
	})

	return &dto.CreateAuthorResponse{Id: author.Id}, nil
}

func (s *authorService) Update(ctx context.Context, req *dto.UpdateAuthorRequest) (*dto.UpdateAuthorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	author, err := uow.AuthorRepository().GetByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, nil
	}

	author.FirstName = req.FirstName
	author.LastName = req.LastName
	if err := uow.AuthorRepository().Update(ctx, author); err != nil {
		return nil, err
	}

	rows, err := uow.Commit()
	if err != nil {
		return nil, err
	}

	s.publisherService.PublishChange(events.TopicAuthorChanged, events.ChangeEvent{
		Entity: "author",
		Action: events.ActionUpdated,
		Id:     author.Id,
		Rows:   rows,
	})

	return &dto.UpdateAuthorResponse{Id: author.Id}, nil
}

func (s *authorService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	defer uow.Close()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.AuthorRepository().Delete(ctx, id); err != nil {
		return err
	}

	rows, err := uow.Commit()
	if err != nil {
		return err
	}

	s.publisherService.PublishChange(events.TopicAuthorChanged, events.ChangeEvent{
		Entity: "author",
		Action: events.ActionDeleted,
		Id:     id,
		Rows:   rows,
	})

	return nil
}

func toShowAuthorResponse(author *entity.Author) *dto.ShowAuthorResponse {
	return &dto.ShowAuthorResponse{
		Id:        author.Id,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		CreatedAt: author.CreatedAt,
		UpdatedAt: author.UpdatedAt,
	}
}
