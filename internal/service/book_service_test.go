package service_test

import (
	"context"
	"sync"
	"testing"

	"bookshelf-be/internal/dto"
	"bookshelf-be/internal/pkg/dbtest"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/internal/service"
	"bookshelf-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ChangeEvent
	topics []string
}

func (p *recordingPublisher) PublishChange(topic string, event events.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
}

func newBookService(t *testing.T) (service.IBookService, *recordingPublisher, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	dbtest.SeedCatalog(t, db)
	publisher := &recordingPublisher{}
	svc := service.NewBookService(unitofwork.NewRepositoryFactory(db), publisher)
	return svc, publisher, db
}

func TestBookGetExampleReturnsSeededBook(t *testing.T) {
	svc, _, _ := newBookService(t)

	res, err := svc.GetExample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, uint(5), res.Id)
	assert.Equal(t, "Ninja", res.Title)
	assert.Equal(t, uint(2), res.AuthorId)
	assert.Nil(t, res.Author)
}

func TestBookGetByTitleLiteralNeverMatchesSeedData(t *testing.T) {
	svc, _, _ := newBookService(t)

	// The endpoint queries for "Ninga"; the store holds "Ninja". Exact,
	// case-sensitive matching means the demo lookup comes back empty.
	res, err := svc.GetByTitle(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestBookGetAllWithAuthorsIncludesAuthorSummaries(t *testing.T) {
	svc, _, _ := newBookService(t)

	res, err := svc.GetAllWithAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, book := range res {
		require.NotNil(t, book.Author)
		assert.Equal(t, "Jane", book.Author.FirstName)
		assert.Equal(t, "Doe", book.Author.LastName)
	}
}

func TestBookGetByAuthorIsOrderedAndPageable(t *testing.T) {
	svc, _, _ := newBookService(t)
	ctx := context.Background()

	// Jane (author 2) has books 3, 4, 5.
	all, err := svc.GetByAuthor(ctx, 2, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint(3), all[0].Id)
	assert.Equal(t, uint(5), all[2].Id)

	page, err := svc.GetByAuthor(ctx, 2, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint(4), page[0].Id)
	assert.Equal(t, uint(5), page[1].Id)

	none, err := svc.GetByAuthor(ctx, 999, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookGetAll(t *testing.T) {
	svc, _, _ := newBookService(t)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 5)
}

func TestBookCreateCommitsAndPublishes(t *testing.T) {
	svc, publisher, _ := newBookService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateBookRequest{Title: "Brand New", AuthorId: 1})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotZero(t, res.Id)

	created, err := svc.Show(ctx, res.Id)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Brand New", created.Title)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.TopicBookChanged, publisher.topics[0])
	assert.Equal(t, "book", publisher.events[0].Entity)
	assert.Equal(t, events.ActionCreated, publisher.events[0].Action)
	assert.Equal(t, res.Id, publisher.events[0].Id)
	assert.Equal(t, int64(1), publisher.events[0].Rows)
}

func TestBookCreateWithUnknownAuthorFailsAndPublishesNothing(t *testing.T) {
	svc, publisher, _ := newBookService(t)

	_, err := svc.Create(context.Background(), &dto.CreateBookRequest{Title: "Orphan", AuthorId: 999})
	require.Error(t, err)
	assert.Empty(t, publisher.events)

	// The failed insert left the store unchanged.
	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBookUpdate(t *testing.T) {
	svc, publisher, _ := newBookService(t)
	ctx := context.Background()

	res, err := svc.Update(ctx, &dto.UpdateBookRequest{Id: 5, Title: "Ninja II", AuthorId: 2})
	require.NoError(t, err)
	require.NotNil(t, res)

	updated, err := svc.Show(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ninja II", updated.Title)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ActionUpdated, publisher.events[0].Action)
}

func TestBookUpdateAbsentReturnsNil(t *testing.T) {
	svc, publisher, _ := newBookService(t)

	res, err := svc.Update(context.Background(), &dto.UpdateBookRequest{Id: 999, Title: "Ghost", AuthorId: 1})
	assert.NoError(t, err)
	assert.Nil(t, res)
	assert.Empty(t, publisher.events)
}

func TestBookDelete(t *testing.T) {
	svc, publisher, _ := newBookService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 5))

	gone, err := svc.Show(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.ActionDeleted, publisher.events[0].Action)
}
