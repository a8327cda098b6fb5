package service_test

import (
	"context"
	"testing"

	"bookshelf-be/internal/dto"
	"bookshelf-be/internal/pkg/dbtest"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/internal/service"
	"bookshelf-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorService(t *testing.T) (service.IAuthorService, *recordingPublisher) {
	t.Helper()
	db := dbtest.Open(t)
	dbtest.SeedCatalog(t, db)
	publisher := &recordingPublisher{}
	svc := service.NewAuthorService(unitofwork.NewRepositoryFactory(db), publisher)
	return svc, publisher
}

func TestAuthorGetExampleReturnsJane(t *testing.T) {
	svc, _ := newAuthorService(t)

	res, err := svc.GetExample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, uint(2), res.Id)
	assert.Equal(t, "Jane", res.FirstName)
	assert.Equal(t, "Doe", res.LastName)
}

func TestAuthorShowAbsentReturnsNil(t *testing.T) {
	svc, _ := newAuthorService(t)

	res, err := svc.Show(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, res)
}

func TestAuthorGetAll(t *testing.T) {
	svc, _ := newAuthorService(t)

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestAuthorCreateCommitsAndPublishes(t *testing.T) {
	svc, publisher := newAuthorService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateAuthorRequest{FirstName: "New", LastName: "Author"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotZero(t, res.Id)

	created, err := svc.Show(ctx, res.Id)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "New", created.FirstName)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.TopicAuthorChanged, publisher.topics[0])
	assert.Equal(t, "author", publisher.events[0].Entity)
	assert.Equal(t, events.ActionCreated, publisher.events[0].Action)
}

func TestAuthorUpdate(t *testing.T) {
	svc, _ := newAuthorService(t)
	ctx := context.Background()

	res, err := svc.Update(ctx, &dto.UpdateAuthorRequest{Id: 2, FirstName: "Janet", LastName: "Doe"})
	require.NoError(t, err)
	require.NotNil(t, res)

	updated, err := svc.Show(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Janet", updated.FirstName)
}

func TestAuthorDeleteWithBooksIsRejected(t *testing.T) {
	svc, publisher := newAuthorService(t)

	// Jane still has books; the foreign key restricts the delete.
	err := svc.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.Empty(t, publisher.events)

	still, err := svc.Show(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, still)
}
