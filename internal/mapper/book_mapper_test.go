package mapper_test

import (
	"testing"
	"time"

	"bookshelf-be/internal/mapper"
	"bookshelf-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookMapperRoundTripWithAuthor(t *testing.T) {
	m := mapper.NewBookMapper()
	now := time.Now()

	in := &model.Book{
		Id:        5,
		Title:     "Ninja",
		AuthorId:  2,
		CreatedAt: now,
		UpdatedAt: now,
		Author: &model.Author{
			Id:        2,
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}

	e := m.ToEntity(in)
	require.NotNil(t, e)
	assert.Equal(t, uint(5), e.Id)
	assert.Equal(t, "Ninja", e.Title)
	require.NotNil(t, e.Author)
	assert.Equal(t, "Jane", e.Author.FirstName)
	require.NotNil(t, e.UpdatedAt)

	back := m.ToModel(e)
	require.NotNil(t, back)
	assert.Equal(t, in.Id, back.Id)
	assert.Equal(t, in.Title, back.Title)
	assert.Equal(t, in.AuthorId, back.AuthorId)
}

func TestBookMapperNilSafety(t *testing.T) {
	m := mapper.NewBookMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestBookMapperLeavesAuthorNilWhenNotLoaded(t *testing.T) {
	m := mapper.NewBookMapper()

	e := m.ToEntity(&model.Book{Id: 1, Title: "Solo", AuthorId: 1})
	require.NotNil(t, e)
	assert.Nil(t, e.Author)
	assert.Nil(t, e.UpdatedAt)
}

func TestAuthorMapperMapsBooksOneLevelDeep(t *testing.T) {
	m := mapper.NewAuthorMapper()

	e := m.ToEntity(&model.Author{
		Id:        2,
		FirstName: "Jane",
		LastName:  "Doe",
		Books: []*model.Book{
			{Id: 5, Title: "Ninja", AuthorId: 2},
		},
	})
	require.NotNil(t, e)
	require.Len(t, e.Books, 1)
	assert.Equal(t, "Ninja", e.Books[0].Title)
	assert.Nil(t, e.Books[0].Author)
}
