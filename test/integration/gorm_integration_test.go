package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewPostgresDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	defer uow.Close()

	assert.NotNil(t, uow.AuthorRepository())
	assert.NotNil(t, uow.BookRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Author Repository", func(t *testing.T) {
		count, err := uow.AuthorRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Author count: %d", count)
	})

	t.Run("Check Book Repository", func(t *testing.T) {
		count, err := uow.BookRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Book count: %d", count)
	})

	t.Run("Check Transactional Author Book Write", func(t *testing.T) {
		ctx := context.Background()
		tx := uowFactory.NewUnitOfWork(ctx)
		defer tx.Close()

		require.NoError(t, tx.Begin(ctx))

		author := &entity.Author{
			FirstName: "Integration",
			LastName:  "Test",
		}
		require.NoError(t, tx.AuthorRepository().Create(ctx, author))

		book := &entity.Book{
			Title:    "Integration Test Book",
			AuthorId: author.Id,
		}
		require.NoError(t, tx.BookRepository().Create(ctx, book))

		// Leave no trace.
		require.NoError(t, tx.Rollback())

		gone, err := uow.BookRepository().GetByID(ctx, book.Id)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
