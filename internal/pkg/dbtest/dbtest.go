// Package dbtest opens hermetic in-memory sqlite databases for repository
// and service tests.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"bookshelf-be/internal/model"
	"bookshelf-be/pkg/database"

	"gorm.io/gorm"
)

var dbSeq int64

// Open returns a fresh in-memory database with the catalog schema applied.
// Each call gets its own named shared-cache DB so pooled connections see the
// same data while tests stay isolated from each other.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&dbSeq, 1)
	dsn := fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared&_foreign_keys=on", n)

	db, err := database.NewSQLiteDB(dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Author{}, &model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// SeedCatalog inserts the canonical example rows: authors 1-2 (John Smith,
// Jane Doe) and books 1-5, among them Book{5, "Ninja", author 2}.
func SeedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	authors := []*model.Author{
		{Id: 1, FirstName: "John", LastName: "Smith"},
		{Id: 2, FirstName: "Jane", LastName: "Doe"},
	}
	if err := db.Create(&authors).Error; err != nil {
		t.Fatalf("failed to seed authors: %v", err)
	}

	books := []*model.Book{
		{Id: 1, Title: "The Go Workshop", AuthorId: 1},
		{Id: 2, Title: "Patterns of Data Access", AuthorId: 1},
		{Id: 3, Title: "Ninja Handbook", AuthorId: 2},
		{Id: 4, Title: "Everyday Recipes", AuthorId: 2},
		{Id: 5, Title: "Ninja", AuthorId: 2},
	}
	if err := db.Create(&books).Error; err != nil {
		t.Fatalf("failed to seed books: %v", err)
	}
}

// CountQueries registers a callback that counts every SELECT the handle
// executes, for asserting that eager includes make later relation access
// query-free.
func CountQueries(t *testing.T, db *gorm.DB) *int64 {
	t.Helper()

	var count int64
	err := db.Callback().Query().After("gorm:query").Register("dbtest:count_queries", func(*gorm.DB) {
		atomic.AddInt64(&count, 1)
	})
	if err != nil {
		t.Fatalf("failed to register query counter: %v", err)
	}
	return &count
}
