package main

import (
	"context"
	"log"

	"bookshelf-be/internal/config"
	"bookshelf-be/internal/entity"
	"bookshelf-be/internal/repository/specification"
	"bookshelf-be/internal/repository/unitofwork"
	"bookshelf-be/pkg/database"
)

// Seeds the fixed example rows the demo endpoints look up: author 2
// ("Jane Doe") and book 5 ("Ninja"). Idempotent.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	defer uow.Close()

	existing, err := uow.AuthorRepository().Find(ctx, specification.ByID{ID: 2})
	if err != nil {
		log.Fatal("Error: seed lookup failed:", err)
	}
	if existing != nil {
		log.Println("Seed data already present, nothing to do.")
		return
	}

	if err := uow.Begin(ctx); err != nil {
		log.Fatal("Error: failed to begin transaction:", err)
	}

	authors := []*entity.Author{
		{Id: 1, FirstName: "John", LastName: "Smith"},
		{Id: 2, FirstName: "Jane", LastName: "Doe"},
	}
	for _, a := range authors {
		if err := uow.AuthorRepository().Create(ctx, a); err != nil {
			log.Fatal("Error: failed to seed author:", err)
		}
	}

	books := []*entity.Book{
		{Id: 1, Title: "The Go Workshop", AuthorId: 1},
		{Id: 2, Title: "Patterns of Data Access", AuthorId: 1},
		{Id: 3, Title: "Ninja Handbook", AuthorId: 2},
		{Id: 4, Title: "Everyday Recipes", AuthorId: 2},
		{Id: 5, Title: "Ninja", AuthorId: 2},
	}
	for _, b := range books {
		if err := uow.BookRepository().Create(ctx, b); err != nil {
			log.Fatal("Error: failed to seed book:", err)
		}
	}

	rows, err := uow.Commit()
	if err != nil {
		log.Fatal("Error: failed to commit seed data:", err)
	}

	log.Printf("Seed complete, %d rows written.", rows)
}
