package repository

import (
	"context"

	"bookcatalog/internal/domains/author/model"
	bookmodel "bookcatalog/internal/domains/book/model"
)

// RepositoryInterface is the author data access contract.
// Create assigns the next identifier; Insert keeps a caller-supplied one and
// fails on collision (bulk import path).
type RepositoryInterface interface {
	Create(ctx context.Context, a model.Author) (model.Author, error)
	Insert(ctx context.Context, a model.Author) (model.Author, error)
	GetByID(ctx context.Context, id int64) (model.Author, error)
	GetAll(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, id int64, a model.Author) (model.Author, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)

	SearchByName(ctx context.Context, name string) ([]model.Author, error)
	TopByBookCount(ctx context.Context, limit int) ([]model.Author, error)

	// RefreshAggregates recomputes book_count, average_rating and the owned
	// book list from the author's current books. Called by the book write
	// paths (update-on-write aggregate policy).
	RefreshAggregates(ctx context.Context, authorID int64, books []bookmodel.Book) error
}
