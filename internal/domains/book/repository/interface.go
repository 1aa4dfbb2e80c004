package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/shared/types"
)

// RepositoryInterface is the book data access contract. The filter methods
// are the read side of the query engine: fresh slices over current state,
// insertion order unless a sort is the point of the call.
type RepositoryInterface interface {
	Create(ctx context.Context, b model.Book) (model.Book, error)
	GetByID(ctx context.Context, id int64) (model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, id int64, b model.Book) (model.Book, error)
	Delete(ctx context.Context, id int64) (model.Book, error)
	Count(ctx context.Context) (int, error)

	SearchByTitle(ctx context.Context, title string) ([]model.Book, error)
	PriceBetween(ctx context.Context, min, max decimal.Decimal) ([]model.Book, error)
	PublishedSince(ctx context.Context, cutoff types.Date) ([]model.Book, error)
	SortedByPrice(ctx context.Context, descending bool) ([]model.Book, error)
	CountGrouped(ctx context.Context, field model.GroupField) ([]model.GroupCount, int, error)

	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Book, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}
