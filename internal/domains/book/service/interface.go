package service

import (
	"context"

	"bookcatalog/internal/domains/book/model"
)

// ServiceInterface is the book business logic contract consumed by the HTTP
// layer.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateBookRequest) (model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (model.Book, error)
	Update(ctx context.Context, id int64, req *model.CreateBookRequest) (model.Book, error)
	Delete(ctx context.Context, id int64) error

	Search(ctx context.Context, title string) ([]model.Book, error)
	PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]model.Book, error)
	Recent(ctx context.Context, days int) ([]model.Book, error)
	SortedByPrice(ctx context.Context, order string) ([]model.Book, error)
	CountGrouped(ctx context.Context, groupBy string) (model.CountResponse, error)
}

// AuthorStore is the slice of the author repository the book write paths
// need: the reference check and the aggregate refresh. Satisfied by
// author/repository.RepositoryInterface.
type AuthorStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
	RefreshAggregates(ctx context.Context, authorID int64, books []model.Book) error
}

// CategoryStore is the slice of the category repository the reference check
// needs. Satisfied by category/repository.RepositoryInterface.
type CategoryStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
