package service

import (
	"context"

	"bookcatalog/internal/domains/author/model"
	bookmodel "bookcatalog/internal/domains/book/model"
)

// ServiceInterface is the author business logic contract consumed by the
// HTTP layer.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateAuthorRequest) (model.Author, error)
	GetAll(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (model.Author, error)
	Update(ctx context.Context, id int64, req *model.CreateAuthorRequest) (model.Author, error)
	Delete(ctx context.Context, id int64) error

	Search(ctx context.Context, name string) ([]model.Author, error)
	Top(ctx context.Context, limit int) ([]model.Author, error)
	Books(ctx context.Context, id int64) (model.AuthorBooksResponse, error)
	Summary(ctx context.Context, id int64) (model.AuthorSummary, error)
	Statistics(ctx context.Context, id int64) (model.AuthorStatistics, error)
	BulkCreate(ctx context.Context, req model.BulkCreateRequest) (model.BulkCreateResponse, error)
}

// BookSource is the slice of the book repository the author domain needs:
// the delete guard and the owned-book views. Satisfied by
// book/repository.RepositoryInterface.
type BookSource interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]bookmodel.Book, error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}
