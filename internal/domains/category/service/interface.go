package service

import (
	"context"

	bookmodel "bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/domains/category/model"
)

// ServiceInterface is the category business logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest) (model.Category, error)
	GetAll(ctx context.Context) ([]model.CategoryWithCount, error)
	GetByID(ctx context.Context, id int64) (model.Category, error)
	Update(ctx context.Context, id int64, req *model.CreateCategoryRequest) (model.Category, error)
	Delete(ctx context.Context, id int64) error
	Books(ctx context.Context, id int64) ([]bookmodel.Book, error)
}

// BookSource is the slice of the book repository the category domain needs.
// Satisfied by book/repository.RepositoryInterface.
type BookSource interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]bookmodel.Book, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
}
