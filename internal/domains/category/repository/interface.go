package repository

import (
	"context"

	"bookcatalog/internal/domains/category/model"
)

// RepositoryInterface is the category data access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, c model.Category) (model.Category, error)
	GetByID(ctx context.Context, id int64) (model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int64, c model.Category) (model.Category, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
