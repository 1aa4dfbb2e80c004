package repository

import (
	"context"
	"errors"

	"bookcatalog/internal/domains/category/model"
	"bookcatalog/internal/storage/docstore"
)

type docstoreRepository struct {
	col *docstore.Collection[model.Category]
}

func NewDocstoreRepository(col *docstore.Collection[model.Category]) RepositoryInterface {
	return &docstoreRepository{col: col}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return model.ErrCategoryNotFound
	case errors.Is(err, docstore.ErrDuplicateKey):
		return model.ErrDuplicateCategoryID
	default:
		return err
	}
}

func (r *docstoreRepository) Create(_ context.Context, c model.Category) (model.Category, error) {
	created, err := r.col.InsertNext(func(id int64) model.Category {
		c.ID = id
		return c
	})
	if err != nil {
		return model.Category{}, mapErr(err)
	}
	return created, nil
}

func (r *docstoreRepository) GetByID(_ context.Context, id int64) (model.Category, error) {
	c, err := r.col.Get(id)
	if err != nil {
		return model.Category{}, mapErr(err)
	}
	return c, nil
}

func (r *docstoreRepository) GetAll(_ context.Context) ([]model.Category, error) {
	return r.col.All(), nil
}

func (r *docstoreRepository) Update(_ context.Context, id int64, c model.Category) (model.Category, error) {
	updated, err := r.col.Update(id, c)
	if err != nil {
		return model.Category{}, mapErr(err)
	}
	return updated, nil
}

func (r *docstoreRepository) Delete(_ context.Context, id int64) error {
	if _, err := r.col.Remove(id); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *docstoreRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, err := r.col.Get(id)
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *docstoreRepository) Count(_ context.Context) (int, error) {
	return r.col.Len(), nil
}
