package service

import (
	"context"
	"fmt"

	bookmodel "bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/domains/category/model"
	"bookcatalog/internal/domains/category/repository"
)

type categoryService struct {
	repo  repository.RepositoryInterface
	books BookSource
}

// NewCategoryService creates a new category service instance.
func NewCategoryService(repo repository.RepositoryInterface, books BookSource) ServiceInterface {
	return &categoryService{
		repo:  repo,
		books: books,
	}
}

func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (model.Category, error) {
	created, err := s.repo.Create(ctx, model.Category{Name: req.Name})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

// GetAll annotates every category with its current book count.
func (s *categoryService) GetAll(ctx context.Context) ([]model.CategoryWithCount, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		count, err := s.books.CountByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.CategoryWithCount{Category: c, BookCount: count})
	}
	return out, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Update(ctx context.Context, id int64, req *model.CreateCategoryRequest) (model.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, err
	}
	existing.Name = req.Name
	return s.repo.Update(ctx, id, existing)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	// Referential integrity guard, mirror of the author delete path.
	count, err := s.books.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check book count: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: category has %d linked books", model.ErrCategoryHasBooks, count)
	}

	return s.repo.Delete(ctx, id)
}

func (s *categoryService) Books(ctx context.Context, id int64) ([]bookmodel.Book, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.books.ListByCategory(ctx, id)
}
