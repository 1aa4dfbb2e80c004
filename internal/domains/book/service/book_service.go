package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/domains/book/repository"
	"bookcatalog/internal/shared/types"
)

// bookService implements ServiceInterface.
//
// Reference validation and the subsequent insert run under separate
// per-collection locks, so a concurrent author/category delete can slip
// between them. Accepted limitation: the guard on the delete side closes the
// window for everything that is already inserted.
type bookService struct {
	repo       repository.RepositoryInterface
	authors    AuthorStore
	categories CategoryStore
}

// NewBookService creates a new book service instance.
func NewBookService(repo repository.RepositoryInterface, authors AuthorStore, categories CategoryStore) ServiceInterface {
	return &bookService{
		repo:       repo,
		authors:    authors,
		categories: categories,
	}
}

// validateReferences is the write-path integrity check: both foreign keys
// must resolve before a book is inserted or updated.
func (s *bookService) validateReferences(ctx context.Context, authorID, categoryID int64) error {
	ok, err := s.authors.Exists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("failed to check author reference: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: author %d", model.ErrAuthorReference, authorID)
	}

	ok, err = s.categories.Exists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category reference: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: category %d", model.ErrCategoryReference, categoryID)
	}
	return nil
}

// refreshAuthor recomputes the denormalized aggregates of one author from
// the books collection. Called after every mutation that can change them.
func (s *bookService) refreshAuthor(ctx context.Context, authorID int64) error {
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return err
	}
	if err := s.authors.RefreshAggregates(ctx, authorID, books); err != nil {
		return fmt.Errorf("failed to refresh author %d aggregates: %w", authorID, err)
	}
	return nil
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (model.Book, error) {
	if err := s.validateReferences(ctx, req.AuthorID, req.CategoryID); err != nil {
		return model.Book{}, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	if err := s.refreshAuthor(ctx, created.AuthorID); err != nil {
		return model.Book{}, err
	}
	return created, nil
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Update(ctx context.Context, id int64, req *model.CreateBookRequest) (model.Book, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Book{}, err
	}

	if err := s.validateReferences(ctx, req.AuthorID, req.CategoryID); err != nil {
		return model.Book{}, err
	}

	b := req.ToEntity()
	b.ID = existing.ID

	updated, err := s.repo.Update(ctx, id, b)
	if err != nil {
		return model.Book{}, err
	}

	if err := s.refreshAuthor(ctx, updated.AuthorID); err != nil {
		return model.Book{}, err
	}
	if existing.AuthorID != updated.AuthorID {
		// The previous owner lost a book.
		if err := s.refreshAuthor(ctx, existing.AuthorID); err != nil {
			return model.Book{}, err
		}
	}
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	return s.refreshAuthor(ctx, removed.AuthorID)
}

func (s *bookService) Search(ctx context.Context, title string) ([]model.Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return []model.Book{}, nil
	}
	return s.repo.SearchByTitle(ctx, title)
}

func (s *bookService) PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]model.Book, error) {
	if minPrice > maxPrice {
		return nil, fmt.Errorf("%w: min %.2f, max %.2f", model.ErrInvalidPriceRange, minPrice, maxPrice)
	}
	return s.repo.PriceBetween(ctx, decimal.NewFromFloat(minPrice), decimal.NewFromFloat(maxPrice))
}

func (s *bookService) Recent(ctx context.Context, days int) ([]model.Book, error) {
	if days <= 0 {
		return nil, model.ErrInvalidWindow
	}
	cutoff := types.Today().AddDays(-days)
	return s.repo.PublishedSince(ctx, cutoff)
}

func (s *bookService) SortedByPrice(ctx context.Context, order string) ([]model.Book, error) {
	switch strings.ToLower(order) {
	case "", "asc":
		return s.repo.SortedByPrice(ctx, false)
	case "desc":
		return s.repo.SortedByPrice(ctx, true)
	default:
		return nil, model.ErrInvalidSortOrder
	}
}

func (s *bookService) CountGrouped(ctx context.Context, groupBy string) (model.CountResponse, error) {
	field := model.GroupField(strings.ToLower(groupBy))
	if groupBy == "" {
		field = model.GroupByCategory
	}
	if !field.IsValid() {
		return model.CountResponse{}, model.ErrInvalidGroupField
	}

	groups, total, err := s.repo.CountGrouped(ctx, field)
	if err != nil {
		return model.CountResponse{}, err
	}
	return model.CountResponse{
		GroupBy: string(field),
		Total:   total,
		Groups:  groups,
	}, nil
}
