package service

import (
	"context"
	"fmt"
	"strings"

	"bookcatalog/internal/domains/author/model"
	"bookcatalog/internal/domains/author/repository"
	bookmodel "bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/shared/types"
)

// authorService implements ServiceInterface.
type authorService struct {
	repo  repository.RepositoryInterface
	books BookSource
}

// NewAuthorService creates a new author service instance.
// Depends on abstractions (repository interface + book source) so tests can
// run against in-memory collections or mocks.
func NewAuthorService(repo repository.RepositoryInterface, books BookSource) ServiceInterface {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (model.Author, error) {
	a := req.ToEntity()

	// Server-assigned fields: identifier comes from the repository,
	// aggregates start zeroed, both timestamps start at today.
	now := types.Today()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.BookCount = 0
	a.AverageRating = nil
	a.Books = []int64{}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return model.Author{}, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the caller-owned fields wholesale while preserving the
// identifier, creation timestamp and the server-computed aggregates.
func (s *authorService) Update(ctx context.Context, id int64, req *model.CreateAuthorRequest) (model.Author, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Author{}, err
	}

	a := req.ToEntity()
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = types.Today()
	a.BookCount = existing.BookCount
	a.AverageRating = existing.AverageRating
	a.Books = existing.Books

	return s.repo.Update(ctx, id, a)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	// Referential integrity guard: never orphan book references.
	count, err := s.books.CountByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check book count: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: author has %d linked books", model.ErrAuthorHasBooks, count)
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorService) Search(ctx context.Context, name string) ([]model.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []model.Author{}, nil // empty query matches nothing, not an error
	}
	return s.repo.SearchByName(ctx, name)
}

// Top returns up to limit authors ordered by descending book count, ties
// kept in insertion order. An empty catalog yields an empty list.
func (s *authorService) Top(ctx context.Context, limit int) ([]model.Author, error) {
	if limit <= 0 {
		return nil, model.ErrInvalidLimit
	}
	return s.repo.TopByBookCount(ctx, limit)
}

func (s *authorService) Books(ctx context.Context, id int64) (model.AuthorBooksResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.AuthorBooksResponse{}, err
	}
	books, err := s.ownedBooks(ctx, id)
	if err != nil {
		return model.AuthorBooksResponse{}, err
	}
	return model.AuthorBooksResponse{
		Author: a.FullName(),
		Books:  books,
	}, nil
}

func (s *authorService) Summary(ctx context.Context, id int64) (model.AuthorSummary, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.AuthorSummary{}, err
	}
	books, err := s.ownedBooks(ctx, id)
	if err != nil {
		return model.AuthorSummary{}, err
	}
	return model.AuthorSummary{
		AuthorID:      a.ID,
		Name:          a.FullName(),
		NumberOfBooks: len(books),
		Books:         books,
	}, nil
}

// Statistics reads the denormalized aggregates; the book write paths keep
// them consistent, so no recomputation happens here.
func (s *authorService) Statistics(ctx context.Context, id int64) (model.AuthorStatistics, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.AuthorStatistics{}, err
	}
	return model.AuthorStatistics{
		AuthorID:      a.ID,
		Name:          a.FullName(),
		BookCount:     a.BookCount,
		AverageRating: a.AverageRating,
	}, nil
}

func (s *authorService) BulkCreate(ctx context.Context, req model.BulkCreateRequest) (model.BulkCreateResponse, error) {
	resp := model.BulkCreateResponse{Inserted: []model.AuthorResponse{}}

	for i, item := range req.Authors {
		if err := item.CreateAuthorRequest.Validate(); err != nil {
			resp.Errors = append(resp.Errors, model.BulkError{Index: i, Message: err.Error()})
			continue
		}

		a := item.CreateAuthorRequest.ToEntity()
		now := types.Today()
		a.CreatedAt = now
		a.UpdatedAt = now
		a.Books = []int64{}

		var created model.Author
		var err error
		if item.AuthorID > 0 {
			a.ID = item.AuthorID
			created, err = s.repo.Insert(ctx, a)
		} else {
			created, err = s.repo.Create(ctx, a)
		}
		if err != nil {
			resp.Errors = append(resp.Errors, model.BulkError{Index: i, Message: err.Error()})
			continue
		}
		resp.Inserted = append(resp.Inserted, created.ToResponse())
	}

	return resp, nil
}

func (s *authorService) ownedBooks(ctx context.Context, authorID int64) ([]model.OwnedBook, error) {
	books, err := s.books.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toOwnedBooks(books), nil
}

func toOwnedBooks(books []bookmodel.Book) []model.OwnedBook {
	out := make([]model.OwnedBook, len(books))
	for i, b := range books {
		out[i] = model.OwnedBook{ID: b.ID, Title: b.Title, Rating: b.Rating}
	}
	return out
}
