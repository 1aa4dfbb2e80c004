package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"bookcatalog/internal/domains/author/model"
	bookmodel "bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/storage/docstore"
)

// docstoreRepository implements RepositoryInterface over the authors
// collection.
type docstoreRepository struct {
	col *docstore.Collection[model.Author]
}

func NewDocstoreRepository(col *docstore.Collection[model.Author]) RepositoryInterface {
	return &docstoreRepository{col: col}
}

// mapErr translates storage sentinels into domain errors.
func mapErr(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return model.ErrAuthorNotFound
	case errors.Is(err, docstore.ErrDuplicateKey):
		return model.ErrDuplicateAuthorID
	default:
		return err
	}
}

func (r *docstoreRepository) Create(_ context.Context, a model.Author) (model.Author, error) {
	created, err := r.col.InsertNext(func(id int64) model.Author {
		a.ID = id
		return a
	})
	if err != nil {
		return model.Author{}, mapErr(err)
	}
	return created, nil
}

func (r *docstoreRepository) Insert(_ context.Context, a model.Author) (model.Author, error) {
	inserted, err := r.col.Insert(a)
	if err != nil {
		return model.Author{}, mapErr(err)
	}
	return inserted, nil
}

func (r *docstoreRepository) GetByID(_ context.Context, id int64) (model.Author, error) {
	a, err := r.col.Get(id)
	if err != nil {
		return model.Author{}, mapErr(err)
	}
	return a, nil
}

func (r *docstoreRepository) GetAll(_ context.Context) ([]model.Author, error) {
	return r.col.All(), nil
}

func (r *docstoreRepository) Update(_ context.Context, id int64, a model.Author) (model.Author, error) {
	updated, err := r.col.Update(id, a)
	if err != nil {
		return model.Author{}, mapErr(err)
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

func (r *docstoreRepository) SearchByName(_ context.Context, name string) ([]model.Author, error) {
	needle := strings.ToLower(name)
	return r.col.Scan(func(a model.Author) bool {
		return strings.Contains(strings.ToLower(a.FirstName), needle) ||
			strings.Contains(strings.ToLower(a.LastName), needle)
	}), nil
}

func (r *docstoreRepository) TopByBookCount(_ context.Context, limit int) ([]model.Author, error) {
	authors := r.col.All()
	// Stable sort keeps insertion order among equal counts.
	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].BookCount > authors[j].BookCount
	})
	if limit < len(authors) {
		authors = authors[:limit]
	}
	return authors, nil
}

func (r *docstoreRepository) RefreshAggregates(ctx context.Context, authorID int64, books []bookmodel.Book) error {
	a, err := r.GetByID(ctx, authorID)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(books))
	var sum float64
	rated := 0
	for _, b := range books {
		ids = append(ids, b.ID)
		if b.Rating != nil {
			sum += *b.Rating
			rated++
		}
	}

	a.Books = ids
	a.BookCount = len(books)
	if rated > 0 {
		avg := sum / float64(rated)
		a.AverageRating = &avg
	} else {
		a.AverageRating = nil
	}

	_, err = r.Update(ctx, authorID, a)
	return err
}
