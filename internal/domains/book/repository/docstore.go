package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/shared/types"
	"bookcatalog/internal/storage/docstore"
)

type docstoreRepository struct {
	col *docstore.Collection[model.Book]
}

func NewDocstoreRepository(col *docstore.Collection[model.Book]) RepositoryInterface {
	return &docstoreRepository{col: col}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return model.ErrBookNotFound
	case errors.Is(err, docstore.ErrDuplicateKey):
		return model.ErrDuplicateBookID
	default:
		return err
	}
}

func (r *docstoreRepository) Create(_ context.Context, b model.Book) (model.Book, error) {
	created, err := r.col.InsertNext(func(id int64) model.Book {
		b.ID = id
		return b
	})
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return created, nil
}

func (r *docstoreRepository) GetByID(_ context.Context, id int64) (model.Book, error) {
	b, err := r.col.Get(id)
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return b, nil
}

func (r *docstoreRepository) GetAll(_ context.Context) ([]model.Book, error) {
	return r.col.All(), nil
}

func (r *docstoreRepository) Update(_ context.Context, id int64, b model.Book) (model.Book, error) {
	updated, err := r.col.Update(id, b)
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return updated, nil
}

func (r *docstoreRepository) Delete(_ context.Context, id int64) (model.Book, error) {
	removed, err := r.col.Remove(id)
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return removed, nil
}

func (r *docstoreRepository) Count(_ context.Context) (int, error) {
	return r.col.Len(), nil
}

func (r *docstoreRepository) SearchByTitle(_ context.Context, title string) ([]model.Book, error) {
	needle := strings.ToLower(title)
	return r.col.Scan(func(b model.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

func (r *docstoreRepository) PriceBetween(_ context.Context, min, max decimal.Decimal) ([]model.Book, error) {
	return r.col.Scan(func(b model.Book) bool {
		return b.Price.GreaterThanOrEqual(min) && b.Price.LessThanOrEqual(max)
	}), nil
}

func (r *docstoreRepository) PublishedSince(_ context.Context, cutoff types.Date) ([]model.Book, error) {
	return r.col.Scan(func(b model.Book) bool {
		return !b.PublicationDate.Before(cutoff)
	}), nil
}

func (r *docstoreRepository) SortedByPrice(_ context.Context, descending bool) ([]model.Book, error) {
	books := r.col.All()
	sort.SliceStable(books, func(i, j int) bool {
		if descending {
			return books[i].Price.GreaterThan(books[j].Price)
		}
		return books[i].Price.LessThan(books[j].Price)
	})
	return books, nil
}

func (r *docstoreRepository) CountGrouped(_ context.Context, field model.GroupField) ([]model.GroupCount, int, error) {
	counts := map[int64]int{}
	total := 0
	for _, b := range r.col.All() {
		counts[field.Key(b)]++
		total++
	}

	groups := make([]model.GroupCount, 0, len(counts))
	for id, n := range counts {
		groups = append(groups, model.GroupCount{ID: id, Count: n})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, total, nil
}

func (r *docstoreRepository) ListByAuthor(_ context.Context, authorID int64) ([]model.Book, error) {
	return r.col.Scan(func(b model.Book) bool { return b.AuthorID == authorID }), nil
}

func (r *docstoreRepository) ListByCategory(_ context.Context, categoryID int64) ([]model.Book, error) {
	return r.col.Scan(func(b model.Book) bool { return b.CategoryID == categoryID }), nil
}

func (r *docstoreRepository) CountByAuthor(_ context.Context, authorID int64) (int, error) {
	return r.col.Count(func(b model.Book) bool { return b.AuthorID == authorID }), nil
}

func (r *docstoreRepository) CountByCategory(_ context.Context, categoryID int64) (int, error) {
	return r.col.Count(func(b model.Book) bool { return b.CategoryID == categoryID }), nil
}
