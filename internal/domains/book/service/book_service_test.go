package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "bookcatalog/internal/domains/author/model"
	authorrepo "bookcatalog/internal/domains/author/repository"
	"bookcatalog/internal/domains/book/model"
	"bookcatalog/internal/domains/book/repository"
	categorymodel "bookcatalog/internal/domains/category/model"
	categoryrepo "bookcatalog/internal/domains/category/repository"
	"bookcatalog/internal/shared/types"
	"bookcatalog/internal/storage/docstore"
)

type fixture struct {
	svc        ServiceInterface
	books      repository.RepositoryInterface
	authors    authorrepo.RepositoryInterface
	categories categoryrepo.RepositoryInterface
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()

	booksCol, err := docstore.OpenCollection(dir, "books", func(b model.Book) int64 { return b.ID })
	require.NoError(t, err)
	authorsCol, err := docstore.OpenCollection(dir, "authors", func(a authormodel.Author) int64 { return a.ID })
	require.NoError(t, err)
	categoriesCol, err := docstore.OpenCollection(dir, "categories", func(c categorymodel.Category) int64 { return c.ID })
	require.NoError(t, err)

	bRepo := repository.NewDocstoreRepository(booksCol)
	aRepo := authorrepo.NewDocstoreRepository(authorsCol)
	cRepo := categoryrepo.NewDocstoreRepository(categoriesCol)
	return fixture{
		svc:        NewBookService(bRepo, aRepo, cRepo),
		books:      bRepo,
		authors:    aRepo,
		categories: cRepo,
	}
}

func seedAuthor(t *testing.T, f fixture, first, last string) authormodel.Author {
	t.Helper()
	a, err := f.authors.Create(context.Background(), authormodel.Author{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: types.Today(),
		Nationality: "British",
		Books:       []int64{},
	})
	require.NoError(t, err)
	return a
}

func seedCategory(t *testing.T, f fixture, name string) categorymodel.Category {
	t.Helper()
	c, err := f.categories.Create(context.Background(), categorymodel.Category{Name: name})
	require.NoError(t, err)
	return c
}

func bookRequest(authorID, categoryID int64, title string, price float64, published string) *model.CreateBookRequest {
	if published == "" {
		published = types.Today().String()
	}
	return &model.CreateBookRequest{
		Title:           title,
		AuthorID:        authorID,
		CategoryID:      categoryID,
		Price:           price,
		PublicationDate: published,
		Pages:           200,
	}
}

func TestCreateRejectsDanglingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")

	_, err := f.svc.Create(ctx, bookRequest(99, category.ID, "Emma", 9.99, ""))
	assert.ErrorIs(t, err, model.ErrAuthorReference)

	_, err = f.svc.Create(ctx, bookRequest(author.ID, 99, "Emma", 9.99, ""))
	assert.ErrorIs(t, err, model.ErrCategoryReference)

	// Rejected writes must leave the collection unchanged.
	count, err := f.books.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateRefreshesAuthorAggregates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")

	req := bookRequest(author.ID, category.ID, "Emma", 9.99, "")
	req.Rating = ptr(4.5)
	created, err := f.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := f.authors.GetByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.BookCount)
	assert.Equal(t, []int64{created.ID}, got.Books)
	require.NotNil(t, got.AverageRating)
	assert.InDelta(t, 4.5, *got.AverageRating, 1e-9)
}

func TestUpdateMovesBookBetweenAuthors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old := seedAuthor(t, f, "Jane", "Austen")
	next := seedAuthor(t, f, "Charles", "Dickens")
	category := seedCategory(t, f, "Fiction")

	created, err := f.svc.Create(ctx, bookRequest(old.ID, category.ID, "Emma", 9.99, ""))
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID, bookRequest(next.ID, category.ID, "Emma", 12.50, ""))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, next.ID, updated.AuthorID)

	gotOld, err := f.authors.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Zero(t, gotOld.BookCount)
	assert.Empty(t, gotOld.Books)

	gotNext, err := f.authors.GetByID(ctx, next.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotNext.BookCount)
	assert.Equal(t, []int64{created.ID}, gotNext.Books)
}

func TestDeleteRefreshesAuthorAggregates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")

	created, err := f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Emma", 9.99, ""))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))

	_, err = f.svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	got, err := f.authors.GetByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Zero(t, got.BookCount)
	assert.Nil(t, got.AverageRating)
}

func TestPriceRangeIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")
	for _, price := range []float64{5.00, 10.00, 15.00} {
		_, err := f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Book", price, ""))
		require.NoError(t, err)
	}

	books, err := f.svc.PriceRange(ctx, 5.00, 10.00)
	require.NoError(t, err)
	assert.Len(t, books, 2) // both bounds included

	_, err = f.svc.PriceRange(ctx, 20, 10)
	assert.ErrorIs(t, err, model.ErrInvalidPriceRange)
}

func TestRecentFiltersByPublicationWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")

	fresh := types.Today().AddDays(-10).String()
	stale := types.Today().AddDays(-400).String()
	_, err := f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Fresh", 9.99, fresh))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Stale", 9.99, stale))
	require.NoError(t, err)

	books, err := f.svc.Recent(ctx, 30)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Fresh", books[0].Title)

	// Default window covers a year.
	books, err = f.svc.Recent(ctx, 365)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	_, err = f.svc.Recent(ctx, 0)
	assert.ErrorIs(t, err, model.ErrInvalidWindow)
}

func TestSortedByPriceOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")
	for _, price := range []float64{15.00, 5.00, 10.00} {
		_, err := f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Book", price, ""))
		require.NoError(t, err)
	}

	asc, err := f.svc.SortedByPrice(ctx, "asc")
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.True(t, asc[0].Price.LessThan(asc[1].Price))
	assert.True(t, asc[1].Price.LessThan(asc[2].Price))

	desc, err := f.svc.SortedByPrice(ctx, "desc")
	require.NoError(t, err)
	assert.True(t, desc[0].Price.GreaterThan(desc[2].Price))

	// Empty order defaults to ascending.
	def, err := f.svc.SortedByPrice(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, asc, def)

	_, err = f.svc.SortedByPrice(ctx, "sideways")
	assert.ErrorIs(t, err, model.ErrInvalidSortOrder)
}

func TestSortedByPricePreservesInsertionOrderOnEqualPrices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")
	for _, b := range []struct {
		title string
		price float64
	}{
		{"Costly", 15.00},
		{"First of Pair", 5.00},
		{"Second of Pair", 5.00},
		{"Cheap", 1.00},
	} {
		_, err := f.svc.Create(ctx, bookRequest(author.ID, category.ID, b.title, b.price, ""))
		require.NoError(t, err)
	}

	titles := func(books []model.Book) []string {
		out := make([]string, len(books))
		for i, b := range books {
			out[i] = b.Title
		}
		return out
	}

	// The tied pair keeps insertion order in both directions.
	asc, err := f.svc.SortedByPrice(ctx, "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheap", "First of Pair", "Second of Pair", "Costly"}, titles(asc))

	desc, err := f.svc.SortedByPrice(ctx, "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Costly", "First of Pair", "Second of Pair", "Cheap"}, titles(desc))
}

func TestCountGroupedByCategoryAndAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	austen := seedAuthor(t, f, "Jane", "Austen")
	dickens := seedAuthor(t, f, "Charles", "Dickens")
	fiction := seedCategory(t, f, "Fiction")
	history := seedCategory(t, f, "History")

	_, err := f.svc.Create(ctx, bookRequest(austen.ID, fiction.ID, "Emma", 9.99, ""))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, bookRequest(austen.ID, fiction.ID, "Persuasion", 9.99, ""))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, bookRequest(dickens.ID, history.ID, "A Child's History", 9.99, ""))
	require.NoError(t, err)

	// group_by defaults to category
	counts, err := f.svc.CountGrouped(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "category", counts.GroupBy)
	assert.Equal(t, 3, counts.Total)
	require.Len(t, counts.Groups, 2)
	assert.Equal(t, model.GroupCount{ID: fiction.ID, Count: 2}, counts.Groups[0])
	assert.Equal(t, model.GroupCount{ID: history.ID, Count: 1}, counts.Groups[1])

	counts, err = f.svc.CountGrouped(ctx, "author")
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Total)
	require.Len(t, counts.Groups, 2)
	assert.Equal(t, model.GroupCount{ID: austen.ID, Count: 2}, counts.Groups[0])

	_, err = f.svc.CountGrouped(ctx, "publisher")
	assert.ErrorIs(t, err, model.ErrInvalidGroupField)
}

func TestSearchMatchesTitleSubstring(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := seedAuthor(t, f, "Jane", "Austen")
	category := seedCategory(t, f, "Fiction")
	_, err := f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Pride and Prejudice", 9.99, ""))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, bookRequest(author.ID, category.ID, "Emma", 9.99, ""))
	require.NoError(t, err)

	books, err := f.svc.Search(ctx, "PRIDE")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Pride and Prejudice", books[0].Title)

	books, err = f.svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func ptr(f float64) *float64 { return &f }
