package service

import (
	"context"

	authormodel "bookcatalog/internal/domains/author/model"
	bookmodel "bookcatalog/internal/domains/book/model"
	categorymodel "bookcatalog/internal/domains/category/model"
	"bookcatalog/internal/domains/report/model"
)

// ServiceInterface is the reporting/export contract. The Export* methods
// return ErrNothingToExport instead of materializing a header-only document.
type ServiceInterface interface {
	BookDetails(ctx context.Context) ([]model.BookDetail, error)
	ExportBooks(ctx context.Context) ([]model.BookDetail, error)
	ExportAuthors(ctx context.Context) ([][]string, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// The report service reads all three collections; each interface below is
// satisfied by the corresponding domain repository.

type BookSource interface {
	GetAll(ctx context.Context) ([]bookmodel.Book, error)
	Count(ctx context.Context) (int, error)
}

type AuthorSource interface {
	GetAll(ctx context.Context) ([]authormodel.Author, error)
	Count(ctx context.Context) (int, error)
}

type CategorySource interface {
	GetAll(ctx context.Context) ([]categorymodel.Category, error)
	Count(ctx context.Context) (int, error)
}
