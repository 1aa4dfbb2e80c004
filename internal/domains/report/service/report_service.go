package service

import (
	"context"
	"strconv"
	"strings"

	"bookcatalog/internal/domains/report/model"
)

type reportService struct {
	books      BookSource
	authors    AuthorSource
	categories CategorySource
}

// NewReportService creates a new report service instance.
func NewReportService(books BookSource, authors AuthorSource, categories CategorySource) ServiceInterface {
	return &reportService{
		books:      books,
		authors:    authors,
		categories: categories,
	}
}

// BookDetails materializes the join view: every book flattened with its
// author and category display names, "Unknown" for dangling references.
func (s *reportService) BookDetails(ctx context.Context) ([]model.BookDetail, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	authorNames := make(map[int64]string, len(authors))
	for _, a := range authors {
		authorNames[a.ID] = a.FullName()
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	details := make([]model.BookDetail, 0, len(books))
	for _, b := range books {
		detail := model.BookDetail{
			Title:    b.Title,
			Author:   model.UnknownReference,
			Category: model.UnknownReference,
		}
		if name, ok := authorNames[b.AuthorID]; ok {
			detail.Author = name
		}
		if name, ok := categoryNames[b.CategoryID]; ok {
			detail.Category = name
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *reportService) ExportBooks(ctx context.Context) ([]model.BookDetail, error) {
	details, err := s.BookDetails(ctx)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, model.ErrNothingToExport
	}
	return details, nil
}

// ExportAuthors returns one row per author in the authors CSV layout; the
// books column joins owned titles with "; ".
func (s *reportService) ExportAuthors(ctx context.Context) ([][]string, error) {
	authors, err := s.authors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, model.ErrNothingToExport
	}

	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	titles := make(map[int64]string, len(books))
	for _, b := range books {
		titles[b.ID] = b.Title
	}

	rows := make([][]string, 0, len(authors))
	for _, a := range authors {
		owned := make([]string, 0, len(a.Books))
		for _, id := range a.Books {
			if t, ok := titles[id]; ok {
				owned = append(owned, t)
			}
		}

		death := ""
		if a.DateOfDeath != nil {
			death = a.DateOfDeath.String()
		}
		rating := ""
		if a.AverageRating != nil {
			rating = strconv.FormatFloat(*a.AverageRating, 'f', -1, 64)
		}

		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.FirstName,
			a.LastName,
			a.Bio,
			a.DateOfBirth.String(),
			death,
			a.Nationality,
			a.CreatedAt.String(),
			a.UpdatedAt.String(),
			rating,
			strconv.Itoa(a.BookCount),
			strings.Join(owned, "; "),
		})
	}
	return rows, nil
}

func (s *reportService) Stats(ctx context.Context) (model.Stats, error) {
	books, err := s.books.Count(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	authors, err := s.authors.Count(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	categories, err := s.categories.Count(ctx)
	if err != nil {
		return model.Stats{}, err
	}
	return model.Stats{
		TotalBooks:      books,
		TotalAuthors:    authors,
		TotalCategories: categories,
	}, nil
}
