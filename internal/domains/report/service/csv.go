package service

import (
	"encoding/csv"
	"io"

	"bookcatalog/internal/domains/report/model"
)

// BooksCSVHeader is the fixed header of the books export.
var BooksCSVHeader = []string{"Title", "Author", "Category"}

// AuthorsCSVHeader is the fixed header of the authors export.
var AuthorsCSVHeader = []string{
	"author_id", "first_name", "last_name", "bio",
	"date_of_birth", "date_of_death", "nationality",
	"created_at", "updated_at", "average_rating", "book_count", "books",
}

// WriteBooksCSV renders the join view as CSV. encoding/csv applies RFC 4180
// quoting, so titles containing the delimiter or newlines survive a
// round-trip.
func WriteBooksCSV(w io.Writer, details []model.BookDetail) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BooksCSVHeader); err != nil {
		return err
	}
	for _, d := range details {
		if err := cw.Write([]string{d.Title, d.Author, d.Category}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAuthorsCSV renders the author export rows produced by ExportAuthors.
func WriteAuthorsCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(AuthorsCSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
