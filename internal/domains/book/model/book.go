package model

import (
	"github.com/shopspring/decimal"

	"bookcatalog/internal/shared/types"
)

// Book represents the book entity as stored in the books collection.
// author_id and category_id are foreign keys validated on every write path;
// the reporting views tolerate dangling values, the write paths do not.
type Book struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	AuthorID        int64           `json:"author_id"`
	CategoryID      int64           `json:"category_id"`
	ISBN            *string         `json:"isbn,omitempty"`
	Price           decimal.Decimal `json:"price"`
	PublicationDate types.Date      `json:"publication_date"`
	Description     *string         `json:"description,omitempty"`
	Pages           int             `json:"pages"`
	AvailableCopies int             `json:"available_copies"`
	Rating          *float64        `json:"rating,omitempty"`
}

// GroupField names the foreign keys /books/count can aggregate over.
type GroupField string

const (
	GroupByCategory GroupField = "category"
	GroupByAuthor   GroupField = "author"
)

func (f GroupField) IsValid() bool {
	return f == GroupByCategory || f == GroupByAuthor
}

// Key extracts the grouping key from a book.
func (f GroupField) Key(b Book) int64 {
	if f == GroupByAuthor {
		return b.AuthorID
	}
	return b.CategoryID
}
