package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"bookcatalog/internal/shared/types"
)

const (
	MaxTitleLength = 200
	MinISBNLength  = 10
	MaxISBNLength  = 13
)

// CreateBookRequest - POST /v1/books and PUT /v1/books/:id (wholesale update).
type CreateBookRequest struct {
	Title           string   `json:"title"`
	AuthorID        int64    `json:"author_id"`
	CategoryID      int64    `json:"category_id"`
	ISBN            *string  `json:"isbn,omitempty"`
	Price           float64  `json:"price"`
	PublicationDate string   `json:"publication_date"`
	Description     *string  `json:"description,omitempty"`
	Pages           int      `json:"pages"`
	AvailableCopies *int     `json:"available_copies,omitempty"` // defaults to 1
	Rating          *float64 `json:"rating,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(int64(1)).Error("author_id must be positive"),
		),
		validation.Field(&r.CategoryID,
			validation.Required.Error("category_id is required"),
			validation.Min(int64(1)).Error("category_id must be positive"),
		),
		validation.Field(&r.ISBN,
			validation.Length(MinISBNLength, MaxISBNLength).Error("isbn must be 10-13 characters"),
		),
		validation.Field(&r.Price,
			validation.Required.Error("price is required"),
			validation.Min(0.0).Exclusive().Error("price must be greater than zero"),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("publication_date is required"),
			validation.Date(types.DateLayout).Error("must be a YYYY-MM-DD date"),
		),
		validation.Field(&r.Pages,
			validation.Required.Error("pages is required"),
			validation.Min(1).Error("pages must be positive"),
		),
		validation.Field(&r.AvailableCopies,
			validation.Min(0).Error("available_copies cannot be negative"),
		),
		validation.Field(&r.Rating,
			validation.Min(0.0),
			validation.Max(5.0),
		),
	)
}

// ToEntity builds a Book from the request; the identifier is assigned by the
// repository.
func (r CreateBookRequest) ToEntity() Book {
	copies := 1
	if r.AvailableCopies != nil {
		copies = *r.AvailableCopies
	}
	b := Book{
		Title:           r.Title,
		AuthorID:        r.AuthorID,
		CategoryID:      r.CategoryID,
		ISBN:            r.ISBN,
		Price:           decimal.NewFromFloat(r.Price),
		Description:     r.Description,
		Pages:           r.Pages,
		AvailableCopies: copies,
		Rating:          r.Rating,
	}
	b.PublicationDate, _ = types.ParseDate(r.PublicationDate)
	return b
}

// BookResponse exposes price as a plain float, the way the API always has.
type BookResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	AuthorID        int64      `json:"author_id"`
	CategoryID      int64      `json:"category_id"`
	ISBN            *string    `json:"isbn,omitempty"`
	Price           float64    `json:"price"`
	PublicationDate types.Date `json:"publication_date"`
	Description     *string    `json:"description,omitempty"`
	Pages           int        `json:"pages"`
	AvailableCopies int        `json:"available_copies"`
	Rating          *float64   `json:"rating,omitempty"`
}

func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		CategoryID:      b.CategoryID,
		ISBN:            b.ISBN,
		Price:           b.Price.InexactFloat64(),
		PublicationDate: b.PublicationDate,
		Description:     b.Description,
		Pages:           b.Pages,
		AvailableCopies: b.AvailableCopies,
		Rating:          b.Rating,
	}
}

// ToResponses converts a slice preserving order.
func ToResponses(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = b.ToResponse()
	}
	return out
}

// GroupCount is one row of the /books/count aggregate.
type GroupCount struct {
	ID    int64 `json:"id"`
	Count int   `json:"count"`
}

// CountResponse - GET /v1/books/count
type CountResponse struct {
	GroupBy string       `json:"group_by"`
	Total   int          `json:"total"`
	Groups  []GroupCount `json:"groups"`
}
