package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog/internal/shared/types"
)

const (
	MaxNameLength = 100
	MaxBioLength  = 5000
)

// CreateAuthorRequest - POST /v1/authors
// Also the full payload for PUT /v1/authors/:id (updates are wholesale, no
// partial patch anywhere in this API).
type CreateAuthorRequest struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Bio         string  `json:"bio"`
	DateOfBirth string  `json:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death,omitempty"`
	Nationality string  `json:"nationality"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength)),
		validation.Field(&r.DateOfBirth,
			validation.Required.Error("date of birth is required"),
			validation.Date(types.DateLayout).Error("must be a YYYY-MM-DD date"),
		),
		validation.Field(&r.DateOfDeath,
			validation.Date(types.DateLayout).Error("must be a YYYY-MM-DD date"),
		),
		validation.Field(&r.Nationality, validation.Required.Error("nationality is required")),
	)
}

// ToEntity builds a new Author from the request. Identifier, timestamps and
// aggregates are assigned by the service/repository, not here.
func (r CreateAuthorRequest) ToEntity() Author {
	a := Author{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Bio:         r.Bio,
		Nationality: r.Nationality,
		Books:       []int64{},
	}
	a.DateOfBirth, _ = types.ParseDate(r.DateOfBirth)
	if r.DateOfDeath != nil {
		if d, err := types.ParseDate(*r.DateOfDeath); err == nil {
			a.DateOfDeath = &d
		}
	}
	return a
}

// BulkCreateRequest - POST /v1/authors/bulk
// Items may carry an explicit author_id (import use case); zero means
// server-assigned.
type BulkCreateRequest struct {
	Authors []BulkAuthorItem `json:"authors"`
}

type BulkAuthorItem struct {
	AuthorID int64 `json:"author_id,omitempty"`
	CreateAuthorRequest
}

func (r BulkCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Authors,
			validation.Required.Error("authors list is required"),
			validation.Length(1, 100),
		),
	)
}

// BulkCreateResponse reports per-item outcomes; a bad item does not abort
// the rest of the batch.
type BulkCreateResponse struct {
	Inserted []AuthorResponse `json:"inserted"`
	Errors   []BulkError      `json:"errors,omitempty"`
}

type BulkError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// AuthorResponse mirrors the stored entity plus the computed display name.
type AuthorResponse struct {
	ID            int64       `json:"author_id"`
	Name          string      `json:"name"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Bio           string      `json:"bio"`
	DateOfBirth   types.Date  `json:"date_of_birth"`
	DateOfDeath   *types.Date `json:"date_of_death,omitempty"`
	Nationality   string      `json:"nationality"`
	CreatedAt     types.Date  `json:"created_at"`
	UpdatedAt     types.Date  `json:"updated_at"`
	AverageRating *float64    `json:"average_rating"`
	BookCount     int         `json:"book_count"`
	Books         []int64     `json:"books"`
}

func (a Author) ToResponse() AuthorResponse {
	books := a.Books
	if books == nil {
		books = []int64{}
	}
	return AuthorResponse{
		ID:            a.ID,
		Name:          a.FullName(),
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Bio:           a.Bio,
		DateOfBirth:   a.DateOfBirth,
		DateOfDeath:   a.DateOfDeath,
		Nationality:   a.Nationality,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		AverageRating: a.AverageRating,
		BookCount:     a.BookCount,
		Books:         books,
	}
}

// OwnedBook is the slice of book data the author views expose.
type OwnedBook struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Rating *float64 `json:"rating,omitempty"`
}

// AuthorBooksResponse - GET /v1/authors/:id/books
type AuthorBooksResponse struct {
	Author string      `json:"author"`
	Books  []OwnedBook `json:"books"`
}

// AuthorSummary - GET /v1/authors/:id/summary
type AuthorSummary struct {
	AuthorID      int64       `json:"author_id"`
	Name          string      `json:"name"`
	NumberOfBooks int         `json:"number_of_books"`
	Books         []OwnedBook `json:"books"`
}

// AuthorStatistics - GET /v1/authors/:id/statistics
// AverageRating is null (not zero) when no owned book carries a rating.
type AuthorStatistics struct {
	AuthorID      int64    `json:"author_id"`
	Name          string   `json:"name"`
	BookCount     int      `json:"book_count"`
	AverageRating *float64 `json:"average_rating"`
}
