package model

import (
	"bookcatalog/internal/shared/types"
)

// Author represents the author entity as stored in the authors collection.
//
// book_count, average_rating and books are denormalized caches over the books
// collection: every book mutation that changes authorship or rating refreshes
// them through the repository's RefreshAggregates. They are never accepted
// from callers.
type Author struct {
	ID          int64       `json:"author_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Bio         string      `json:"bio"`
	DateOfBirth types.Date  `json:"date_of_birth"`
	DateOfDeath *types.Date `json:"date_of_death,omitempty"`
	Nationality string      `json:"nationality"`
	CreatedAt   types.Date  `json:"created_at"`
	UpdatedAt   types.Date  `json:"updated_at"`

	// Aggregates (server-computed)
	AverageRating *float64 `json:"average_rating"`
	BookCount     int      `json:"book_count"`
	Books         []int64  `json:"books"`
}

// FullName returns the display name used by search and reporting views.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
