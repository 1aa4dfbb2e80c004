package model

import "errors"

// UnknownReference is the sentinel display name for dangling foreign keys.
// The join view is a reporting surface over potentially stale data, so it
// tolerates what the write paths reject.
const UnknownReference = "Unknown"

// ErrNothingToExport - export requested against an empty view; the caller
// decides how to present it instead of shipping a header-only file.
var ErrNothingToExport = errors.New("nothing to export")

// BookDetail is one row of the cross-collection join view.
type BookDetail struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// Stats - GET /v1/stats grand totals.
type Stats struct {
	TotalBooks      int `json:"total_books"`
	TotalAuthors    int `json:"total_authors"`
	TotalCategories int `json:"total_categories"`
}
