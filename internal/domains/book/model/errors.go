package model

import "errors"

var (
	// Business rule errors
	ErrBookNotFound      = errors.New("book not found")
	ErrDuplicateBookID   = errors.New("book with this id already exists")
	ErrAuthorReference   = errors.New("referenced author does not exist")
	ErrCategoryReference = errors.New("referenced category does not exist")

	// Query errors
	ErrInvalidPriceRange = errors.New("min_price cannot exceed max_price")
	ErrInvalidWindow     = errors.New("days must be greater than zero")
	ErrInvalidGroupField = errors.New("group_by must be category or author")
	ErrInvalidSortOrder  = errors.New("order must be asc or desc")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateBookID):
		return "DUPLICATE_BOOK_ID"
	case errors.Is(err, ErrAuthorReference), errors.Is(err, ErrCategoryReference):
		return "INVALID_REFERENCE"
	case errors.Is(err, ErrInvalidPriceRange):
		return "INVALID_PRICE_RANGE"
	case errors.Is(err, ErrInvalidWindow):
		return "INVALID_WINDOW"
	case errors.Is(err, ErrInvalidGroupField):
		return "INVALID_GROUP_FIELD"
	case errors.Is(err, ErrInvalidSortOrder):
		return "INVALID_SORT_ORDER"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateBookID):
		return 409
	case errors.Is(err, ErrAuthorReference),
		errors.Is(err, ErrCategoryReference),
		errors.Is(err, ErrInvalidPriceRange),
		errors.Is(err, ErrInvalidWindow),
		errors.Is(err, ErrInvalidGroupField),
		errors.Is(err, ErrInvalidSortOrder):
		return 400
	default:
		return 500
	}
}
