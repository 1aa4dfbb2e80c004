package model

import "errors"

var (
	// Business rule errors
	ErrAuthorNotFound    = errors.New("author not found")
	ErrAuthorHasBooks    = errors.New("cannot delete author with existing books")
	ErrDuplicateAuthorID = errors.New("author with this id already exists")
	ErrInvalidLimit      = errors.New("limit must be greater than zero")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorHasBooks):
		return "AUTHOR_HAS_BOOKS"
	case errors.Is(err, ErrDuplicateAuthorID):
		return "DUPLICATE_AUTHOR_ID"
	case errors.Is(err, ErrInvalidLimit):
		return "INVALID_LIMIT"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorHasBooks), errors.Is(err, ErrDuplicateAuthorID):
		return 409
	case errors.Is(err, ErrInvalidLimit):
		return 400
	default:
		return 500
	}
}
