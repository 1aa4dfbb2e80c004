package model

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryHasBooks    = errors.New("cannot delete category with existing books")
	ErrDuplicateCategoryID = errors.New("category with this id already exists")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	case errors.Is(err, ErrCategoryHasBooks):
		return "CATEGORY_HAS_BOOKS"
	case errors.Is(err, ErrDuplicateCategoryID):
		return "DUPLICATE_CATEGORY_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return 404
	case errors.Is(err, ErrCategoryHasBooks), errors.Is(err, ErrDuplicateCategoryID):
		return 409
	default:
		return 500
	}
}
