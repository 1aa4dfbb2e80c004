package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MaxNameLength = 100

// Category represents the category entity. Identifiers are server-assigned,
// the same max+1 policy as the other collections.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryRequest - POST /v1/categories and PUT /v1/categories/:id.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}

// CategoryWithCount annotates a category with the number of books filed
// under it; used by the list endpoint.
type CategoryWithCount struct {
	Category
	BookCount int `json:"book_count"`
}
