package domain

import (
	"errors"
)

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessGetCategory    = "category retrieved successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedGetCategory    = "failed to retrieve category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound = errors.New("category not found")

	DefaultCategories = []string{"Food", "Travel", "Rent", "Utilities", "Entertainment", "Study Material"}
)

type (
	CategoryRequest struct {
		Name string `json:"name" validate:"required,max=50"`
	}

	CategoryView struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
