// File: internal/api/category_request.go
package api

// swagger:model api.CreateCategoryRequest
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required" example:"Electronics"`
}
