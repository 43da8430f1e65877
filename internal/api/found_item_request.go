// File: internal/api/found_item_request.go
package api

import "time"

// swagger:model api.CreateFoundItemRequest
type CreateFoundItemRequest struct {
	CategoryID  string    `json:"category_id" validate:"required" example:"b3d9..."`
	ItemName    string    `json:"item_name" validate:"required" example:"Silver keychain"`
	Description string    `json:"description" validate:"required" example:"Three keys and a bottle opener"`
	Location    string    `json:"location" validate:"required" example:"Park entrance"`
	FoundDate   time.Time `json:"found_date" validate:"required" example:"2025-05-09T15:04:05Z"`
	Pictures    []string  `json:"pictures" example:"https://img.example.com/a.jpg"`
}

// UpdateFoundItemRequest 部分更新，未帶的欄位保持原值
// swagger:model api.UpdateFoundItemRequest
type UpdateFoundItemRequest struct {
	CategoryID  *string    `json:"category_id,omitempty"`
	ItemName    *string    `json:"item_name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	FoundDate   *time.Time `json:"found_date,omitempty"`
	Pictures    *[]string  `json:"pictures,omitempty"`
}
