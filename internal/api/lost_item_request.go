// File: internal/api/lost_item_request.go
package api

import "time"

// swagger:model api.CreateLostItemRequest
type CreateLostItemRequest struct {
	CategoryID  string    `json:"category_id" validate:"required" example:"b3d9..."`
	ItemName    string    `json:"item_name" validate:"required" example:"Black umbrella"`
	Description string    `json:"description" validate:"required" example:"Wooden handle, left on bus 42"`
	Location    string    `json:"location" validate:"required" example:"Central Station"`
	LostDate    time.Time `json:"lost_date" validate:"required" example:"2025-05-09T15:04:05Z"`
}

// UpdateLostItemRequest 部分更新，未帶的欄位保持原值
// swagger:model api.UpdateLostItemRequest
type UpdateLostItemRequest struct {
	CategoryID  *string    `json:"category_id,omitempty"`
	ItemName    *string    `json:"item_name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	LostDate    *time.Time `json:"lost_date,omitempty"`
}
