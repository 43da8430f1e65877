// File: internal/api/lost_item_response.go
package api

import "lost-and-found/internal/model"

// swagger:model api.LostItemsResponse
type LostItemsResponse struct {
	Data []model.LostItem `json:"data"`
	Meta ListMeta         `json:"meta"`
}
