// File: internal/api/found_item_response.go
package api

import "lost-and-found/internal/model"

// swagger:model api.FoundItemsResponse
type FoundItemsResponse struct {
	Data []model.FoundItem `json:"data"`
	Meta ListMeta          `json:"meta"`
}
