// File: internal/api/claim_response.go
package api

import "lost-and-found/internal/model"

// swagger:model api.ClaimsResponse
type ClaimsResponse struct {
	Data []model.Claim `json:"data"`
	Meta ListMeta      `json:"meta"`
}
