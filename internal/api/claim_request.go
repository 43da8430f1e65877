// File: internal/api/claim_request.go
package api

// swagger:model api.CreateClaimRequest
type CreateClaimRequest struct {
	FoundItemID string `json:"found_item_id" validate:"required" example:"7c2a..."`
	Details     string `json:"details" validate:"required" example:"It has my initials on the handle"`
}

// ResolveClaimRequest 只接受終止狀態
// swagger:model api.ResolveClaimRequest
type ResolveClaimRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED" example:"APPROVED"`
}
