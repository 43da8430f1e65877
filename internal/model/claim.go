// File: internal/model/claim.go
package model

import "time"

// ClaimStatus 認領狀態，PENDING 為初始狀態，APPROVED/REJECTED 為終止狀態
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

// Resolved 判斷狀態是否為終止狀態
func (s ClaimStatus) Resolved() bool {
	return s == ClaimApproved || s == ClaimRejected
}

type Claim struct {
	ID          string      `db:"id" json:"id"`
	UserID      string      `db:"user_id" json:"user_id"`
	FoundItemID string      `db:"found_item_id" json:"found_item_id"`
	Status      ClaimStatus `db:"status" json:"status"`
	Details     string      `db:"details" json:"details"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}
