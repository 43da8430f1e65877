// File: internal/model/found_item.go
package model

import "time"

// FoundItem 拾獲物品；IsReturned 一旦為 true 即不可再受理新的認領
type FoundItem struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	CategoryID  string    `db:"category_id" json:"category_id"`
	ItemName    string    `db:"item_name" json:"item_name"`
	Description string    `db:"description" json:"description"`
	Location    string    `db:"location" json:"location"`
	FoundDate   time.Time `db:"found_date" json:"found_date"`
	Pictures    []string  `db:"pictures" json:"pictures"`
	IsReturned  bool      `db:"is_returned" json:"is_returned"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
