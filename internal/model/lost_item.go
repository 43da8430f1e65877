// File: internal/model/lost_item.go
package model

import "time"

type LostItem struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	CategoryID  string    `db:"category_id" json:"category_id"`
	ItemName    string    `db:"item_name" json:"item_name"`
	Description string    `db:"description" json:"description"`
	Location    string    `db:"location" json:"location"`
	LostDate    time.Time `db:"lost_date" json:"lost_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
