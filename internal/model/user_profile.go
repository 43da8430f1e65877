// File: internal/model/user_profile.go
package model

import "time"

// UserProfile 與 User 一對一，於註冊交易中一併建立
type UserProfile struct {
	UserID    string    `db:"user_id" json:"user_id"`
	Bio       string    `db:"bio" json:"bio"`
	Age       int       `db:"age" json:"age"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
