// File: internal/model/user.go
package model

import "time"

// Role 使用者角色
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsAdmin 判斷角色是否具管理員權限
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Toggled 回傳切換後的角色 (USER <-> ADMIN)
func (r Role) Toggled() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

// Status 帳號狀態
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

// IsBlocked 判斷帳號是否已停權
func (s Status) IsBlocked() bool {
	return s == StatusBlocked
}

// Toggled 回傳切換後的狀態 (ACTIVE <-> BLOCKED)
func (s Status) Toggled() Status {
	if s == StatusBlocked {
		return StatusActive
	}
	return StatusBlocked
}

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Status       Status    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
