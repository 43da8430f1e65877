// File: internal/api/user_response.go
package api

import (
	"time"

	"lost-and-found/internal/model"
)

// UserResponse 對外公開的使用者欄位，不含密碼哈希
// swagger:model api.UserResponse
type UserResponse struct {
	ID        string       `json:"id" example:"5f0f1c3e-2b3a-4a1d-9a7e-1d2c3b4a5f6e"`
	Name      string       `json:"name" example:"Alice"`
	Username  string       `json:"username" example:"alice"`
	Email     string       `json:"email" example:"alice@example.com"`
	Role      model.Role   `json:"role" example:"USER"`
	Status    model.Status `json:"status" example:"ACTIVE"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewUserResponse 由 model.User 轉出響應模型
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// swagger:model api.UsersResponse
type UsersResponse struct {
	Data []UserResponse `json:"data"`
	Meta ListMeta       `json:"meta"`
}
