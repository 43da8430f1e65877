// File: internal/api/register_request.go
package api

// RegisterRequest 註冊用欄位；不接受角色欄位，新帳號一律為 USER
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"Secret123!"`
	Bio      string `json:"bio" example:"keeps losing umbrellas"`
	Age      int    `json:"age" validate:"gte=0,lte=150" example:"30"`
}
