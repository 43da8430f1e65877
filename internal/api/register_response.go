// File: internal/api/register_response.go
package api

import "lost-and-found/internal/model"

// swagger:model api.RegisterResponse
type RegisterResponse struct {
	User    UserResponse      `json:"user"`
	Profile model.UserProfile `json:"profile"`
}
