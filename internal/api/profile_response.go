// File: internal/api/profile_response.go
package api

import "lost-and-found/internal/model"

// ProfileResponse 個人檔案更新後的響應
// swagger:model api.ProfileResponse
type ProfileResponse struct {
	Profile model.UserProfile `json:"profile"`
	User    UserResponse      `json:"user"`
}
