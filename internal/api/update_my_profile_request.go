// File: internal/api/update_my_profile_request.go
package api

// swagger:model api.UpdateMyProfileRequest
type UpdateMyProfileRequest struct {
	Bio string `json:"bio" example:"still losing umbrellas"`
	Age int    `json:"age" validate:"gte=0,lte=150" example:"31"`
}
