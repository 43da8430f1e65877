// File: internal/api/error_response.go
package api

import (
	"net/http"

	"lost-and-found/internal/apperr"
)

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message"`
}

// HTTPStatus 將領域錯誤分類對應為 HTTP 狀態碼
func HTTPStatus(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
