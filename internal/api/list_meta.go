// File: internal/api/list_meta.go
package api

// ListMeta 列表端點共用的分頁資訊
// swagger:model api.ListMeta
type ListMeta struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Total int `json:"total" example:"42"`
}
