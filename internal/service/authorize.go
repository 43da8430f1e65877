// File: internal/service/authorize.go
package service

import (
	"lost-and-found/internal/apperr"
	"lost-and-found/internal/model"
)

// Actor 經認證的操作者身分，由路由層自 JWT 取出後傳入
type Actor struct {
	ID   string
	Role model.Role
}

// Authorize 僅允許資源擁有者本人或管理員變更資源
// 純判斷函式，無任何副作用
func Authorize(actor Actor, ownerID string) error {
	if actor.Role.IsAdmin() || actor.ID == ownerID {
		return nil
	}
	return apperr.Authorization("you are not allowed to modify this resource")
}
