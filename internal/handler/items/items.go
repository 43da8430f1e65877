// File: internal/handler/items/items.go
// Package items 遺失物與拾獲物的 CRUD 處理器
// 變更操作僅限擁有者本人或管理員
package items

import (
	"context"

	"lost-and-found/internal/cache"
	"lost-and-found/internal/service"
	"lost-and-found/internal/store"
	"lost-and-found/internal/worker"
)

var (
	getCategoryByID = store.GetCategoryByID
	authorize       = service.Authorize

	createLostItem   = store.CreateLostItem
	getLostItemByID  = store.GetLostItemByID
	listLostItems    = store.ListLostItems
	countLostItems   = store.CountLostItems
	updateLostItem   = store.UpdateLostItem
	deleteLostItem   = store.DeleteLostItem
	createFoundItem  = store.CreateFoundItem
	getFoundItemByID = store.GetFoundItemByID
	listFoundItems   = store.ListFoundItems
	countFoundItems  = store.CountFoundItems
	updateFoundItem  = store.UpdateFoundItem
	deleteFoundItem  = store.DeleteFoundItem
)

// invalidateProfile 物品異動後清除擁有者的個人頁快取
func invalidateProfile(rdb cache.Cache, wp worker.Pool, userID string) {
	wp.Submit(func() {
		rdb.Del(context.Background(), cache.ProfileKey(userID))
	})
}
