// File: internal/cache/keys.go
package cache

// CategoriesKey 分類清單快取鍵
const CategoriesKey = "categories"

// ProfileKey 個人頁聚合視圖的快取鍵
func ProfileKey(userID string) string {
	return "profile:" + userID
}
