// File: internal/service/profile.go
package service

import (
	"context"

	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/store"
)

// recentItemLimit 個人頁各區塊顯示的最近筆數
const recentItemLimit = 4

var (
	getProfileWithUser = store.GetUserProfileWithUser
	updateProfileRow   = store.UpdateUserProfile
	recentLostItems    = store.ListRecentLostItemsByUser
	recentFoundItems   = store.ListRecentFoundItemsByUser
	recentClaims       = store.ListRecentClaimsByUser
	countLostItems     = store.CountLostItemsByUser
	countFoundItems    = store.CountFoundItemsByUser
	countClaims        = store.CountClaimsByUser
)

// ProfileCounts 使用者三類資料的總量
type ProfileCounts struct {
	LostItems  int `json:"lost_items"`
	FoundItems int `json:"found_items"`
	Claims     int `json:"claims"`
}

// ProfileView 個人頁聚合視圖：個人檔案、公開使用者欄位、
// 各類最近四筆與總數
type ProfileView struct {
	Profile    model.UserProfile `json:"profile"`
	User       model.User        `json:"user"`
	LostItems  []model.LostItem  `json:"lost_items"`
	FoundItems []model.FoundItem `json:"found_items"`
	Claims     []model.Claim     `json:"claims"`
	Counts     ProfileCounts     `json:"counts"`
}

// GetUserProfile 組合個人頁視圖
// 各讀取彼此獨立，讀取之間允許短暫不一致，因此不使用交易
func GetUserProfile(ctx context.Context, db database.DB, userID string) (*ProfileView, error) {
	profile, user, err := getProfileWithUser(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Profile:    *profile,
		User:       *user,
		LostItems:  []model.LostItem{},
		FoundItems: []model.FoundItem{},
		Claims:     []model.Claim{},
	}

	if items, err := recentLostItems(ctx, db, userID, recentItemLimit); err != nil {
		return nil, err
	} else if items != nil {
		view.LostItems = items
	}
	if items, err := recentFoundItems(ctx, db, userID, recentItemLimit); err != nil {
		return nil, err
	} else if items != nil {
		view.FoundItems = items
	}
	if claims, err := recentClaims(ctx, db, userID, recentItemLimit); err != nil {
		return nil, err
	} else if claims != nil {
		view.Claims = claims
	}

	if view.Counts.LostItems, err = countLostItems(ctx, db, userID); err != nil {
		return nil, err
	}
	if view.Counts.FoundItems, err = countFoundItems(ctx, db, userID); err != nil {
		return nil, err
	}
	if view.Counts.Claims, err = countClaims(ctx, db, userID); err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateUserProfile 更新個人檔案，回傳更新後的檔案與公開使用者欄位
func UpdateUserProfile(ctx context.Context, db database.DB, userID, bio string, age int) (*model.UserProfile, *model.User, error) {
	profile, err := updateProfileRow(ctx, db, userID, bio, age)
	if err != nil {
		return nil, nil, err
	}
	user, err := getUserByID(ctx, db, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, user, nil
}
