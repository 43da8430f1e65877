// File: internal/service/users.go
package service

import (
	"context"
	"fmt"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/store"
)

var (
	getUserByUsername = store.GetUserByUsername
	getUserByEmail    = store.GetUserByEmail
	getUserByID       = store.GetUserByID
	createUserRow     = store.CreateUser
	createProfileRow  = store.CreateUserProfile
	updateUserRole    = store.UpdateUserRole
	updateUserStatus  = store.UpdateUserStatus
	hashPassword      = HashPassword
	withinTx          = database.WithinTx
)

// CreateUserInput 註冊所需欄位；刻意不含角色欄位，
// 新帳號一律以 USER 建立，管理員只能由既有管理員切換產生
type CreateUserInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Bio      string
	Age      int
}

// CreateUser 建立使用者與個人檔案
// 先以使用者名稱與 Email 各做一次唯一性預檢，通過後在單一交易內
// 寫入 users 與 user_profiles 兩列；任何一筆失敗即全數回滾，
// 不會留下孤兒資料。預檢與寫入之間的競態由資料庫唯一性約束把關，
// 約束違反會由 store 層轉成與預檢相同的 Conflict
func CreateUser(ctx context.Context, db database.DB, in CreateUserInput) (*model.User, *model.UserProfile, error) {
	if _, err := getUserByUsername(ctx, db, in.Username); err == nil {
		return nil, nil, apperr.Conflict("username already exists")
	} else if !apperr.IsNotFound(err) {
		return nil, nil, err
	}
	if _, err := getUserByEmail(ctx, db, in.Email); err == nil {
		return nil, nil, apperr.Conflict("this email is already registered")
	} else if !apperr.IsNotFound(err) {
		return nil, nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("CreateUser: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Status:       model.StatusActive,
	}
	profile := &model.UserProfile{Bio: in.Bio, Age: in.Age}

	err = withinTx(ctx, db, func(q database.Querier) error {
		if _, err := createUserRow(ctx, q, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		_, err := createProfileRow(ctx, q, profile)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// ToggleUserRole 切換使用者角色 (USER <-> ADMIN)，回傳更新後的使用者
func ToggleUserRole(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	u, err := getUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	u.Role = u.Role.Toggled()
	if err := updateUserRole(ctx, db, u.ID, u.Role); err != nil {
		return nil, err
	}
	return u, nil
}

// ToggleUserStatus 切換帳號狀態 (ACTIVE <-> BLOCKED)，回傳更新後的使用者
func ToggleUserStatus(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	u, err := getUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}
	u.Status = u.Status.Toggled()
	if err := updateUserStatus(ctx, db, u.ID, u.Status); err != nil {
		return nil, err
	}
	return u, nil
}
