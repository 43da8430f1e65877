// File: internal/handler/users/users.go
package users

import (
	"context"
	"net/http"

	"lost-and-found/internal/api"
	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/query"
	"lost-and-found/internal/service"
	"lost-and-found/internal/store"
	"lost-and-found/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listUsers         = store.ListUsers
	countUsers        = store.CountUsers
	toggleUserRole    = service.ToggleUserRole
	toggleUserStatus  = service.ToggleUserStatus
	getUserProfile    = service.GetUserProfile
	updateUserProfile = service.UpdateUserProfile
)

// invalidateProfile 透過工作池非同步清除個人頁快取
func invalidateProfile(rdb cache.Cache, wp worker.Pool, userID string) {
	wp.Submit(func() {
		rdb.Del(context.Background(), cache.ProfileKey(userID))
	})
}

// ListUsersHandler 管理員列出使用者
// @Summary     列出使用者
// @Description 支援 searchTerm (name/username/email)、分頁與排序
// @Tags        users
// @Produce     json
// @Param       searchTerm query    string false "搜尋關鍵字"
// @Param       page       query    int    false "頁碼"
// @Param       limit      query    int    false "每頁筆數"
// @Success     200        {object} api.UsersResponse
// @Failure     500        {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		qry := query.Compile(query.Params(c.QueryParams()), store.UsersQuerySpec)

		users, err := listUsers(c.Request().Context(), db, qry)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		total, err := countUsers(c.Request().Context(), db, qry)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		data := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			data = append(data, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, api.UsersResponse{
			Data: data,
			Meta: api.ListMeta{Page: qry.Page, Limit: qry.Limit, Total: total},
		})
	}
}

// ToggleUserRoleHandler 管理員切換使用者角色 (USER <-> ADMIN)
// @Summary     切換使用者角色
// @Tags        users
// @Produce     json
// @Param       user_id path     string true "使用者 ID"
// @Success     200     {object} api.UserResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/role [patch]
func ToggleUserRoleHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("user_id")
		u, err := toggleUserRole(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		invalidateProfile(rdb, wp, userID)
		return c.JSON(http.StatusOK, api.NewUserResponse(*u))
	}
}

// ToggleUserStatusHandler 管理員切換帳號狀態 (ACTIVE <-> BLOCKED)
// @Summary     切換帳號狀態
// @Tags        users
// @Produce     json
// @Param       user_id path     string true "使用者 ID"
// @Success     200     {object} api.UserResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id}/status [patch]
func ToggleUserStatusHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("user_id")
		u, err := toggleUserStatus(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		invalidateProfile(rdb, wp, userID)
		return c.JSON(http.StatusOK, api.NewUserResponse(*u))
	}
}
