// File: internal/handler/users/my_profile.go
package users

import (
	"encoding/json"
	"net/http"
	"time"

	"lost-and-found/internal/api"
	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/middleware"
	"lost-and-found/internal/worker"

	"github.com/labstack/echo/v4"
)

// profileCacheTTL 個人頁快取存活時間，容忍短暫過期資料
const profileCacheTTL = 30 * time.Second

// GetMyProfileHandler 取得當前使用者的個人頁聚合視圖
// @Summary     取得個人頁
// @Description 個人檔案、公開使用者欄位、各類最近四筆與總數；結果快取於 Redis
// @Tags        profile
// @Produce     json
// @Success     200 {object} service.ProfileView
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /my-profile [get]
func GetMyProfileHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)
		key := cache.ProfileKey(actor.ID)

		if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, raw)
		}

		view, err := getUserProfile(c.Request().Context(), db, actor.ID)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		if raw, err := json.Marshal(view); err == nil {
			rdb.Set(c.Request().Context(), key, raw, profileCacheTTL)
		}
		return c.JSON(http.StatusOK, view)
	}
}

// UpdateMyProfileHandler 更新當前使用者的個人檔案
// @Summary     更新個人檔案
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       body body     api.UpdateMyProfileRequest true "個人檔案"
// @Success     200  {object} api.ProfileResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /my-profile [put]
func UpdateMyProfileHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		var req api.UpdateMyProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		profile, user, err := updateUserProfile(c.Request().Context(), db, actor.ID, req.Bio, req.Age)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, actor.ID)
		return c.JSON(http.StatusOK, api.ProfileResponse{
			Profile: *profile,
			User:    api.NewUserResponse(*user),
		})
	}
}
