// File: internal/handler/items/found.go
package items

import (
	"net/http"

	"lost-and-found/internal/api"
	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/middleware"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
	"lost-and-found/internal/store"
	"lost-and-found/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreateFoundItemHandler 回報拾獲物
// @Summary     回報拾獲物
// @Tags        found-items
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateFoundItemRequest true "拾獲物資料"
// @Success     201  {object} model.FoundItem
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse "分類不存在"
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /found-items [post]
func CreateFoundItemHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		var req api.CreateFoundItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := getCategoryByID(c.Request().Context(), db, req.CategoryID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		pictures := req.Pictures
		if pictures == nil {
			pictures = []string{}
		}
		item, err := createFoundItem(c.Request().Context(), db, &model.FoundItem{
			UserID:      actor.ID,
			CategoryID:  req.CategoryID,
			ItemName:    req.ItemName,
			Description: req.Description,
			Location:    req.Location,
			FoundDate:   req.FoundDate,
			Pictures:    pictures,
		})
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, actor.ID)
		return c.JSON(http.StatusCreated, item)
	}
}

// ListFoundItemsHandler 列出拾獲物
// @Summary     列出拾獲物
// @Description 支援 searchTerm、categoryId/userId/location/isReturned 過濾、分頁與排序
// @Tags        found-items
// @Produce     json
// @Success     200 {object} api.FoundItemsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /found-items [get]
func ListFoundItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		qry := query.Compile(query.Params(c.QueryParams()), store.FoundItemsQuerySpec)

		items, err := listFoundItems(c.Request().Context(), db, qry)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		total, err := countFoundItems(c.Request().Context(), db, qry)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if items == nil {
			items = []model.FoundItem{}
		}
		return c.JSON(http.StatusOK, api.FoundItemsResponse{
			Data: items,
			Meta: api.ListMeta{Page: qry.Page, Limit: qry.Limit, Total: total},
		})
	}
}

// GetFoundItemHandler 取得單一拾獲物
// @Summary     取得拾獲物
// @Tags        found-items
// @Produce     json
// @Param       item_id path     string true "拾獲物 ID"
// @Success     200     {object} model.FoundItem
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /found-items/{item_id} [get]
func GetFoundItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		item, err := getFoundItemByID(c.Request().Context(), db, c.Param("item_id"))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	}
}

// UpdateFoundItemHandler 更新拾獲物，未帶的欄位保持原值
// is_returned 不在此端點更動，只由認領核可流程寫入
// @Summary     更新拾獲物
// @Tags        found-items
// @Accept      json
// @Produce     json
// @Param       item_id path     string                     true "拾獲物 ID"
// @Param       body    body     api.UpdateFoundItemRequest true "更新欄位"
// @Success     200     {object} model.FoundItem
// @Failure     400     {object} api.ErrorResponse
// @Failure     403     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /found-items/{item_id} [put]
func UpdateFoundItemHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		var req api.UpdateFoundItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		item, err := getFoundItemByID(c.Request().Context(), db, c.Param("item_id"))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if err := authorize(actor, item.UserID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		if req.CategoryID != nil {
			if _, err := getCategoryByID(c.Request().Context(), db, *req.CategoryID); err != nil {
				return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
			}
			item.CategoryID = *req.CategoryID
		}
		if req.ItemName != nil {
			item.ItemName = *req.ItemName
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Location != nil {
			item.Location = *req.Location
		}
		if req.FoundDate != nil {
			item.FoundDate = *req.FoundDate
		}
		if req.Pictures != nil {
			item.Pictures = *req.Pictures
		}

		if err := updateFoundItem(c.Request().Context(), db, item); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, item.UserID)
		return c.JSON(http.StatusOK, item)
	}
}

// DeleteFoundItemHandler 刪除拾獲物
// @Summary     刪除拾獲物
// @Tags        found-items
// @Param       item_id path string true "拾獲物 ID"
// @Success     204     "No Content"
// @Failure     403     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /found-items/{item_id} [delete]
func DeleteFoundItemHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		item, err := getFoundItemByID(c.Request().Context(), db, c.Param("item_id"))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if err := authorize(actor, item.UserID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		if err := deleteFoundItem(c.Request().Context(), db, item.ID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, item.UserID)
		return c.NoContent(http.StatusNoContent)
	}
}
