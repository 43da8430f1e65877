// File: internal/handler/items/lost.go
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

// CreateLostItemHandler 回報遺失物
// @Summary     回報遺失物
// @Tags        lost-items
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateLostItemRequest true "遺失物資料"
// @Success     201  {object} model.LostItem
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse "分類不存在"
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /lost-items [post]
func CreateLostItemHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		var req api.CreateLostItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := getCategoryByID(c.Request().Context(), db, req.CategoryID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		item, err := createLostItem(c.Request().Context(), db, &model.LostItem{
			UserID:      actor.ID,
			CategoryID:  req.CategoryID,
			ItemName:    req.ItemName,
			Description: req.Description,
			Location:    req.Location,
			LostDate:    req.LostDate,
		})
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, actor.ID)
		return c.JSON(http.StatusCreated, item)
	}
}

// ListLostItemsHandler 列出遺失物
// @Summary     列出遺失物
// @Description 支援 searchTerm (item_name/description)、categoryId/userId/location 過濾、分頁與排序
// @Tags        lost-items
// @Produce     json
// @Success     200 {object} api.LostItemsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /lost-items [get]
func ListLostItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		qry := query.Compile(query.Params(c.QueryParams()), store.LostItemsQuerySpec)

		items, err := listLostItems(c.Request().Context(), db, qry)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		total, err := countLostItems(c.Request().Context(), db, qry)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if items == nil {
			items = []model.LostItem{}
		}
		return c.JSON(http.StatusOK, api.LostItemsResponse{
			Data: items,
			Meta: api.ListMeta{Page: qry.Page, Limit: qry.Limit, Total: total},
		})
	}
}

// GetLostItemHandler 取得單一遺失物
// @Summary     取得遺失物
// @Tags        lost-items
// @Produce     json
// @Param       item_id path     string true "遺失物 ID"
// @Success     200     {object} model.LostItem
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /lost-items/{item_id} [get]
func GetLostItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		item, err := getLostItemByID(c.Request().Context(), db, c.Param("item_id"))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	}
}

// UpdateLostItemHandler 更新遺失物，未帶的欄位保持原值
// @Summary     更新遺失物
// @Tags        lost-items
// @Accept      json
// @Produce     json
// @Param       item_id path     string                    true "遺失物 ID"
// @Param       body    body     api.UpdateLostItemRequest true "更新欄位"
// @Success     200     {object} model.LostItem
// @Failure     400     {object} api.ErrorResponse
// @Failure     403     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /lost-items/{item_id} [put]
func UpdateLostItemHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		var req api.UpdateLostItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		item, err := getLostItemByID(c.Request().Context(), db, c.Param("item_id"))
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
		if req.LostDate != nil {
			item.LostDate = *req.LostDate
		}

		if err := updateLostItem(c.Request().Context(), db, item); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, item.UserID)
		return c.JSON(http.StatusOK, item)
	}
}

// DeleteLostItemHandler 刪除遺失物
// @Summary     刪除遺失物
// @Tags        lost-items
// @Param       item_id path string true "遺失物 ID"
// @Success     204     "No Content"
// @Failure     403     {object} api.ErrorResponse
// @Failure     404     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /lost-items/{item_id} [delete]
func DeleteLostItemHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		item, err := getLostItemByID(c.Request().Context(), db, c.Param("item_id"))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if err := authorize(actor, item.UserID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		if err := deleteLostItem(c.Request().Context(), db, item.ID); err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, item.UserID)
		return c.NoContent(http.StatusNoContent)
	}
}
