// File: internal/handler/categories/categories.go
package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lost-and-found/internal/api"
	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/store"
	"lost-and-found/internal/worker"

	"github.com/labstack/echo/v4"
)

// categoriesCacheTTL 分類清單異動極少，快取可放久一點
const categoriesCacheTTL = 5 * time.Minute

var (
	createCategory = store.CreateCategory
	listCategories = store.ListCategories
)

// ListCategoriesHandler 列出所有分類
// @Summary     列出分類
// @Description 依名稱排序；結果快取於 Redis，新增分類時失效
// @Tags        categories
// @Produce     json
// @Success     200 {array}  model.Category
// @Failure     500 {object} api.ErrorResponse
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if raw, err := rdb.Get(c.Request().Context(), cache.CategoriesKey).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, raw)
		}

		categories, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if categories == nil {
			categories = []model.Category{}
		}

		if raw, err := json.Marshal(categories); err == nil {
			rdb.Set(c.Request().Context(), cache.CategoriesKey, raw, categoriesCacheTTL)
		}
		return c.JSON(http.StatusOK, categories)
	}
}

// CreateCategoryHandler 管理員新增分類
// @Summary     新增分類
// @Description 名稱重複回 409
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateCategoryRequest true "分類資料"
// @Success     201  {object} model.Category
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /categories [post]
func CreateCategoryHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCategoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		category, err := createCategory(c.Request().Context(), db, &model.Category{Name: req.Name})
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		wp.Submit(func() {
			rdb.Del(context.Background(), cache.CategoriesKey)
		})
		return c.JSON(http.StatusCreated, category)
	}
}
