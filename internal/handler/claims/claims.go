// File: internal/handler/claims/claims.go
package claims

import (
	"context"
	"net/http"

	"lost-and-found/internal/api"
	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/middleware"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
	"lost-and-found/internal/service"
	"lost-and-found/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createClaim  = service.CreateClaim
	listClaims   = service.ListClaims
	resolveClaim = service.ResolveClaim
)

// invalidateProfile 認領異動後清除認領人的個人頁快取
func invalidateProfile(rdb cache.Cache, wp worker.Pool, userID string) {
	wp.Submit(func() {
		rdb.Del(context.Background(), cache.ProfileKey(userID))
	})
}

// CreateClaimHandler 對拾獲物送出認領
// @Summary     送出認領
// @Description 物品不存在回 404，已歸還的物品回 409
// @Tags        claims
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateClaimRequest true "認領資料"
// @Success     201  {object} model.Claim
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /claims [post]
func CreateClaimHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := middleware.Actor(c)

		var req api.CreateClaimRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claim, err := createClaim(c.Request().Context(), db, actor.ID, req.FoundItemID, req.Details)
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, actor.ID)
		return c.JSON(http.StatusCreated, claim)
	}
}

// ListClaimsHandler 列出認領
// @Summary     列出認領
// @Description 支援 searchTerm (details)、status/userId/foundItemId 過濾、分頁與排序
// @Tags        claims
// @Produce     json
// @Success     200 {object} api.ClaimsResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /claims [get]
func ListClaimsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, total, qry, err := listClaims(c.Request().Context(), db, query.Params(c.QueryParams()))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}
		if claims == nil {
			claims = []model.Claim{}
		}
		return c.JSON(http.StatusOK, api.ClaimsResponse{
			Data: claims,
			Meta: api.ListMeta{Page: qry.Page, Limit: qry.Limit, Total: total},
		})
	}
}

// ResolveClaimHandler 管理員核可或駁回認領
// @Summary     處理認領
// @Description 只接受 APPROVED/REJECTED；已處理過的認領回 409
// @Tags        claims
// @Accept      json
// @Produce     json
// @Param       claim_id path     string                  true "認領 ID"
// @Param       body     body     api.ResolveClaimRequest true "終局狀態"
// @Success     200      {object} model.Claim
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /claims/{claim_id} [patch]
func ResolveClaimHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResolveClaimRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claim, err := resolveClaim(c.Request().Context(), db, c.Param("claim_id"), model.ClaimStatus(req.Status))
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		invalidateProfile(rdb, wp, claim.UserID)
		return c.JSON(http.StatusOK, claim)
	}
}
