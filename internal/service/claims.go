// File: internal/service/claims.go
package service

import (
	"context"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
	"lost-and-found/internal/store"
)

var (
	getFoundItem          = store.GetFoundItemByID
	getFoundItemForUpdate = store.GetFoundItemForUpdate
	setFoundItemReturned  = store.SetFoundItemReturned
	createClaimRow        = store.CreateClaim
	getClaimByID          = store.GetClaimByID
	resolveClaimStatus    = store.ResolveClaimStatus
	listClaimRows         = store.ListClaims
	countClaimRows        = store.CountClaims
)

// CreateClaim 對拾獲物送出認領
// 物品不存在回傳 NotFound；已歸還的物品不再受理，回傳 Conflict
func CreateClaim(ctx context.Context, db database.DB, claimantID, foundItemID, details string) (*model.Claim, error) {
	item, err := getFoundItem(ctx, db, foundItemID)
	if err != nil {
		return nil, err
	}
	if item.IsReturned {
		return nil, apperr.Conflict("found item has already been returned")
	}
	return createClaimRow(ctx, db, &model.Claim{
		UserID:      claimantID,
		FoundItemID: foundItemID,
		Status:      model.ClaimPending,
		Details:     details,
	})
}

// ResolveClaim 處理 PENDING 認領的終局狀態
// 核可時在單一交易內鎖定拾獲物重檢 is_returned、改寫認領狀態並標記歸還；
// 兩個並發核可只會有一方成功，另一方收到 Conflict。駁回僅改寫認領狀態
func ResolveClaim(ctx context.Context, db database.DB, claimID string, status model.ClaimStatus) (*model.Claim, error) {
	if !status.Resolved() {
		return nil, apperr.Conflict("claim status must be APPROVED or REJECTED")
	}

	claim, err := getClaimByID(ctx, db, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status.Resolved() {
		return nil, apperr.Conflict("claim has already been resolved")
	}

	if status == model.ClaimApproved {
		err = withinTx(ctx, db, func(q database.Querier) error {
			item, err := getFoundItemForUpdate(ctx, q, claim.FoundItemID)
			if err != nil {
				return err
			}
			if item.IsReturned {
				return apperr.Conflict("found item has already been returned")
			}
			if err := resolveClaimStatus(ctx, q, claimID, status); err != nil {
				return err
			}
			return setFoundItemReturned(ctx, q, item.ID)
		})
	} else {
		err = resolveClaimStatus(ctx, db, claimID, status)
	}
	if err != nil {
		return nil, err
	}

	claim.Status = status
	return claim, nil
}

// ListClaims 列出認領，查詢條件交由 query 編譯，無額外商業規則
func ListClaims(ctx context.Context, db database.DB, params map[string]string) ([]model.Claim, int, query.Query, error) {
	qry := query.Compile(params, store.ClaimsQuerySpec)
	claims, err := listClaimRows(ctx, db, qry)
	if err != nil {
		return nil, 0, qry, err
	}
	total, err := countClaimRows(ctx, db, qry)
	if err != nil {
		return nil, 0, qry, err
	}
	return claims, total, qry, nil
}
