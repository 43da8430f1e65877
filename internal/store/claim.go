// File: internal/store/claim.go
package store

import (
	"context"
	"fmt"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
)

// ClaimsQuerySpec claims 集合的查詢規格
var ClaimsQuerySpec = query.Spec{
	Searchable: []string{"details"},
	Filterable: map[string]string{
		"status":      "status",
		"userId":      "user_id",
		"foundItemId": "found_item_id",
	},
	Sortable: map[string]string{
		"createdAt": "created_at",
		"status":    "status",
	},
}

const claimColumns = `id, user_id, found_item_id, status, details, created_at, updated_at`

func scanClaim(row interface{ Scan(dest ...any) error }, c *model.Claim) error {
	return row.Scan(
		&c.ID,
		&c.UserID,
		&c.FoundItemID,
		&c.Status,
		&c.Details,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func CreateClaim(ctx context.Context, q database.Querier, c *model.Claim) (*model.Claim, error) {
	c.ID = newID()
	row := q.QueryRow(ctx,
		`INSERT INTO claims (id, user_id, found_item_id, status, details)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		c.ID,
		c.UserID,
		c.FoundItemID,
		c.Status,
		c.Details,
	)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, wrapErr("CreateClaim", "claim not found", err)
	}
	return c, nil
}

func GetClaimByID(ctx context.Context, q database.Querier, claimID string) (*model.Claim, error) {
	row := q.QueryRow(ctx,
		`SELECT `+claimColumns+` FROM claims WHERE id = $1`,
		claimID,
	)
	c := &model.Claim{}
	if err := scanClaim(row, c); err != nil {
		return nil, wrapErr("GetClaimByID", "claim not found", err)
	}
	return c, nil
}

func ListClaims(ctx context.Context, q database.Querier, qry query.Query) ([]model.Claim, error) {
	where, args := qry.WhereSQL()
	rows, err := q.Query(ctx,
		`SELECT `+claimColumns+` FROM claims`+where+qry.OrderSQL()+qry.LimitSQL(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("ListClaims: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := scanClaim(rows, &c); err != nil {
			return nil, fmt.Errorf("ListClaims: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListClaims: %w", err)
	}
	return claims, nil
}

func CountClaims(ctx context.Context, q database.Querier, qry query.Query) (int, error) {
	where, args := qry.WhereSQL()
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM claims`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountClaims: %w", err)
	}
	return total, nil
}

// ResolveClaimStatus 只在認領仍為 PENDING 時改寫狀態
// 已被其他請求搶先處理時回傳 Conflict，讓並發的核可恰有一方成功
func ResolveClaimStatus(ctx context.Context, q database.Querier, claimID string, status model.ClaimStatus) error {
	tag, err := q.Exec(ctx,
		`UPDATE claims SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		status,
		claimID,
		model.ClaimPending,
	)
	if err != nil {
		return fmt.Errorf("ResolveClaimStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.Conflict("claim is no longer pending")
	}
	return nil
}

// ListRecentClaimsByUser 取使用者最近送出的認領，依建立時間遞減
func ListRecentClaimsByUser(ctx context.Context, q database.Querier, userID string, limit int) ([]model.Claim, error) {
	rows, err := q.Query(ctx,
		`SELECT `+claimColumns+` FROM claims WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentClaimsByUser: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := scanClaim(rows, &c); err != nil {
			return nil, fmt.Errorf("ListRecentClaimsByUser: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentClaimsByUser: %w", err)
	}
	return claims, nil
}

func CountClaimsByUser(ctx context.Context, q database.Querier, userID string) (int, error) {
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM claims WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountClaimsByUser: %w", err)
	}
	return total, nil
}
