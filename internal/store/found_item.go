// File: internal/store/found_item.go
package store

import (
	"context"
	"fmt"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
)

// FoundItemsQuerySpec found_items 集合的查詢規格
var FoundItemsQuerySpec = query.Spec{
	Searchable: []string{"item_name", "description"},
	Filterable: map[string]string{
		"categoryId": "category_id",
		"userId":     "user_id",
		"location":   "location",
		"isReturned": "is_returned",
	},
	Sortable: map[string]string{
		"createdAt": "created_at",
		"itemName":  "item_name",
		"foundDate": "found_date",
		"location":  "location",
	},
}

const foundItemColumns = `id, user_id, category_id, item_name, description, location, found_date, pictures, is_returned, created_at, updated_at`

func scanFoundItem(row interface{ Scan(dest ...any) error }, it *model.FoundItem) error {
	return row.Scan(
		&it.ID,
		&it.UserID,
		&it.CategoryID,
		&it.ItemName,
		&it.Description,
		&it.Location,
		&it.FoundDate,
		&it.Pictures,
		&it.IsReturned,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
}

func CreateFoundItem(ctx context.Context, q database.Querier, it *model.FoundItem) (*model.FoundItem, error) {
	it.ID = newID()
	row := q.QueryRow(ctx,
		`INSERT INTO found_items (id, user_id, category_id, item_name, description, location, found_date, pictures)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING is_returned, created_at, updated_at`,
		it.ID,
		it.UserID,
		it.CategoryID,
		it.ItemName,
		it.Description,
		it.Location,
		it.FoundDate,
		it.Pictures,
	)
	if err := row.Scan(&it.IsReturned, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, wrapErr("CreateFoundItem", "found item not found", err)
	}
	return it, nil
}

func GetFoundItemByID(ctx context.Context, q database.Querier, itemID string) (*model.FoundItem, error) {
	row := q.QueryRow(ctx,
		`SELECT `+foundItemColumns+` FROM found_items WHERE id = $1`,
		itemID,
	)
	it := &model.FoundItem{}
	if err := scanFoundItem(row, it); err != nil {
		return nil, wrapErr("GetFoundItemByID", "found item not found", err)
	}
	return it, nil
}

// GetFoundItemForUpdate 以 FOR UPDATE 鎖定單列，供核可認領的交易重新檢查 is_returned
func GetFoundItemForUpdate(ctx context.Context, q database.Querier, itemID string) (*model.FoundItem, error) {
	row := q.QueryRow(ctx,
		`SELECT `+foundItemColumns+` FROM found_items WHERE id = $1 FOR UPDATE`,
		itemID,
	)
	it := &model.FoundItem{}
	if err := scanFoundItem(row, it); err != nil {
		return nil, wrapErr("GetFoundItemForUpdate", "found item not found", err)
	}
	return it, nil
}

func ListFoundItems(ctx context.Context, q database.Querier, qry query.Query) ([]model.FoundItem, error) {
	where, args := qry.WhereSQL()
	rows, err := q.Query(ctx,
		`SELECT `+foundItemColumns+` FROM found_items`+where+qry.OrderSQL()+qry.LimitSQL(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFoundItems: %w", err)
	}
	defer rows.Close()

	var items []model.FoundItem
	for rows.Next() {
		var it model.FoundItem
		if err := scanFoundItem(rows, &it); err != nil {
			return nil, fmt.Errorf("ListFoundItems: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFoundItems: %w", err)
	}
	return items, nil
}

func CountFoundItems(ctx context.Context, q database.Querier, qry query.Query) (int, error) {
	where, args := qry.WhereSQL()
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM found_items`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountFoundItems: %w", err)
	}
	return total, nil
}

func UpdateFoundItem(ctx context.Context, q database.Querier, it *model.FoundItem) error {
	tag, err := q.Exec(ctx,
		`UPDATE found_items
		 SET category_id = $1, item_name = $2, description = $3, location = $4, found_date = $5, pictures = $6, updated_at = now()
		 WHERE id = $7`,
		it.CategoryID,
		it.ItemName,
		it.Description,
		it.Location,
		it.FoundDate,
		it.Pictures,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateFoundItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("found item not found")
	}
	return nil
}

// SetFoundItemReturned 將拾獲物標記為已歸還，只在核可認領的交易中呼叫
func SetFoundItemReturned(ctx context.Context, q database.Querier, itemID string) error {
	tag, err := q.Exec(ctx,
		`UPDATE found_items SET is_returned = TRUE, updated_at = now() WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("SetFoundItemReturned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("found item not found")
	}
	return nil
}

func DeleteFoundItem(ctx context.Context, q database.Querier, itemID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM found_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("DeleteFoundItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("found item not found")
	}
	return nil
}

// ListRecentFoundItemsByUser 取使用者最近回報的拾獲物，依建立時間遞減
func ListRecentFoundItemsByUser(ctx context.Context, q database.Querier, userID string, limit int) ([]model.FoundItem, error) {
	rows, err := q.Query(ctx,
		`SELECT `+foundItemColumns+` FROM found_items WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentFoundItemsByUser: %w", err)
	}
	defer rows.Close()

	var items []model.FoundItem
	for rows.Next() {
		var it model.FoundItem
		if err := scanFoundItem(rows, &it); err != nil {
			return nil, fmt.Errorf("ListRecentFoundItemsByUser: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentFoundItemsByUser: %w", err)
	}
	return items, nil
}

func CountFoundItemsByUser(ctx context.Context, q database.Querier, userID string) (int, error) {
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM found_items WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountFoundItemsByUser: %w", err)
	}
	return total, nil
}
