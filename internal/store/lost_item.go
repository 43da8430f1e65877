// File: internal/store/lost_item.go
package store

import (
	"context"
	"fmt"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
)

// LostItemsQuerySpec lost_items 集合的查詢規格
var LostItemsQuerySpec = query.Spec{
	Searchable: []string{"item_name", "description"},
	Filterable: map[string]string{
		"categoryId": "category_id",
		"userId":     "user_id",
		"location":   "location",
	},
	Sortable: map[string]string{
		"createdAt": "created_at",
		"itemName":  "item_name",
		"lostDate":  "lost_date",
		"location":  "location",
	},
}

const lostItemColumns = `id, user_id, category_id, item_name, description, location, lost_date, created_at, updated_at`

func scanLostItem(row interface{ Scan(dest ...any) error }, it *model.LostItem) error {
	return row.Scan(
		&it.ID,
		&it.UserID,
		&it.CategoryID,
		&it.ItemName,
		&it.Description,
		&it.Location,
		&it.LostDate,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
}

func CreateLostItem(ctx context.Context, q database.Querier, it *model.LostItem) (*model.LostItem, error) {
	it.ID = newID()
	row := q.QueryRow(ctx,
		`INSERT INTO lost_items (id, user_id, category_id, item_name, description, location, lost_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		it.ID,
		it.UserID,
		it.CategoryID,
		it.ItemName,
		it.Description,
		it.Location,
		it.LostDate,
	)
	if err := row.Scan(&it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, wrapErr("CreateLostItem", "lost item not found", err)
	}
	return it, nil
}

func GetLostItemByID(ctx context.Context, q database.Querier, itemID string) (*model.LostItem, error) {
	row := q.QueryRow(ctx,
		`SELECT `+lostItemColumns+` FROM lost_items WHERE id = $1`,
		itemID,
	)
	it := &model.LostItem{}
	if err := scanLostItem(row, it); err != nil {
		return nil, wrapErr("GetLostItemByID", "lost item not found", err)
	}
	return it, nil
}

func ListLostItems(ctx context.Context, q database.Querier, qry query.Query) ([]model.LostItem, error) {
	where, args := qry.WhereSQL()
	rows, err := q.Query(ctx,
		`SELECT `+lostItemColumns+` FROM lost_items`+where+qry.OrderSQL()+qry.LimitSQL(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("ListLostItems: %w", err)
	}
	defer rows.Close()

	var items []model.LostItem
	for rows.Next() {
		var it model.LostItem
		if err := scanLostItem(rows, &it); err != nil {
			return nil, fmt.Errorf("ListLostItems: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListLostItems: %w", err)
	}
	return items, nil
}

func CountLostItems(ctx context.Context, q database.Querier, qry query.Query) (int, error) {
	where, args := qry.WhereSQL()
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM lost_items`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountLostItems: %w", err)
	}
	return total, nil
}

func UpdateLostItem(ctx context.Context, q database.Querier, it *model.LostItem) error {
	tag, err := q.Exec(ctx,
		`UPDATE lost_items
		 SET category_id = $1, item_name = $2, description = $3, location = $4, lost_date = $5, updated_at = now()
		 WHERE id = $6`,
		it.CategoryID,
		it.ItemName,
		it.Description,
		it.Location,
		it.LostDate,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateLostItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("lost item not found")
	}
	return nil
}

func DeleteLostItem(ctx context.Context, q database.Querier, itemID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM lost_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("DeleteLostItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("lost item not found")
	}
	return nil
}

// ListRecentLostItemsByUser 取使用者最近回報的遺失物，依建立時間遞減
func ListRecentLostItemsByUser(ctx context.Context, q database.Querier, userID string, limit int) ([]model.LostItem, error) {
	rows, err := q.Query(ctx,
		`SELECT `+lostItemColumns+` FROM lost_items WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentLostItemsByUser: %w", err)
	}
	defer rows.Close()

	var items []model.LostItem
	for rows.Next() {
		var it model.LostItem
		if err := scanLostItem(rows, &it); err != nil {
			return nil, fmt.Errorf("ListRecentLostItemsByUser: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecentLostItemsByUser: %w", err)
	}
	return items, nil
}

func CountLostItemsByUser(ctx context.Context, q database.Querier, userID string) (int, error) {
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM lost_items WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountLostItemsByUser: %w", err)
	}
	return total, nil
}
