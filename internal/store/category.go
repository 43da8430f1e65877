// File: internal/store/category.go
package store

import (
	"context"
	"fmt"

	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
)

func CreateCategory(ctx context.Context, q database.Querier, c *model.Category) (*model.Category, error) {
	c.ID = newID()
	row := q.QueryRow(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2) RETURNING created_at`,
		c.ID,
		c.Name,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return nil, wrapErr("CreateCategory", "category not found", err)
	}
	return c, nil
}

func GetCategoryByID(ctx context.Context, q database.Querier, categoryID string) (*model.Category, error) {
	row := q.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`,
		categoryID,
	)
	c := &model.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		return nil, wrapErr("GetCategoryByID", "category not found", err)
	}
	return c, nil
}

func ListCategories(ctx context.Context, q database.Querier) ([]model.Category, error) {
	rows, err := q.Query(ctx, `SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}
