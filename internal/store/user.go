// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"
)

// UsersQuerySpec users 集合的查詢規格
var UsersQuerySpec = query.Spec{
	Searchable: []string{"name", "username", "email"},
	Filterable: map[string]string{
		"role":     "role",
		"status":   "status",
		"username": "username",
		"email":    "email",
	},
	Sortable: map[string]string{
		"createdAt": "created_at",
		"name":      "name",
		"username":  "username",
		"email":     "email",
	},
}

const userColumns = `id, name, username, email, password_hash, role, status, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func CreateUser(ctx context.Context, q database.Querier, u *model.User) (*model.User, error) {
	u.ID = newID()
	row := q.QueryRow(ctx,
		`INSERT INTO users (id, name, username, email, password_hash, role, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Name,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Status,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrapErr("CreateUser", "user not found", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, q database.Querier, userID string) (*model.User, error) {
	row := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("GetUserByID", "user not found", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, q database.Querier, username string) (*model.User, error) {
	row := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("GetUserByUsername", "user not found", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, q database.Querier, email string) (*model.User, error) {
	row := q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("GetUserByEmail", "user not found", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, q database.Querier, qry query.Query) ([]model.User, error) {
	where, args := qry.WhereSQL()
	rows, err := q.Query(ctx,
		`SELECT `+userColumns+` FROM users`+where+qry.OrderSQL()+qry.LimitSQL(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CountUsers(ctx context.Context, q database.Querier, qry query.Query) (int, error) {
	where, args := qry.WhereSQL()
	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return total, nil
}

func UpdateUserRole(ctx context.Context, q database.Querier, userID string, role model.Role) error {
	tag, err := q.Exec(ctx,
		`UPDATE users SET role = $1, updated_at = now() WHERE id = $2`,
		role,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserRole: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

func UpdateUserStatus(ctx context.Context, q database.Querier, userID string, status model.Status) error {
	tag, err := q.Exec(ctx,
		`UPDATE users SET status = $1, updated_at = now() WHERE id = $2`,
		status,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}
