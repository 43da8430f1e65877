// File: internal/store/user_profile.go
package store

import (
	"context"

	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
)

func CreateUserProfile(ctx context.Context, q database.Querier, p *model.UserProfile) (*model.UserProfile, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO user_profiles (user_id, bio, age)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		p.UserID,
		p.Bio,
		p.Age,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, wrapErr("CreateUserProfile", "user profile not found", err)
	}
	return p, nil
}

// GetUserProfileWithUser 取得個人檔案並帶出使用者公開欄位（不含密碼雜湊）
func GetUserProfileWithUser(ctx context.Context, q database.Querier, userID string) (*model.UserProfile, *model.User, error) {
	row := q.QueryRow(ctx,
		`SELECT p.user_id, p.bio, p.age, p.created_at, p.updated_at,
		        u.id, u.name, u.username, u.email, u.role, u.status, u.created_at, u.updated_at
		 FROM user_profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = $1`,
		userID,
	)
	p := &model.UserProfile{}
	u := &model.User{}
	if err := row.Scan(
		&p.UserID,
		&p.Bio,
		&p.Age,
		&p.CreatedAt,
		&p.UpdatedAt,
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, nil, wrapErr("GetUserProfileWithUser", "user profile not found", err)
	}
	return p, u, nil
}

func UpdateUserProfile(ctx context.Context, q database.Querier, userID, bio string, age int) (*model.UserProfile, error) {
	row := q.QueryRow(ctx,
		`UPDATE user_profiles SET bio = $1, age = $2, updated_at = now()
		 WHERE user_id = $3
		 RETURNING user_id, bio, age, created_at, updated_at`,
		bio,
		age,
		userID,
	)
	p := &model.UserProfile{}
	if err := row.Scan(&p.UserID, &p.Bio, &p.Age, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, wrapErr("UpdateUserProfile", "user profile not found", err)
	}
	return p, nil
}
