// File: internal/store/user_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restoreNewID)
		newID = func() string { return "u1" }

		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotArgs = args
				return fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*time.Time) = now
					*dest[1].(*time.Time) = now
					return nil
				}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{
			Name:         "Alice",
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
			Role:         model.RoleUser,
			Status:       model.StatusActive,
		})
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
		require.Equal(t, now, u.CreatedAt)
		require.Equal(t, "u1", gotArgs[0])
		require.Equal(t, model.RoleUser, gotArgs[5])
	})

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		t.Cleanup(restoreNewID)
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{scanFn: func(...any) error {
					return &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}
				}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.True(t, apperr.IsConflict(err))
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*string) = "u1"
					*dest[1].(*string) = "Alice"
					*dest[2].(*string) = "alice"
					*dest[3].(*string) = "alice@example.com"
					*dest[4].(*string) = "hash"
					*dest[5].(*model.Role) = model.RoleAdmin
					*dest[6].(*model.Status) = model.StatusActive
					return nil
				}}
			},
		}
		u, err := GetUserByID(context.Background(), db, "u1")
		require.NoError(t, err)
		require.Equal(t, "alice", u.Username)
		require.True(t, u.Role.IsAdmin())
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
			},
		}
		_, err := GetUserByID(context.Background(), db, "nope")
		require.True(t, apperr.IsNotFound(err))
	})
}

func TestListUsers(t *testing.T) {
	userScan := func(id, username string) func(dest ...any) error {
		return func(dest ...any) error {
			*dest[0].(*string) = id
			*dest[2].(*string) = username
			return nil
		}
	}

	t.Run("renders query clauses", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL = sql
				gotArgs = args
				return &fakeRows{scans: []func(dest ...any) error{
					userScan("u1", "alice"),
					userScan("u2", "bob"),
				}}, nil
			},
		}
		qry := query.Compile(map[string]string{"searchTerm": "ali", "role": "USER"}, UsersQuerySpec)
		users, err := ListUsers(context.Background(), db, qry)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "alice", users[0].Username)
		require.Contains(t, gotSQL, "WHERE (name ILIKE $1 OR username ILIKE $2 OR email ILIKE $3) AND role = $4")
		require.Contains(t, gotSQL, "ORDER BY created_at DESC")
		require.Contains(t, gotSQL, "LIMIT 10 OFFSET 0")
		require.Equal(t, []any{"%ali%", "%ali%", "%ali%", "USER"}, gotArgs)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListUsers(context.Background(), db, query.Compile(nil, UsersQuerySpec))
		require.Error(t, err)
	})
}

func TestCountUsers(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.Contains(t, sql, "SELECT COUNT(*) FROM users")
			return fakeRow{scanFn: func(dest ...any) error {
				*dest[0].(*int) = 42
				return nil
			}}
		},
	}
	total, err := CountUsers(context.Background(), db, query.Compile(nil, UsersQuerySpec))
	require.NoError(t, err)
	require.Equal(t, 42, total)
}

func TestUpdateUserRoleAndStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateUserRole(context.Background(), db, "u1", model.RoleAdmin))
		require.NoError(t, UpdateUserStatus(context.Background(), db, "u1", model.StatusBlocked))
	})

	t.Run("missing user", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.True(t, apperr.IsNotFound(UpdateUserRole(context.Background(), db, "nope", model.RoleAdmin)))
		require.True(t, apperr.IsNotFound(UpdateUserStatus(context.Background(), db, "nope", model.StatusBlocked)))
	})
}
