// File: internal/service/profile_test.go
package service

import (
	"context"
	"testing"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"

	"github.com/stretchr/testify/require"
)

func TestGetUserProfile(t *testing.T) {
	t.Run("user missing", func(t *testing.T) {
		t.Cleanup(restore)
		getProfileWithUser = func(context.Context, database.Querier, string) (*model.UserProfile, *model.User, error) {
			return nil, nil, apperr.NotFound("user not found")
		}
		_, err := GetUserProfile(context.Background(), &database.FakeDB{}, "nope")
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run("empty profile serializes empty arrays", func(t *testing.T) {
		t.Cleanup(restore)
		getProfileWithUser = func(context.Context, database.Querier, string) (*model.UserProfile, *model.User, error) {
			return &model.UserProfile{UserID: "u1"}, &model.User{ID: "u1", Username: "alice"}, nil
		}
		recentLostItems = func(context.Context, database.Querier, string, int) ([]model.LostItem, error) {
			return nil, nil
		}
		recentFoundItems = func(context.Context, database.Querier, string, int) ([]model.FoundItem, error) {
			return nil, nil
		}
		recentClaims = func(context.Context, database.Querier, string, int) ([]model.Claim, error) {
			return nil, nil
		}
		countLostItems = func(context.Context, database.Querier, string) (int, error) { return 0, nil }
		countFoundItems = func(context.Context, database.Querier, string) (int, error) { return 0, nil }
		countClaims = func(context.Context, database.Querier, string) (int, error) { return 0, nil }

		view, err := GetUserProfile(context.Background(), &database.FakeDB{}, "u1")
		require.NoError(t, err)
		require.NotNil(t, view.LostItems)
		require.NotNil(t, view.FoundItems)
		require.NotNil(t, view.Claims)
		require.Empty(t, view.LostItems)
		require.Equal(t, ProfileCounts{}, view.Counts)
	})

	t.Run("aggregates recent items and counts", func(t *testing.T) {
		t.Cleanup(restore)
		getProfileWithUser = func(context.Context, database.Querier, string) (*model.UserProfile, *model.User, error) {
			return &model.UserProfile{UserID: "u1", Bio: "bio"}, &model.User{ID: "u1"}, nil
		}
		recentLostItems = func(_ context.Context, _ database.Querier, _ string, limit int) ([]model.LostItem, error) {
			require.Equal(t, 4, limit)
			return []model.LostItem{{ID: "l1"}, {ID: "l2"}}, nil
		}
		recentFoundItems = func(_ context.Context, _ database.Querier, _ string, limit int) ([]model.FoundItem, error) {
			require.Equal(t, 4, limit)
			return []model.FoundItem{{ID: "f1"}}, nil
		}
		recentClaims = func(_ context.Context, _ database.Querier, _ string, limit int) ([]model.Claim, error) {
			require.Equal(t, 4, limit)
			return []model.Claim{{ID: "c1"}}, nil
		}
		countLostItems = func(context.Context, database.Querier, string) (int, error) { return 12, nil }
		countFoundItems = func(context.Context, database.Querier, string) (int, error) { return 5, nil }
		countClaims = func(context.Context, database.Querier, string) (int, error) { return 9, nil }

		view, err := GetUserProfile(context.Background(), &database.FakeDB{}, "u1")
		require.NoError(t, err)
		require.Len(t, view.LostItems, 2)
		require.Len(t, view.FoundItems, 1)
		require.Len(t, view.Claims, 1)
		require.Equal(t, ProfileCounts{LostItems: 12, FoundItems: 5, Claims: 9}, view.Counts)
	})
}

func TestUpdateUserProfile(t *testing.T) {
	t.Run("profile missing", func(t *testing.T) {
		t.Cleanup(restore)
		updateProfileRow = func(context.Context, database.Querier, string, string, int) (*model.UserProfile, error) {
			return nil, apperr.NotFound("user profile not found")
		}
		_, _, err := UpdateUserProfile(context.Background(), &database.FakeDB{}, "nope", "bio", 20)
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run("returns profile with user", func(t *testing.T) {
		t.Cleanup(restore)
		updateProfileRow = func(_ context.Context, _ database.Querier, userID, bio string, age int) (*model.UserProfile, error) {
			return &model.UserProfile{UserID: userID, Bio: bio, Age: age}, nil
		}
		getUserByID = func(context.Context, database.Querier, string) (*model.User, error) {
			return &model.User{ID: "u1", Username: "alice"}, nil
		}

		profile, user, err := UpdateUserProfile(context.Background(), &database.FakeDB{}, "u1", "new bio", 31)
		require.NoError(t, err)
		require.Equal(t, "new bio", profile.Bio)
		require.Equal(t, 31, profile.Age)
		require.Equal(t, "alice", user.Username)
	})
}
