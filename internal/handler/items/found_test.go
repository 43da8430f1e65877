// File: internal/handler/items/found_test.go
package items

import (
	"context"
	"net/http"
	"testing"

	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/query"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCreateFoundItemHandler(t *testing.T) {
	e := echo.New()

	t.Run("pictures default to empty", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getCategoryByID = knownCategory
		var saved *model.FoundItem
		createFoundItem = func(_ context.Context, _ database.Querier, it *model.FoundItem) (*model.FoundItem, error) {
			saved = it
			it.ID = "f1"
			return it, nil
		}
		body := `{"category_id":"cat1","item_name":"Keychain","description":"silver","location":"park","found_date":"2025-05-09T15:04:05Z"}`
		ctx, rec := newCtx(e, http.MethodPost, "/found-items", body)
		asActor(ctx, "u1", model.RoleUser)
		require.NoError(t, CreateFoundItemHandler(nil, delRecorder(&[]string{}), syncPool{})(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, saved.Pictures)
		require.Empty(t, saved.Pictures)
		require.Equal(t, "u1", saved.UserID)
		require.False(t, saved.IsReturned)
	})

	t.Run("pictures carried through", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getCategoryByID = knownCategory
		var saved *model.FoundItem
		createFoundItem = func(_ context.Context, _ database.Querier, it *model.FoundItem) (*model.FoundItem, error) {
			saved = it
			return it, nil
		}
		body := `{"category_id":"cat1","item_name":"Keychain","description":"silver","location":"park","found_date":"2025-05-09T15:04:05Z","pictures":["a.jpg","b.jpg"]}`
		ctx, rec := newCtx(e, http.MethodPost, "/found-items", body)
		asActor(ctx, "u1", model.RoleUser)
		require.NoError(t, CreateFoundItemHandler(nil, delRecorder(&[]string{}), syncPool{})(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, []string{"a.jpg", "b.jpg"}, saved.Pictures)
	})
}

func TestListFoundItemsHandler(t *testing.T) {
	e := echo.New()
	t.Cleanup(restore)
	listFoundItems = func(_ context.Context, _ database.Querier, qry query.Query) ([]model.FoundItem, error) {
		// isReturned 過濾鍵要對應到實際欄位
		require.Len(t, qry.Filters, 1)
		require.Equal(t, "is_returned", qry.Filters[0].Column)
		return []model.FoundItem{{ID: "f1", Pictures: []string{}}}, nil
	}
	countFoundItems = func(context.Context, database.Querier, query.Query) (int, error) { return 1, nil }

	ctx, rec := newCtx(e, http.MethodGet, "/found-items?isReturned=false", "")
	require.NoError(t, ListFoundItemsHandler(nil)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total":1`)
}

func TestUpdateFoundItemHandler(t *testing.T) {
	e := echo.New()
	ownedItem := func(context.Context, database.Querier, string) (*model.FoundItem, error) {
		return &model.FoundItem{ID: "f1", UserID: "u2", ItemName: "Keychain", Pictures: []string{"a.jpg"}}, nil
	}

	t.Run("stranger is rejected", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getFoundItemByID = ownedItem
		ctx, rec := newCtx(e, http.MethodPut, "/found-items/f1", `{"item_name":"x"}`)
		asActor(ctx, "u1", model.RoleUser)
		withItemID(ctx, "f1")
		require.NoError(t, UpdateFoundItemHandler(nil, nil, syncPool{})(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner replaces pictures", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getFoundItemByID = ownedItem
		var saved *model.FoundItem
		updateFoundItem = func(_ context.Context, _ database.Querier, it *model.FoundItem) error {
			saved = it
			return nil
		}
		var deleted []string
		ctx, rec := newCtx(e, http.MethodPut, "/found-items/f1", `{"pictures":["c.jpg"]}`)
		asActor(ctx, "u2", model.RoleUser)
		withItemID(ctx, "f1")
		require.NoError(t, UpdateFoundItemHandler(nil, delRecorder(&deleted), syncPool{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{"c.jpg"}, saved.Pictures)
		require.Equal(t, "Keychain", saved.ItemName)
		require.Equal(t, []string{cache.ProfileKey("u2")}, deleted)
	})
}

func TestDeleteFoundItemHandler(t *testing.T) {
	e := echo.New()
	t.Cleanup(restore)
	getFoundItemByID = func(context.Context, database.Querier, string) (*model.FoundItem, error) {
		return &model.FoundItem{ID: "f1", UserID: "u2"}, nil
	}
	deleteFoundItem = func(_ context.Context, _ database.Querier, id string) error {
		require.Equal(t, "f1", id)
		return nil
	}
	var deleted []string
	ctx, rec := newCtx(e, http.MethodDelete, "/found-items/f1", "")
	asActor(ctx, "u2", model.RoleUser)
	withItemID(ctx, "f1")
	require.NoError(t, DeleteFoundItemHandler(nil, delRecorder(&deleted), syncPool{})(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []string{cache.ProfileKey("u2")}, deleted)
}
