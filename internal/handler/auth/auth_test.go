// File: internal/handler/auth/auth_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lost-and-found/internal/apperr"
	"lost-and-found/internal/database"
	"lost-and-found/internal/model"
	"lost-and-found/internal/service"
	"lost-and-found/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	createUser = service.CreateUser
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()
	body := `{"name":"Alice","username":"alice","email":"Alice@Example.com","password":"Secret123!","bio":"b","age":30}`

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("missing field")}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "missing field")
	})

	t.Run("conflict", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createUser = func(context.Context, database.DB, service.CreateUserInput) (*model.User, *model.UserProfile, error) {
			return nil, nil, apperr.Conflict("username already exists")
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, rec.Body.String(), "username already exists")
	})

	t.Run("created with lowercased email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		var gotInput service.CreateUserInput
		createUser = func(_ context.Context, _ database.DB, in service.CreateUserInput) (*model.User, *model.UserProfile, error) {
			gotInput = in
			return &model.User{ID: "u1", Username: in.Username, Email: in.Email, Role: model.RoleUser},
				&model.UserProfile{UserID: "u1", Bio: in.Bio, Age: in.Age}, nil
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", gotInput.Email)
		require.Contains(t, rec.Body.String(), `"role":"USER"`)
		require.NotContains(t, rec.Body.String(), "password")
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	body := `{"email":"alice@example.com","password":"Secret123!"}`

	t.Run("unknown email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.Querier, string) (*model.User, error) {
			return nil, apperr.NotFound("user not found")
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.Querier, string) (*model.User, error) {
			return &model.User{ID: "u1"}, nil
		}
		authenticateUser = func(model.User, string) (*model.User, error) {
			return nil, errors.New("invalid password")
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("blocked account", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.Querier, string) (*model.User, error) {
			return &model.User{ID: "u1", Status: model.StatusBlocked}, nil
		}
		authenticateUser = func(model.User, string) (*model.User, error) {
			return nil, apperr.Authorization("your account is suspended")
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "suspended")
	})

	t.Run("token failure", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.Querier, string) (*model.User, error) {
			return &model.User{ID: "u1"}, nil
		}
		authenticateUser = func(u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) {
			return "", errors.New("no secret")
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByEmail = func(context.Context, database.Querier, string) (*model.User, error) {
			return &model.User{ID: "u1", Username: "alice", Role: model.RoleUser}, nil
		}
		authenticateUser = func(u model.User, _ string) (*model.User, error) { return &u, nil }
		issueAccessToken = func(u model.User, ttl time.Duration) (string, error) {
			require.Equal(t, 24*time.Hour, ttl)
			return "tok", nil
		}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"access_token":"tok"`)
		require.Contains(t, rec.Body.String(), `"username":"alice"`)
	})
}
