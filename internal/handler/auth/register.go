// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"strings"

	"lost-and-found/internal/api"
	"lost-and-found/internal/database"
	"lost-and-found/internal/service"
	"lost-and-found/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createUser       = service.CreateUser
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// RegisterHandler 註冊新帳號並一併建立個人檔案
// @Summary     註冊使用者
// @Description 建立使用者與個人檔案，Email 會自動轉小寫；新帳號一律為 USER
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.RegisterResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, profile, err := createUser(c.Request().Context(), db, service.CreateUserInput{
			Name:     req.Name,
			Username: req.Username,
			Email:    strings.ToLower(req.Email),
			Password: req.Password,
			Bio:      req.Bio,
			Age:      req.Age,
		})
		if err != nil {
			return c.JSON(api.HTTPStatus(err), api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.RegisterResponse{
			User:    api.NewUserResponse(*user),
			Profile: *profile,
		})
	}
}
