// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"lost-and-found/internal/cache"
	"lost-and-found/internal/database"
	"lost-and-found/internal/handler"
	"lost-and-found/internal/handler/auth"
	"lost-and-found/internal/handler/categories"
	"lost-and-found/internal/handler/claims"
	"lost-and-found/internal/handler/items"
	"lost-and-found/internal/handler/users"
	"lost-and-found/internal/middleware"
	"lost-and-found/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// 管理員專屬使用者管理
	api.GET("/users", users.ListUsersHandler(db), middleware.RequireAdmin)
	api.PATCH("/users/:user_id/role", users.ToggleUserRoleHandler(db, rdb, wp), middleware.RequireAdmin)
	api.PATCH("/users/:user_id/status", users.ToggleUserStatusHandler(db, rdb, wp), middleware.RequireAdmin)

	// 當前使用者的個人頁
	api.GET("/my-profile", users.GetMyProfileHandler(db, rdb), middleware.RequireAuth)
	api.PUT("/my-profile", users.UpdateMyProfileHandler(db, rdb, wp), middleware.RequireAuth)

	// 分類：公開讀取，管理員新增
	api.GET("/categories", categories.ListCategoriesHandler(db, rdb))
	api.POST("/categories", categories.CreateCategoryHandler(db, rdb, wp), middleware.RequireAdmin)

	// 遺失物
	api.POST("/lost-items", items.CreateLostItemHandler(db, rdb, wp), middleware.RequireAuth)
	api.GET("/lost-items", items.ListLostItemsHandler(db))
	api.GET("/lost-items/:item_id", items.GetLostItemHandler(db))
	api.PUT("/lost-items/:item_id", items.UpdateLostItemHandler(db, rdb, wp), middleware.RequireAuth)
	api.DELETE("/lost-items/:item_id", items.DeleteLostItemHandler(db, rdb, wp), middleware.RequireAuth)

	// 拾獲物
	api.POST("/found-items", items.CreateFoundItemHandler(db, rdb, wp), middleware.RequireAuth)
	api.GET("/found-items", items.ListFoundItemsHandler(db))
	api.GET("/found-items/:item_id", items.GetFoundItemHandler(db))
	api.PUT("/found-items/:item_id", items.UpdateFoundItemHandler(db, rdb, wp), middleware.RequireAuth)
	api.DELETE("/found-items/:item_id", items.DeleteFoundItemHandler(db, rdb, wp), middleware.RequireAuth)

	// 認領：送出與查詢需登入，終局處理僅限管理員
	api.POST("/claims", claims.CreateClaimHandler(db, rdb, wp), middleware.RequireAuth)
	api.GET("/claims", claims.ListClaimsHandler(db), middleware.RequireAuth)
	api.PATCH("/claims/:claim_id", claims.ResolveClaimHandler(db, rdb, wp), middleware.RequireAdmin)
}
