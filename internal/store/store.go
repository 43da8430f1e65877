// Package store 以 SQL 實作各集合的存取函式
// 所有函式都以 database.Querier 為參數，交易內外共用同一套實作
package store

import (
	"errors"
	"fmt"

	"lost-and-found/internal/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation PostgreSQL 唯一性約束違反的 SQLSTATE
const uniqueViolation = "23505"

// newID 產生新的實體識別碼，測試可覆寫
var newID = uuid.NewString

// wrapErr 將驅動層錯誤轉為領域錯誤：
// 查無資料轉為 NotFound，唯一性約束違反轉為 Conflict（與寫入前檢查同類），
// 其餘錯誤包上操作名稱後原樣上拋
func wrapErr(op, notFoundMsg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Wrap(apperr.KindConflict, fmt.Sprintf("%s: duplicate value", op), err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
