package database

import (
	"context"
	"fmt"
)

// WithinTx 在單一交易內執行 body，body 回傳錯誤時整筆回滾
// 多筆寫入的操作不會留下部分結果：全部落地或全部不落地
func WithinTx(ctx context.Context, db DB, body func(q Querier) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("WithinTx: %w", err)
	}
	if err := body(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("WithinTx: %w", err)
	}
	return nil
}
