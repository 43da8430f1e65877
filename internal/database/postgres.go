package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxPool 包裝 *pgxpool.Pool，把 Begin 的回傳型別收斂為 database.Tx
type pgxPool struct {
	*pgxpool.Pool
}

func (p pgxPool) Begin(ctx context.Context) (Tx, error) {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// NewPgxPool 建立資料庫連線池
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return pgxPool{pool}, nil
}
