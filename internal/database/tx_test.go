package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithinTxCommit(t *testing.T) {
	committed := false
	rolledBack := false
	db := &FakeDB{
		BeginFn: func(ctx context.Context) (Tx, error) {
			return &FakeTx{
				CommitFn:   func(ctx context.Context) error { committed = true; return nil },
				RollbackFn: func(ctx context.Context) error { rolledBack = true; return nil },
			}, nil
		},
	}

	bodyRan := false
	err := WithinTx(context.Background(), db, func(q Querier) error {
		bodyRan = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, bodyRan)
	require.True(t, committed)
	require.False(t, rolledBack)
}

func TestWithinTxBodyErrorRollsBack(t *testing.T) {
	committed := false
	rolledBack := false
	db := &FakeDB{
		BeginFn: func(ctx context.Context) (Tx, error) {
			return &FakeTx{
				CommitFn:   func(ctx context.Context) error { committed = true; return nil },
				RollbackFn: func(ctx context.Context) error { rolledBack = true; return nil },
			}, nil
		},
	}

	boom := errors.New("boom")
	err := WithinTx(context.Background(), db, func(q Querier) error { return boom })
	require.ErrorIs(t, err, boom)
	require.False(t, committed)
	require.True(t, rolledBack)
}

func TestWithinTxBeginError(t *testing.T) {
	db := &FakeDB{
		BeginFn: func(ctx context.Context) (Tx, error) { return nil, errors.New("begin") },
	}
	err := WithinTx(context.Background(), db, func(q Querier) error {
		t.Fatal("body should not run")
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "begin")
}

func TestWithinTxCommitError(t *testing.T) {
	rolledBack := false
	db := &FakeDB{
		BeginFn: func(ctx context.Context) (Tx, error) {
			return &FakeTx{
				CommitFn:   func(ctx context.Context) error { return errors.New("commit") },
				RollbackFn: func(ctx context.Context) error { rolledBack = true; return nil },
			}, nil
		},
	}
	err := WithinTx(context.Background(), db, func(q Querier) error { return nil })
	require.Error(t, err)
	require.Contains(t, err.Error(), "commit")
	require.True(t, rolledBack)
}
