package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelshop/internal/db"
	"github.com/nikolayk812/jewelshop/internal/port"
)

// withTx executes fn within a transaction if the repository was created with a pool,
// or uses the existing transaction if the repository was created with a transaction
func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (T, error) {
	if pool == nil {
		// Already in a transaction, just use it
		return fn(q)
	}

	return inTx(ctx, pool, func(tx pgx.Tx) (T, error) {
		return fn(q.WithTx(tx))
	})
}

func inTx[T any](ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) (T, error)) (_ T, txErr error) {
	var zero T

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	// Ensure proper rollback handling
	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}

type txManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) port.TxManager {
	return &txManager{pool: pool}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(repos port.TxRepositories) error) error {
	_, err := inTx(ctx, m.pool, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, fn(txRepositories{tx: tx})
	})
	return err
}

type txRepositories struct {
	tx pgx.Tx
}

func (r txRepositories) Carts() port.CartRepository {
	return NewCartWithTx(r.tx)
}

func (r txRepositories) Orders() port.OrderRepository {
	return NewOrderWithTx(r.tx)
}

func (r txRepositories) Products() port.ProductRepository {
	return NewProductWithTx(r.tx)
}
