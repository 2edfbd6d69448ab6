package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Conn is the slice of a pooled connection the transaction helper needs.
// *pgxpool.Conn satisfies it.
type Conn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Release()
}

// Pool hands out dedicated connections for units of work.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

type poolAdapter struct {
	pool *pgxpool.Pool
}

// NewPool wraps a pgx pool as a transaction-capable Pool.
func NewPool(pool *pgxpool.Pool) Pool {
	return poolAdapter{pool: pool}
}

func (a poolAdapter) Acquire(ctx context.Context) (Conn, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// ExecuteTransaction runs work inside a single transaction on one dedicated
// connection. Every statement issued through the passed pgx.Tx participates
// in that transaction, in program order.
//
// On normal completion the transaction is committed; a commit failure is
// rolled back and surfaced. Any error from work triggers a rollback and is
// returned untouched, so callers can still branch on sentinel errors after
// the rollback. The connection is released on every exit path.
//
// Calls do not nest: each invocation owns exactly one connection. Group all
// operations that must be atomic into a single work function.
func ExecuteTransaction[T any](ctx context.Context, pool Pool, work func(tx pgx.Tx) (T, error)) (T, error) {
	var zero T

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return zero, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return zero, err
	}
	// No-op after a successful commit.
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := work(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	return result, nil
}
