// Package xpgx wraps a pgx pool with squirrel-aware helpers, so store code
// works with builders and db-tagged structs instead of raw SQL strings.
package xpgx

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier issues row-returning queries. Both the pool and an open
// transaction satisfy it, so Getx/Selectx work against either.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

type Execer interface {
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
}

// Tx is the slice of a transaction the store layer sees inside WithinTx.
type Tx interface {
	Querier
	Execer
}

type Pool interface {
	Querier
	Execer
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	// WithinTx runs fn inside one transaction: commit when fn returns nil,
	// rollback otherwise.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
	Close()
}

type pool struct {
	inner *pgxpool.Pool
}

// Dial opens a pool and pings it with retries, so the service survives a
// database that comes up slightly later than it does.
func Dial(ctx context.Context, dsn string) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dsn: %w", err)
	}

	inner, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	err = backoff.Retry(
		func() error { return inner.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 20),
			ctx,
		),
	)
	if err != nil {
		inner.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &pool{inner: inner}, nil
}

func (p *pool) Close() {
	p.inner.Close()
}

func (p *pool) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return p.inner.Query(ctx, sql, args...)
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to build query: %w", err)
	}
	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	inner, err := p.inner.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// no-op after a successful commit
	defer inner.Rollback(ctx)

	if err := fn(&tx{inner: inner}); err != nil {
		return err
	}
	return inner.Commit(ctx)
}

type tx struct {
	inner pgx.Tx
}

func (t *tx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return t.inner.Query(ctx, sql, args...)
}

func (t *tx) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to build query: %w", err)
	}
	return t.inner.Exec(ctx, sql, args...)
}

// Getx returns the first row mapped onto T by db tag, pgx.ErrNoRows when
// the query matches nothing.
func Getx[T any](ctx context.Context, q Querier, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx returns all rows mapped onto T by db tag.
func Selectx[T any](ctx context.Context, q Querier, query squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}
