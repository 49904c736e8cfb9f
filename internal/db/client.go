// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

const defaultTxTimeout = 30 * time.Second

type lazyTxContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// ErrBeginTx is returned by every statement of a WithTx callback whose transaction could not start
var ErrBeginTx = errors.New("failed to begin transaction")

// lazyTx begins the transaction on the first statement issued inside WithTx
type lazyTx struct {
	db     *sql.DB
	tx     TxInterface
	cancel context.CancelFunc
	err    error
	done   bool
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil || lt.err != nil {
		return lt.tx, lt.err
	}

	// detached from the request so a client disconnect cannot roll back a half applied write
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		lt.err = fmt.Errorf("%w: %w", ErrBeginTx, err)
		return nil, lt.err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

// failedTx runs nothing, so statements of a transaction that never began cannot reach the pool
type failedTx struct {
	err error
}

func (f failedTx) Exec(string, ...any) (sql.Result, error) { return nil, f.err }

func (f failedTx) Query(string, ...any) (*sql.Rows, error) { return nil, f.err }

func (f failedTx) QueryRow(string, ...any) sq.RowScanner { return failedRow(f) }

func (f failedTx) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}

func (f failedTx) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedTx) QueryRowContext(context.Context, string, ...any) sq.RowScanner {
	return failedRow(f)
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...any) error { return r.err }

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a dollar placeholder builder bound to the transaction of the context if any,
// to the pool otherwise. Inside WithTx a transaction that fails to begin fails every statement.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if lt := lazyTxFromContext(ctx); lt != nil {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("%v", err)
			return builder.RunWith(failedTx{err: err})
		}

		return builder.RunWith(tx)
	}

	return builder.RunWith(d.db)
}

// WithTx runs fn with a context carrying a lazily started transaction, committed when fn succeeds
// and rolled back otherwise. Nested calls join the outer transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if lazyTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db}

	defer func() {
		if lt.started() && !lt.done {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(context.WithValue(ctx, lazyTxContextKey{}, lt)); err != nil {
		return err
	}

	if lt.err != nil {
		return lt.err
	}

	if !lt.started() {
		return nil
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	lt.done = true

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}
	_ = d.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available)

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

// NewDBClient opens a pgx pool exposed through database/sql so squirrel can drive it
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	d := &DBClient{
		pool:    pool,
		db:      stdlib.OpenDBFromPool(pool),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}
