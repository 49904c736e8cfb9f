// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/canonical/crew-service/internal/logging"
)

func TestOffsetAndPageSize(t *testing.T) {
	tests := []struct {
		name           string
		page           int64
		size           int64
		expectedOffset uint64
		expectedSize   uint64
	}{
		{name: "defaults", page: 0, size: 0, expectedOffset: 0, expectedSize: defaultPageSize},
		{name: "second page", page: 2, size: 10, expectedOffset: 10, expectedSize: 10},
		{name: "negative page", page: -3, size: 10, expectedOffset: 0, expectedSize: 10},
		{name: "clamped size", page: 3, size: 5000, expectedOffset: 2 * maxPageSize, expectedSize: maxPageSize},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			size := PageSize(test.size)
			if size != test.expectedSize {
				t.Errorf("expected size %d, got %d", test.expectedSize, size)
			}
			if offset := Offset(test.page, size); offset != test.expectedOffset {
				t.Errorf("expected offset %d, got %d", test.expectedOffset, offset)
			}
		})
	}
}

func TestWithTx_NoStatements(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	called := false
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		if lazyTxFromContext(ctx) == nil {
			t.Error("expected a lazy transaction in context")
		}
		return nil
	})

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected callback to run")
	}
}

func TestWithTx_Nested(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}
	fail := errors.New("fail")

	err := d.WithTx(context.Background(), func(outer context.Context) error {
		return d.WithTx(outer, func(inner context.Context) error {
			if lazyTxFromContext(inner) != lazyTxFromContext(outer) {
				t.Error("nested call must join the outer transaction")
			}
			return fail
		})
	})

	if !errors.Is(err, fail) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestWithTx_BeginFailure(t *testing.T) {
	// pgx driver is registered by client.go, a closed handle refuses to begin without a server
	conn, err := sql.Open("pgx", "postgres://crew@localhost:5432/crew")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conn.Close()

	tests := []struct {
		name    string
		swallow bool
	}{
		{name: "statement error returned by the callback"},
		{name: "statement error swallowed by the callback", swallow: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := &DBClient{db: conn, logger: logging.NewNoopLogger()}

			var stmtErr, rowErr error
			err := d.WithTx(context.Background(), func(ctx context.Context) error {
				_, stmtErr = d.Statement(ctx).Insert("events").Columns("id").Values("e-1").ExecContext(ctx)

				var id string
				rowErr = d.Statement(ctx).Select("id").From("events").QueryRowContext(ctx).Scan(&id)

				if test.swallow {
					return nil
				}
				return stmtErr
			})

			if !errors.Is(stmtErr, ErrBeginTx) {
				t.Errorf("expected statement to fail with %v, got %v", ErrBeginTx, stmtErr)
			}
			if !errors.Is(rowErr, ErrBeginTx) {
				t.Errorf("expected row scan to fail with %v, got %v", ErrBeginTx, rowErr)
			}
			if !errors.Is(err, ErrBeginTx) {
				t.Errorf("expected WithTx to fail with %v, got %v", ErrBeginTx, err)
			}
		})
	}
}
