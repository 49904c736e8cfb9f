// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslate(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: pgErrCodeUniqueViolation, ConstraintName: ConstraintPendingInvite}
	fkErr := &pgconn.PgError{Code: pgErrCodeForeignKeyViolation, ConstraintName: "events_boat_id_fkey"}
	otherErr := errors.New("connection reset")

	tests := []struct {
		name               string
		err                error
		expected           error
		expectedConstraint string
	}{
		{name: "nil", err: nil, expected: nil},
		{name: "pgx no rows", err: pgx.ErrNoRows, expected: ErrNotFound},
		{name: "sql no rows", err: sql.ErrNoRows, expected: ErrNotFound},
		{name: "unique violation", err: uniqueErr, expected: ErrDuplicateKey, expectedConstraint: ConstraintPendingInvite},
		{name: "fk violation", err: fkErr, expected: ErrForeignKeyViolation, expectedConstraint: "events_boat_id_fkey"},
		{name: "other", err: otherErr, expected: otherErr},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := translate(test.err, "test")

			if test.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}

			if !errors.Is(got, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, got)
			}

			if c := ViolatedConstraint(got); c != test.expectedConstraint {
				t.Errorf("expected constraint %q, got %q", test.expectedConstraint, c)
			}
		})
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	if !IsDuplicateKeyError(&pgconn.PgError{Code: pgErrCodeUniqueViolation}) {
		t.Error("expected unique violation to be detected")
	}
	if IsDuplicateKeyError(errors.New("x")) {
		t.Error("unexpected detection")
	}
	if !IsForeignKeyViolation(&pgconn.PgError{Code: pgErrCodeForeignKeyViolation}) {
		t.Error("expected fk violation to be detected")
	}
}
