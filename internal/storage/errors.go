// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// Constraint names referenced by callers reinterpreting conflicts
const (
	ConstraintActiveMember    = "crew_memberships_active_member_uidx"
	ConstraintSingleOwner     = "crew_memberships_single_owner_uidx"
	ConstraintPendingInvite   = "invitations_pending_email_uidx"
	ConstraintInvitationToken = "invitations_token_key"
)

// ConstraintError keeps the violated constraint name next to the sentinel
type ConstraintError struct {
	Constraint string
	Sentinel   error
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v on %s: %v", e.Sentinel, e.Constraint, e.Err)
}

func (e *ConstraintError) Is(target error) bool {
	return target == e.Sentinel
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// ViolatedConstraint returns the constraint name of a duplicate key error, empty otherwise.
func ViolatedConstraint(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// translate maps driver errors onto the storage sentinels, op names the failing operation
func translate(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return fmt.Errorf("%s: %w", op, &ConstraintError{Constraint: pgErr.ConstraintName, Sentinel: ErrDuplicateKey, Err: err})
		case pgErrCodeForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, &ConstraintError{Constraint: pgErr.ConstraintName, Sentinel: ErrForeignKeyViolation, Err: err})
		}
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}
