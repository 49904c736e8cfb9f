// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("accepting: %w", ErrOwnerRoleImmutable.WithMessage("owner is fixed"))

	if !errors.Is(err, ErrOwnerRoleImmutable) {
		t.Error("expected wrapped copy to match the sentinel")
	}

	if errors.Is(err, ErrAlreadyMember) {
		t.Error("unexpected match with a different code")
	}

	if KindOf(err) != KindConflict {
		t.Errorf("unexpected kind %s", KindOf(err))
	}

	if MessageOf(err) != "owner is fixed" {
		t.Errorf("unexpected message %q", MessageOf(err))
	}
}

func TestUnclassified(t *testing.T) {
	err := errors.New("pq: connection refused")

	if KindOf(err) != KindPersistence {
		t.Errorf("unexpected kind %s", KindOf(err))
	}

	if MessageOf(err) == err.Error() {
		t.Error("store error text must not leak")
	}
}

func TestPersistenceUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Persistence(cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable")
	}

	if !errors.Is(err, ErrPersistence) {
		t.Error("expected persistence sentinel match")
	}
}
