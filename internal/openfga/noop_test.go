// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"testing"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

func TestNoopClient(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	ctx := context.Background()

	if err := c.WriteTuple(ctx, "user:1", "crew", "boat:1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := c.DeleteTuples(ctx, *NewTuple("user:1", "crew", "boat:1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := c.ReadTuples(ctx, "", "", "boat:1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(res.Tuples) != 0 {
		t.Fatalf("expected no tuples, got %d", len(res.Tuples))
	}

	eq, err := c.CompareModel(ctx, fga.AuthorizationModel{})
	if err != nil || !eq {
		t.Fatalf("expected models to compare equal, got %v %v", eq, err)
	}
}

func TestTupleValues(t *testing.T) {
	user, relation, object := NewTuple("user:a", "owner", "boat:b").Values()

	if user != "user:a" || relation != "owner" || object != "boat:b" {
		t.Fatalf("unexpected tuple values %s %s %s", user, relation, object)
	}
}
