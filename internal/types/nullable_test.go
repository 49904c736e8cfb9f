// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"
)

func TestNullable(t *testing.T) {
	type patch struct {
		Position Nullable[SailingPosition] `json:"sailing_position"`
	}

	testCases := []struct {
		name      string
		body      string
		expectSet bool
		expectNil bool
		expected  SailingPosition
	}{
		{name: "absent", body: `{}`, expectNil: true},
		{name: "explicit null", body: `{"sailing_position": null}`, expectSet: true, expectNil: true},
		{name: "value", body: `{"sailing_position": "bowman"}`, expectSet: true, expected: PositionBowman},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p patch
			if err := json.Unmarshal([]byte(tc.body), &p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if p.Position.Set != tc.expectSet {
				t.Errorf("expected set %v, got %v", tc.expectSet, p.Position.Set)
			}
			if (p.Position.Value == nil) != tc.expectNil {
				t.Fatalf("expected nil %v, got %v", tc.expectNil, p.Position.Value)
			}
			if p.Position.Value != nil && *p.Position.Value != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, *p.Position.Value)
			}
			if p.Position.Cleared() != (tc.expectSet && tc.expectNil) {
				t.Errorf("unexpected cleared state")
			}
		})
	}
}
