// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"testing"
)

func TestParseTraits(t *testing.T) {
	tests := []struct {
		name          string
		raw           any
		expectedEmail string
		expectedName  Name
		expectedErr   bool
	}{
		{
			name:          "plain name",
			raw:           map[string]any{"email": " Sam@Example.com", "name": "Sam Trimmer"},
			expectedEmail: "sam@example.com",
			expectedName:  "Sam Trimmer",
		},
		{
			name:          "first and last",
			raw:           map[string]any{"email": "sam@example.com", "name": map[string]any{"first": "Sam", "last": "Trimmer"}},
			expectedEmail: "sam@example.com",
			expectedName:  "Sam Trimmer",
		},
		{
			name:          "no name",
			raw:           map[string]any{"email": "sam@example.com"},
			expectedEmail: "sam@example.com",
		},
		{
			name:        "unsupported name",
			raw:         map[string]any{"email": "sam@example.com", "name": 42},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits, err := ParseTraits(tt.raw)

			if tt.expectedErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if traits.Email != tt.expectedEmail || traits.Name != tt.expectedName {
				t.Fatalf("unexpected traits %+v", traits)
			}
		})
	}
}
