// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rsvp

import (
	"net/url"
	"testing"

	"github.com/canonical/crew-service/internal/types"
)

func TestSigner(t *testing.T) {
	signer := NewSigner("secret")
	token := signer.Sign("a-1", types.RSVPAccepted)

	if len(token) != 64 {
		t.Fatalf("expected a hex sha256 token, got %q", token)
	}

	tests := []struct {
		name         string
		assignmentID string
		status       types.RSVPStatus
		token        string
		expected     bool
	}{
		{name: "matching", assignmentID: "a-1", status: types.RSVPAccepted, token: token, expected: true},
		{name: "other status", assignmentID: "a-1", status: types.RSVPDeclined, token: token},
		{name: "other assignment", assignmentID: "a-2", status: types.RSVPAccepted, token: token},
		{name: "not hex", assignmentID: "a-1", status: types.RSVPAccepted, token: "zz"},
		{name: "empty", assignmentID: "a-1", status: types.RSVPAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := signer.Verify(tt.assignmentID, tt.status, tt.token); got != tt.expected {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	if NewSigner("other").Verify("a-1", types.RSVPAccepted, token) {
		t.Fatal("token verified with another secret")
	}
}

func TestSigner_URL(t *testing.T) {
	signer := NewSigner("secret")

	raw := signer.URL("https://crew.example.com/", "a-1", types.RSVPTentative)

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid url %q: %v", raw, err)
	}
	if u.Host != "crew.example.com" || u.Path != "/api/v0/rsvp/a-1" {
		t.Fatalf("unexpected url %q", raw)
	}
	if u.Query().Get("status") != "tentative" || !signer.Verify("a-1", types.RSVPTentative, u.Query().Get("token")) {
		t.Fatalf("unexpected query %q", u.RawQuery)
	}
}
