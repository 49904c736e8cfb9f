// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	if r, err := Parse[CrewRole]("admin"); err != nil || r != RoleAdmin {
		t.Errorf("expected admin, got %q, %v", r, err)
	}

	if _, err := Parse[CrewRole]("captain"); err == nil {
		t.Error("expected error for unknown role")
	}

	if p, err := Parse[SailingPosition]("bowman"); err != nil || p != PositionBowman {
		t.Errorf("expected bowman, got %q, %v", p, err)
	}

	if _, err := Parse[EventType]("regatta"); err == nil {
		t.Error("expected error for unknown event type")
	}

	if _, err := Parse[NotificationType]("rsvp_received"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRSVPStatusSettable(t *testing.T) {
	tests := []struct {
		status   RSVPStatus
		settable bool
	}{
		{status: RSVPPending, settable: false},
		{status: RSVPAccepted, settable: true},
		{status: RSVPDeclined, settable: true},
		{status: RSVPTentative, settable: true},
		{status: RSVPStatus("maybe"), settable: false},
	}

	for _, test := range tests {
		t.Run(string(test.status), func(t *testing.T) {
			if got := test.status.Settable(); got != test.settable {
				t.Errorf("expected %v, got %v", test.settable, got)
			}
		})
	}
}

func TestInvitationStatusTerminal(t *testing.T) {
	if InvitationPending.Terminal() {
		t.Error("pending must not be terminal")
	}

	for _, s := range []InvitationStatus{InvitationAccepted, InvitationDeclined, InvitationExpired} {
		if !s.Terminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
}

func TestCrewRoleRank(t *testing.T) {
	if !(RoleOwner.Rank() > RoleAdmin.Rank() && RoleAdmin.Rank() > RoleCrew.Rank() && RoleCrew.Rank() > CrewRole("x").Rank()) {
		t.Error("unexpected role ordering")
	}
}

func TestInvitationExpired(t *testing.T) {
	now := time.Now()
	inv := &Invitation{ExpiresAt: now.Add(time.Hour)}

	if inv.Expired(now) {
		t.Error("invitation should still be valid")
	}

	if !inv.Expired(now.Add(2 * time.Hour)) {
		t.Error("invitation should be expired")
	}
}

func TestProfileName(t *testing.T) {
	full, display := "Jane Sailor", "Jane"

	tests := []struct {
		name     string
		profile  *Profile
		expected string
	}{
		{name: "nil", profile: nil, expected: ""},
		{name: "full name", profile: &Profile{FullName: &full, DisplayName: &display}, expected: full},
		{name: "display name", profile: &Profile{DisplayName: &display}, expected: display},
		{name: "none", profile: &Profile{}, expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.profile.Name(); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestSummarizeRSVPs(t *testing.T) {
	assignments := []*EventAssignment{
		{RSVPStatus: RSVPDeclined},
		{RSVPStatus: RSVPPending},
		{RSVPStatus: RSVPAccepted},
		{RSVPStatus: RSVPDeclined},
	}

	if got := SummarizeRSVPs(nil); got != (RSVPSummary{}) {
		t.Errorf("expected empty summary, got %+v", got)
	}

	expected := RSVPSummary{Accepted: 1, Declined: 2, Pending: 1, Total: 4}
	if got := SummarizeRSVPs(assignments); got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}
