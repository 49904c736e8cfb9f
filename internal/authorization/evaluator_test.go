// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"testing"

	"github.com/canonical/crew-service/internal/types"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name           string
		request        Request
		expectedAllow  bool
		expectedReason string
	}{
		{
			name:          "owner manages crew",
			request:       Request{Action: ActionManageCrew, ActorRole: types.RoleOwner},
			expectedAllow: true,
		},
		{
			name:          "admin manages crew",
			request:       Request{Action: ActionManageCrew, ActorRole: types.RoleAdmin},
			expectedAllow: true,
		},
		{
			name:           "crew cannot manage crew",
			request:        Request{Action: ActionManageCrew, ActorRole: types.RoleCrew},
			expectedReason: ReasonManageCrew,
		},
		{
			name:           "missing actor role",
			request:        Request{Action: ActionManageCrew},
			expectedReason: ReasonNoActorPresent,
		},
		{
			name:           "unknown actor role",
			request:        Request{Action: ActionManageCrew, ActorRole: types.CrewRole("captain")},
			expectedReason: ReasonUnknownRole,
		},
		{
			name:          "owner grants admin",
			request:       Request{Action: ActionChangeRole, ActorRole: types.RoleOwner, NewRole: types.RoleAdmin},
			expectedAllow: true,
		},
		{
			name:           "admin cannot grant admin",
			request:        Request{Action: ActionChangeRole, ActorRole: types.RoleAdmin, NewRole: types.RoleAdmin},
			expectedReason: ReasonGrantAdmin,
		},
		{
			name:          "admin sets crew role",
			request:       Request{Action: ActionChangeRole, ActorRole: types.RoleAdmin, NewRole: types.RoleCrew},
			expectedAllow: true,
		},
		{
			name:           "crew cannot change roles",
			request:        Request{Action: ActionChangeRole, ActorRole: types.RoleCrew, NewRole: types.RoleCrew},
			expectedReason: ReasonManageCrew,
		},
		{
			name:           "owner role is never assignable",
			request:        Request{Action: ActionChangeRole, ActorRole: types.RoleOwner, NewRole: types.RoleOwner},
			expectedReason: ReasonAssignOwner,
		},
		{
			name:           "unknown new role",
			request:        Request{Action: ActionChangeRole, ActorRole: types.RoleOwner, NewRole: types.CrewRole("mate")},
			expectedReason: ReasonUnknownRole,
		},
		{
			name:          "owner removes admin",
			request:       Request{Action: ActionRemoveMember, ActorRole: types.RoleOwner, ActorID: "a", TargetRole: types.RoleAdmin, TargetID: "b"},
			expectedAllow: true,
		},
		{
			name:          "admin removes crew",
			request:       Request{Action: ActionRemoveMember, ActorRole: types.RoleAdmin, ActorID: "a", TargetRole: types.RoleCrew, TargetID: "b"},
			expectedAllow: true,
		},
		{
			name:           "admin cannot remove admin",
			request:        Request{Action: ActionRemoveMember, ActorRole: types.RoleAdmin, ActorID: "a", TargetRole: types.RoleAdmin, TargetID: "b"},
			expectedReason: ReasonRemoveAdmin,
		},
		{
			name:           "nobody removes the owner",
			request:        Request{Action: ActionRemoveMember, ActorRole: types.RoleOwner, ActorID: "a", TargetRole: types.RoleOwner, TargetID: "b"},
			expectedReason: ReasonRemoveOwner,
		},
		{
			name:           "self removal denied",
			request:        Request{Action: ActionRemoveMember, ActorRole: types.RoleAdmin, ActorID: "a", TargetRole: types.RoleAdmin, TargetID: "a"},
			expectedReason: ReasonRemoveSelf,
		},
		{
			name:           "crew cannot remove crew",
			request:        Request{Action: ActionRemoveMember, ActorRole: types.RoleCrew, ActorID: "a", TargetRole: types.RoleCrew, TargetID: "b"},
			expectedReason: ReasonManageCrew,
		},
		{
			name:          "owner deletes boat",
			request:       Request{Action: ActionDeleteBoat, ActorRole: types.RoleOwner},
			expectedAllow: true,
		},
		{
			name:           "admin cannot delete boat",
			request:        Request{Action: ActionDeleteBoat, ActorRole: types.RoleAdmin},
			expectedReason: ReasonDeleteBoat,
		},
		{
			name:          "admin manages events",
			request:       Request{Action: ActionManageEvents, ActorRole: types.RoleAdmin},
			expectedAllow: true,
		},
		{
			name:           "crew cannot manage events",
			request:        Request{Action: ActionManageEvents, ActorRole: types.RoleCrew},
			expectedReason: ReasonManageEvents,
		},
		{
			name:          "admin edits boat",
			request:       Request{Action: ActionEditBoat, ActorRole: types.RoleAdmin},
			expectedAllow: true,
		},
		{
			name:           "crew cannot edit boat",
			request:        Request{Action: ActionEditBoat, ActorRole: types.RoleCrew},
			expectedReason: ReasonEditBoat,
		},
		{
			name:           "unknown action",
			request:        Request{Action: Action("sink"), ActorRole: types.RoleOwner},
			expectedReason: ReasonUnknownAction,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(tc.request)

			if d.Allowed != tc.expectedAllow {
				t.Fatalf("expected allowed %v, got %v (%s)", tc.expectedAllow, d.Allowed, d.Reason)
			}

			if d.Reason != tc.expectedReason {
				t.Fatalf("expected reason %q, got %q", tc.expectedReason, d.Reason)
			}
		})
	}
}

func TestCanRemove(t *testing.T) {
	roles := []types.CrewRole{types.RoleOwner, types.RoleAdmin, types.RoleCrew}

	for _, actor := range roles {
		for _, target := range roles {
			for _, isSelf := range []bool{true, false} {
				expected := !isSelf && target != types.RoleOwner &&
					(actor == types.RoleOwner || (actor == types.RoleAdmin && target == types.RoleCrew))

				if got := CanRemove(actor, target, isSelf); got != expected {
					t.Errorf("CanRemove(%s, %s, %v): expected %v, got %v", actor, target, isSelf, expected, got)
				}
			}
		}
	}
}

func TestCanChangeRoleTo(t *testing.T) {
	testCases := []struct {
		actor    types.CrewRole
		newRole  types.CrewRole
		expected bool
	}{
		{types.RoleOwner, types.RoleAdmin, true},
		{types.RoleOwner, types.RoleCrew, true},
		{types.RoleOwner, types.RoleOwner, false},
		{types.RoleAdmin, types.RoleAdmin, false},
		{types.RoleAdmin, types.RoleCrew, true},
		{types.RoleCrew, types.RoleCrew, false},
		{types.RoleCrew, types.RoleAdmin, false},
	}

	for _, tc := range testCases {
		if got := CanChangeRoleTo(tc.actor, tc.newRole); got != tc.expected {
			t.Errorf("CanChangeRoleTo(%s, %s): expected %v, got %v", tc.actor, tc.newRole, tc.expected, got)
		}
	}
}
