// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/crew-service/internal/types"
)

type Action string

const (
	ActionManageCrew   Action = "manage_crew"
	ActionChangeRole   Action = "change_role"
	ActionRemoveMember Action = "remove_member"
	ActionDeleteBoat   Action = "delete_boat"
	ActionManageEvents Action = "manage_events"
	ActionEditBoat     Action = "edit_boat"
)

const (
	ReasonManageCrew     = "Only owners and admins can manage crew members"
	ReasonAssignOwner    = "The owner role cannot be assigned"
	ReasonGrantAdmin     = "Only the boat owner can grant the admin role"
	ReasonRemoveSelf     = "You cannot remove yourself from the boat"
	ReasonRemoveOwner    = "Cannot remove the boat owner"
	ReasonRemoveAdmin    = "Only the boat owner can remove an admin"
	ReasonDeleteBoat     = "Only the boat owner can delete the boat"
	ReasonManageEvents   = "Only owners and admins can manage events"
	ReasonEditBoat       = "Only owners and admins can edit the boat"
	ReasonUnknownRole    = "Unknown crew role"
	ReasonUnknownAction  = "Unknown action"
	ReasonNoActorPresent = "You are not a member of this boat"
)

// Request describes who attempts what on whom, target fields are only read by the actions needing them
type Request struct {
	Action     Action
	ActorID    string
	ActorRole  types.CrewRole
	TargetID   string
	TargetRole types.CrewRole
	NewRole    types.CrewRole
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Evaluate applies the role hierarchy owner > admin > crew to a request
func Evaluate(r Request) Decision {
	if r.ActorRole == "" {
		return deny(ReasonNoActorPresent)
	}
	if !r.ActorRole.Valid() {
		return deny(ReasonUnknownRole)
	}

	switch r.Action {
	case ActionManageCrew:
		if !CanManageCrew(r.ActorRole) {
			return deny(ReasonManageCrew)
		}
	case ActionChangeRole:
		switch {
		case r.NewRole == types.RoleOwner:
			return deny(ReasonAssignOwner)
		case !r.NewRole.Valid():
			return deny(ReasonUnknownRole)
		case !CanManageCrew(r.ActorRole):
			return deny(ReasonManageCrew)
		case !CanChangeRoleTo(r.ActorRole, r.NewRole):
			return deny(ReasonGrantAdmin)
		}
	case ActionRemoveMember:
		isSelf := r.ActorID != "" && r.ActorID == r.TargetID
		switch {
		case isSelf:
			return deny(ReasonRemoveSelf)
		case r.TargetRole == types.RoleOwner:
			return deny(ReasonRemoveOwner)
		case !CanManageCrew(r.ActorRole):
			return deny(ReasonManageCrew)
		case !CanRemove(r.ActorRole, r.TargetRole, isSelf):
			return deny(ReasonRemoveAdmin)
		}
	case ActionDeleteBoat:
		if !CanDeleteBoat(r.ActorRole) {
			return deny(ReasonDeleteBoat)
		}
	case ActionManageEvents:
		if !CanManageEvents(r.ActorRole) {
			return deny(ReasonManageEvents)
		}
	case ActionEditBoat:
		if !CanEditBoat(r.ActorRole) {
			return deny(ReasonEditBoat)
		}
	default:
		return deny(ReasonUnknownAction)
	}

	return allow()
}

func CanManageCrew(actor types.CrewRole) bool {
	return actor == types.RoleOwner || actor == types.RoleAdmin
}

// CanChangeRoleTo never allows assigning owner, ownership is only set at boat creation
func CanChangeRoleTo(actor, newRole types.CrewRole) bool {
	switch newRole {
	case types.RoleAdmin:
		return actor == types.RoleOwner
	case types.RoleCrew:
		return CanManageCrew(actor)
	}
	return false
}

func CanRemove(actor, target types.CrewRole, isSelf bool) bool {
	if isSelf || target == types.RoleOwner || !target.Valid() {
		return false
	}
	return actor == types.RoleOwner || (actor == types.RoleAdmin && target == types.RoleCrew)
}

func CanDeleteBoat(actor types.CrewRole) bool {
	return actor == types.RoleOwner
}

func CanManageEvents(actor types.CrewRole) bool {
	return actor == types.RoleOwner || actor == types.RoleAdmin
}

func CanEditBoat(actor types.CrewRole) bool {
	return actor == types.RoleOwner || actor == types.RoleAdmin
}
