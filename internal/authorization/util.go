// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/crew-service/internal/types"
)

const (
	OWNER_RELATION = "owner"
	ADMIN_RELATION = "admin"
	CREW_RELATION  = "crew"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func BoatTuple(boatId string) string {
	return "boat:" + boatId
}

// RoleRelation maps a crew role to the relation mirrored in OpenFGA
func RoleRelation(role types.CrewRole) string {
	switch role {
	case types.RoleOwner:
		return OWNER_RELATION
	case types.RoleAdmin:
		return ADMIN_RELATION
	default:
		return CREW_RELATION
	}
}
