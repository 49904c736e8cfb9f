// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crew

import (
	"context"

	"github.com/canonical/crew-service/internal/types"
)

type ServiceInterface interface {
	AddOwner(ctx context.Context, boatID, personID string) (*types.CrewMembership, error)
	UpdateMember(ctx context.Context, membershipID, actorID string, changes MemberChanges) (*types.CrewMembership, error)
	RemoveMember(ctx context.Context, membershipID, actorID, boatID string) error
	ListMembers(ctx context.Context, boatID, actorID string) ([]*types.CrewMember, error)
	ListBoatIDsForUser(ctx context.Context, userID string) ([]string, error)
}

// StorageInterface is the subset of the storage layer touching crew_memberships
type StorageInterface interface {
	CreateMembership(ctx context.Context, boatID, userID string, role types.CrewRole, position *types.SailingPosition) (*types.CrewMembership, error)
	GetMembership(ctx context.Context, id string) (*types.CrewMembership, error)
	GetActiveMembership(ctx context.Context, boatID, userID string) (*types.CrewMembership, error)
	UpdateMembership(ctx context.Context, id string, changes map[string]any) (*types.CrewMembership, error)
	DeactivateMembership(ctx context.Context, id string) error
	ListCrewMembers(ctx context.Context, boatID string) ([]*types.CrewMember, error)
	ListActiveBoatIDsByUser(ctx context.Context, userID string) ([]string, error)
}

// AuthorizerInterface mirrors role changes into the relationship store
type AuthorizerInterface interface {
	AssignBoatRole(ctx context.Context, boatID, userID string, role types.CrewRole) error
	ChangeBoatRole(ctx context.Context, boatID, userID string, from, to types.CrewRole) error
	RemoveBoatMember(ctx context.Context, boatID, userID string, role types.CrewRole) error
}

type PublisherInterface interface {
	PublishCrewInvalidated(ctx context.Context, boatID string, reason string) error
}
