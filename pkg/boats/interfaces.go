// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boats

import (
	"context"

	"github.com/canonical/crew-service/internal/types"
)

type ServiceInterface interface {
	CreateBoat(ctx context.Context, actorID string, in BoatInput) (*types.UserBoat, error)
	GetBoat(ctx context.Context, boatID, actorID string) (*types.UserBoat, error)
	UpdateBoat(ctx context.Context, boatID, actorID string, patch BoatPatch) (*types.Boat, error)
	DeleteBoat(ctx context.Context, boatID, actorID string) error
	ListBoats(ctx context.Context, userID string) ([]*types.UserBoat, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateBoat(ctx context.Context, b *types.Boat) (*types.Boat, error)
	GetBoat(ctx context.Context, id string) (*types.Boat, error)
	UpdateBoat(ctx context.Context, id string, changes map[string]any) (*types.Boat, error)
	DeleteBoat(ctx context.Context, id string) error
	ListBoatsByUser(ctx context.Context, userID string) ([]*types.UserBoat, error)
	GetActiveMembership(ctx context.Context, boatID, userID string) (*types.CrewMembership, error)
}

// OwnerAssignerInterface creates the owner membership of a new boat
type OwnerAssignerInterface interface {
	AddOwner(ctx context.Context, boatID, personID string) (*types.CrewMembership, error)
}

type AuthorizerInterface interface {
	AssignBoatRole(ctx context.Context, boatID, userID string, role types.CrewRole) error
	DeleteBoat(ctx context.Context, boatID string) error
}

type PublisherInterface interface {
	PublishCrewInvalidated(ctx context.Context, boatID string, reason string) error
}
