// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

type ServiceInterface interface {
	CreateEvent(ctx context.Context, boatID, actorID string, in EventInput) (*types.EventDetails, error)
	UpdateEvent(ctx context.Context, eventID, actorID string, patch EventPatch) (*types.Event, error)
	DeleteEvent(ctx context.Context, eventID, actorID string) error
	GetEvent(ctx context.Context, eventID, actorID string) (*types.EventDetails, error)
	ListEvents(ctx context.Context, boatID, actorID string, offset, size uint64) ([]*types.Event, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetActiveMembership(ctx context.Context, boatID, userID string) (*types.CrewMembership, error)
	ListActiveMemberships(ctx context.Context, boatID string) ([]*types.CrewMembership, error)
	CreateEvent(ctx context.Context, e *types.Event) (*types.Event, error)
	GetEvent(ctx context.Context, id string) (*types.Event, error)
	UpdateEvent(ctx context.Context, id string, changes map[string]any) (*types.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, boatID string, offset, limit uint64) ([]*types.Event, error)
	CreateAssignments(ctx context.Context, eventID string, members []*types.CrewMembership) ([]*types.EventAssignment, error)
	ListAssignments(ctx context.Context, eventID string) ([]*types.EventAssignment, error)
}

type NotifierInterface interface {
	NotifyBoatCrew(ctx context.Context, boatID, excludeUserID string, in notifications.NotificationInput) error
}
