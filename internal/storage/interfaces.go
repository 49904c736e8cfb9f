// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/crew-service/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, id string, changes map[string]any) (*types.Profile, error)

	CreateBoat(ctx context.Context, b *types.Boat) (*types.Boat, error)
	GetBoat(ctx context.Context, id string) (*types.Boat, error)
	UpdateBoat(ctx context.Context, id string, changes map[string]any) (*types.Boat, error)
	DeleteBoat(ctx context.Context, id string) error
	ListBoatsByUser(ctx context.Context, userID string) ([]*types.UserBoat, error)

	CreateMembership(ctx context.Context, boatID, userID string, role types.CrewRole, position *types.SailingPosition) (*types.CrewMembership, error)
	GetMembership(ctx context.Context, id string) (*types.CrewMembership, error)
	GetActiveMembership(ctx context.Context, boatID, userID string) (*types.CrewMembership, error)
	ListActiveMemberships(ctx context.Context, boatID string) ([]*types.CrewMembership, error)
	ListCrewMembers(ctx context.Context, boatID string) ([]*types.CrewMember, error)
	UpdateMembership(ctx context.Context, id string, changes map[string]any) (*types.CrewMembership, error)
	DeactivateMembership(ctx context.Context, id string) error
	IsActiveMemberByEmail(ctx context.Context, boatID, email string) (bool, error)
	ListActiveBoatIDsByUser(ctx context.Context, userID string) ([]string, error)

	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitation(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string, statuses ...types.InvitationStatus) (*types.Invitation, error)
	HasPendingInvitation(ctx context.Context, boatID, email string) (bool, error)
	ListPendingInvitations(ctx context.Context, boatID string) ([]*types.Invitation, error)
	TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus, acceptedAt *time.Time) (bool, error)

	CreateEvent(ctx context.Context, e *types.Event) (*types.Event, error)
	GetEvent(ctx context.Context, id string) (*types.Event, error)
	UpdateEvent(ctx context.Context, id string, changes map[string]any) (*types.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, boatID string, offset, limit uint64) ([]*types.Event, error)

	CreateAssignments(ctx context.Context, eventID string, members []*types.CrewMembership) ([]*types.EventAssignment, error)
	ListAssignments(ctx context.Context, eventID string) ([]*types.EventAssignment, error)
	UpdateOwnRSVP(ctx context.Context, assignmentID, userID string, status types.RSVPStatus, notes *string, respondedAt time.Time) (*types.EventAssignment, error)
	UpdateRSVP(ctx context.Context, assignmentID string, status types.RSVPStatus, respondedAt time.Time) (*types.EventAssignment, error)
	GetAssignmentContext(ctx context.Context, assignmentID string) (*types.AssignmentContext, error)

	CreateNotifications(ctx context.Context, notifications []*types.Notification) ([]*types.Notification, error)
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, offset, limit uint64) ([]*types.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}
