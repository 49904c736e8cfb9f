// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/canonical/crew-service/internal/mail"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

type ServiceInterface interface {
	CreateInvitation(ctx context.Context, boatID, actorID, email string, role types.CrewRole) (*types.Invitation, error)
	RevokeInvitation(ctx context.Context, invitationID, actorID string) error
	AcceptInvitation(ctx context.Context, token, actorID string) (*AcceptResult, error)
	ViewInvitation(ctx context.Context, token string) (*InvitationView, error)
	ListPendingInvitations(ctx context.Context, boatID, actorID string) ([]*types.Invitation, error)
}

type StorageInterface interface {
	GetBoat(ctx context.Context, id string) (*types.Boat, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*types.Profile, error)
	GetActiveMembership(ctx context.Context, boatID, userID string) (*types.CrewMembership, error)
	CreateMembership(ctx context.Context, boatID, userID string, role types.CrewRole, position *types.SailingPosition) (*types.CrewMembership, error)
	IsActiveMemberByEmail(ctx context.Context, boatID, email string) (bool, error)
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	GetInvitation(ctx context.Context, id string) (*types.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string, statuses ...types.InvitationStatus) (*types.Invitation, error)
	HasPendingInvitation(ctx context.Context, boatID, email string) (bool, error)
	ListPendingInvitations(ctx context.Context, boatID string) ([]*types.Invitation, error)
	TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus, acceptedAt *time.Time) (bool, error)
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, msg *mail.InvitationMail) error
}

type NotifierInterface interface {
	Notify(ctx context.Context, in notifications.NotificationInput) error
}

type AuthorizerInterface interface {
	AssignBoatRole(ctx context.Context, boatID, userID string, role types.CrewRole) error
}

type PublisherInterface interface {
	PublishCrewInvalidated(ctx context.Context, boatID string, reason string) error
}
