// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rsvp

import (
	"context"
	"time"

	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

type ServiceInterface interface {
	UpdateRsvp(ctx context.Context, assignmentID, actorID string, status types.RSVPStatus, notes *string) (*types.EventAssignment, error)
	ConfirmRsvpViaToken(ctx context.Context, assignmentID string, status types.RSVPStatus, token string) (*Confirmation, error)
}

type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	UpdateOwnRSVP(ctx context.Context, assignmentID, userID string, status types.RSVPStatus, notes *string, respondedAt time.Time) (*types.EventAssignment, error)
	UpdateRSVP(ctx context.Context, assignmentID string, status types.RSVPStatus, respondedAt time.Time) (*types.EventAssignment, error)
	GetAssignmentContext(ctx context.Context, assignmentID string) (*types.AssignmentContext, error)
}

type NotifierInterface interface {
	Notify(ctx context.Context, in notifications.NotificationInput) error
}

type PublisherInterface interface {
	PublishAssignmentChanged(ctx context.Context, assignment *types.EventAssignment) error
}
