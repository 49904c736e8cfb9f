// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import (
	"time"

	"github.com/canonical/crew-service/internal/types"
)

type NotificationMessage struct {
	Notification *types.Notification `json:"notification"`
}

type AssignmentMessage struct {
	AssignmentID string           `json:"assignment_id"`
	EventID      string           `json:"event_id"`
	UserID       string           `json:"user_id"`
	RSVPStatus   types.RSVPStatus `json:"rsvp_status"`
	RespondedAt  *time.Time       `json:"responded_at"`
}

// InvalidateMessage tells subscribers that boat scoped views are stale
type InvalidateMessage struct {
	BoatID string    `json:"boat_id"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

type Topics struct {
	Notifications string
	Assignments   string
	Invalidate    string
}

func NewTopics(prefix string) Topics {
	if prefix == "" {
		prefix = "crew"
	}
	return Topics{
		Notifications: prefix + ".notifications",
		Assignments:   prefix + ".assignments",
		Invalidate:    prefix + ".invalidate",
	}
}
