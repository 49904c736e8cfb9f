// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
)

type CrewRole string

const (
	RoleOwner CrewRole = "owner"
	RoleAdmin CrewRole = "admin"
	RoleCrew  CrewRole = "crew"
)

func (r CrewRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleCrew:
		return true
	}
	return false
}

// Rank orders roles by privilege, unknown roles rank lowest
func (r CrewRole) Rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleCrew:
		return 1
	}
	return 0
}

func (r CrewRole) String() string {
	return string(r)
}

type SailingPosition string

const (
	PositionSkipper   SailingPosition = "skipper"
	PositionHelmsman  SailingPosition = "helmsman"
	PositionTactician SailingPosition = "tactician"
	PositionTrimmer   SailingPosition = "trimmer"
	PositionBowman    SailingPosition = "bowman"
	PositionPit       SailingPosition = "pit"
	PositionGrinder   SailingPosition = "grinder"
	PositionNavigator SailingPosition = "navigator"
	PositionCrew      SailingPosition = "crew"
)

func (p SailingPosition) Valid() bool {
	switch p {
	case PositionSkipper, PositionHelmsman, PositionTactician, PositionTrimmer, PositionBowman,
		PositionPit, PositionGrinder, PositionNavigator, PositionCrew:
		return true
	}
	return false
}

func (p SailingPosition) String() string {
	return string(p)
}

type EventType string

const (
	EventRace        EventType = "race"
	EventPractice    EventType = "practice"
	EventSocial      EventType = "social"
	EventMaintenance EventType = "maintenance"
	EventOther       EventType = "other"
)

func (e EventType) Valid() bool {
	switch e {
	case EventRace, EventPractice, EventSocial, EventMaintenance, EventOther:
		return true
	}
	return false
}

func (e EventType) String() string {
	return string(e)
}

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPAccepted  RSVPStatus = "accepted"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPTentative RSVPStatus = "tentative"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPAccepted, RSVPDeclined, RSVPTentative:
		return true
	}
	return false
}

// Settable reports whether a person may move an assignment into this status, pending is only an initial state
func (s RSVPStatus) Settable() bool {
	switch s {
	case RSVPAccepted, RSVPDeclined, RSVPTentative:
		return true
	}
	return false
}

func (s RSVPStatus) String() string {
	return string(s)
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
)

func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationDeclined, InvitationExpired:
		return true
	}
	return false
}

// Terminal statuses never transition again
func (s InvitationStatus) Terminal() bool {
	return s == InvitationAccepted || s == InvitationDeclined || s == InvitationExpired
}

func (s InvitationStatus) String() string {
	return string(s)
}

type NotificationType string

const (
	NotificationInvitationReceived NotificationType = "invitation_received"
	NotificationInvitationAccepted NotificationType = "invitation_accepted"
	NotificationEventCreated       NotificationType = "event_created"
	NotificationEventUpdated       NotificationType = "event_updated"
	NotificationEventReminder      NotificationType = "event_reminder"
	NotificationRSVPReceived       NotificationType = "rsvp_received"
	NotificationTodoAssigned       NotificationType = "todo_assigned"
	NotificationTodoCompleted      NotificationType = "todo_completed"
)

func (n NotificationType) Valid() bool {
	switch n {
	case NotificationInvitationReceived, NotificationInvitationAccepted, NotificationEventCreated,
		NotificationEventUpdated, NotificationEventReminder, NotificationRSVPReceived,
		NotificationTodoAssigned, NotificationTodoCompleted:
		return true
	}
	return false
}

func (n NotificationType) String() string {
	return string(n)
}

type enum interface {
	~string
	Valid() bool
}

// Parse converts a raw value into one of the closed enums, rejecting unknown values
func Parse[T enum](raw string) (T, error) {
	v := T(raw)
	if !v.Valid() {
		var zero T
		return zero, fmt.Errorf("invalid %T value %q", zero, raw)
	}
	return v, nil
}
