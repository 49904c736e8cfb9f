// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

type Profile struct {
	ID                string            `db:"id" json:"id"`
	Email             string            `db:"email" json:"email"`
	FullName          *string           `db:"full_name" json:"full_name"`
	DisplayName       *string           `db:"display_name" json:"display_name"`
	AvatarURL         *string           `db:"avatar_url" json:"avatar_url"`
	Phone             *string           `db:"phone" json:"phone"`
	WeightLbs         *int32            `db:"weight_lbs" json:"weight_lbs"`
	SailingExperience *string           `db:"sailing_experience" json:"sailing_experience"`
	DefaultRoles      []SailingPosition `db:"default_roles" json:"default_roles"`
	Timezone          *string           `db:"timezone" json:"timezone"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at" json:"updated_at"`
}

// Name returns the best human readable name of the profile, empty when none is set
func (p *Profile) Name() string {
	if p == nil {
		return ""
	}
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	if p.DisplayName != nil && *p.DisplayName != "" {
		return *p.DisplayName
	}
	return ""
}

type Boat struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	BoatType    *string   `db:"boat_type" json:"boat_type"`
	SailNumber  *string   `db:"sail_number" json:"sail_number"`
	HomePort    *string   `db:"home_port" json:"home_port"`
	PhotoURL    *string   `db:"photo_url" json:"photo_url"`
	Description *string   `db:"description" json:"description"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// UserBoat is a boat seen through the membership of a given person
type UserBoat struct {
	Boat
	Role CrewRole `json:"role"`
}

type CrewMembership struct {
	ID              string           `db:"id" json:"id"`
	BoatID          string           `db:"boat_id" json:"boat_id"`
	UserID          string           `db:"user_id" json:"user_id"`
	Role            CrewRole         `db:"role" json:"role"`
	SailingPosition *SailingPosition `db:"sailing_position" json:"sailing_position"`
	JoinedAt        time.Time        `db:"joined_at" json:"joined_at"`
	IsActive        bool             `db:"is_active" json:"is_active"`
}

// CrewMember is an active membership joined with the member profile
type CrewMember struct {
	CrewMembership
	Email       string  `json:"email"`
	FullName    *string `json:"full_name"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

type Event struct {
	ID          string     `db:"id" json:"id"`
	BoatID      string     `db:"boat_id" json:"boat_id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	EventType   EventType  `db:"event_type" json:"event_type"`
	Location    *string    `db:"location" json:"location"`
	StartTime   time.Time  `db:"start_time" json:"start_time"`
	EndTime     *time.Time `db:"end_time" json:"end_time"`
	AllDay      bool       `db:"all_day" json:"all_day"`
	CreatedBy   string     `db:"created_by" json:"created_by"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type EventAssignment struct {
	ID              string           `db:"id" json:"id"`
	EventID         string           `db:"event_id" json:"event_id"`
	UserID          string           `db:"user_id" json:"user_id"`
	RSVPStatus      RSVPStatus       `db:"rsvp_status" json:"rsvp_status"`
	SailingPosition *SailingPosition `db:"sailing_position" json:"sailing_position"`
	Notes           *string          `db:"notes" json:"notes"`
	RespondedAt     *time.Time       `db:"responded_at" json:"responded_at"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
}

// EventDetails is an event with its assignments
type EventDetails struct {
	Event
	Assignments []*EventAssignment `json:"assignments"`
	Summary     RSVPSummary        `json:"rsvp_summary"`
}

// RSVPSummary counts the assignments of an event per RSVP status
type RSVPSummary struct {
	Accepted  int `json:"accepted"`
	Tentative int `json:"tentative"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
	Total     int `json:"total"`
}

func SummarizeRSVPs(assignments []*EventAssignment) RSVPSummary {
	var sum RSVPSummary

	for _, a := range assignments {
		switch a.RSVPStatus {
		case RSVPAccepted:
			sum.Accepted++
		case RSVPTentative:
			sum.Tentative++
		case RSVPDeclined:
			sum.Declined++
		default:
			sum.Pending++
		}
		sum.Total++
	}

	return sum
}

// AssignmentContext carries the titles needed to confirm an RSVP to its author
type AssignmentContext struct {
	Assignment     *EventAssignment
	EventTitle     string
	EventCreatedBy string
	BoatID         string
	BoatName       string
}

type Invitation struct {
	ID           string           `db:"id" json:"id"`
	BoatID       string           `db:"boat_id" json:"boat_id"`
	InvitedBy    string           `db:"invited_by" json:"invited_by"`
	InvitedEmail string           `db:"invited_email" json:"invited_email"`
	Role         CrewRole         `db:"role" json:"role"`
	Token        string           `db:"token" json:"-"`
	Status       InvitationStatus `db:"status" json:"status"`
	ExpiresAt    time.Time        `db:"expires_at" json:"expires_at"`
	AcceptedAt   *time.Time       `db:"accepted_at" json:"accepted_at"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// Expired reports whether the invitation validity window is over at the given instant
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type Notification struct {
	ID        string           `db:"id" json:"id"`
	UserID    string           `db:"user_id" json:"user_id"`
	Type      NotificationType `db:"type" json:"type"`
	Title     string           `db:"title" json:"title"`
	Body      *string          `db:"body" json:"body"`
	Data      json.RawMessage  `db:"data" json:"data"`
	IsRead    bool             `db:"is_read" json:"is_read"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}
