// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"strings"
	"time"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/types"
)

type EventInput struct {
	Title       string          `json:"title" validate:"required,notblank,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	EventType   types.EventType `json:"event_type" validate:"required,enum"`
	Location    *string         `json:"location" validate:"omitempty,max=200"`
	StartTime   string          `json:"start_time" validate:"required,rfc3339"`
	EndTime     *string         `json:"end_time" validate:"omitempty,rfc3339"`
	AllDay      bool            `json:"all_day"`
}

// EventPatch changes only the fields present, description, location and end_time are cleared by null or ""
type EventPatch struct {
	Title       *string                `json:"title" validate:"omitempty,notblank,max=200"`
	Description types.Nullable[string] `json:"description" validate:"omitempty,max=2000"`
	EventType   *types.EventType       `json:"event_type" validate:"omitempty,enum"`
	Location    types.Nullable[string] `json:"location" validate:"omitempty,max=200"`
	StartTime   *string                `json:"start_time" validate:"omitempty,rfc3339"`
	EndTime     types.Nullable[string] `json:"end_time" validate:"omitempty,rfc3339"`
	AllDay      *bool                  `json:"all_day"`
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperrors.Validation(field + " must be an RFC3339 timestamp")
	}
	return t.UTC(), nil
}

func checkWindow(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return apperrors.Validation("End time must not be before the start time")
	}
	return nil
}

func (in EventInput) event(boatID, actorID string) (*types.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation("Event title is required")
	}
	if !in.EventType.Valid() {
		return nil, apperrors.Validation("Unknown event type")
	}

	start, err := parseTime("start_time", in.StartTime)
	if err != nil {
		return nil, err
	}

	var end *time.Time
	if raw := types.TextOrNil(in.EndTime); raw != nil {
		t, err := parseTime("end_time", *raw)
		if err != nil {
			return nil, err
		}
		end = &t
	}

	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	return &types.Event{
		BoatID:      boatID,
		Title:       title,
		Description: types.TextOrNil(in.Description),
		EventType:   in.EventType,
		Location:    types.TextOrNil(in.Location),
		StartTime:   start,
		EndTime:     end,
		AllDay:      in.AllDay,
		CreatedBy:   actorID,
	}, nil
}

// columns turns the patch into column changes, current is used to check the resulting time window
func (p EventPatch) columns(current *types.Event) (map[string]any, error) {
	changes := make(map[string]any)

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, apperrors.Validation("Event title is required")
		}
		changes["title"] = title
	}

	if p.EventType != nil {
		if !p.EventType.Valid() {
			return nil, apperrors.Validation("Unknown event type")
		}
		changes["event_type"] = *p.EventType
	}

	if p.Description.Set {
		changes["description"] = types.TextOrNil(p.Description.Value)
	}

	if p.Location.Set {
		changes["location"] = types.TextOrNil(p.Location.Value)
	}

	if p.AllDay != nil {
		changes["all_day"] = *p.AllDay
	}

	start := current.StartTime
	if p.StartTime != nil {
		t, err := parseTime("start_time", *p.StartTime)
		if err != nil {
			return nil, err
		}
		start = t
		changes["start_time"] = t
	}

	end := current.EndTime
	if p.EndTime.Set {
		end = nil
		if raw := types.TextOrNil(p.EndTime.Value); raw != nil {
			t, err := parseTime("end_time", *raw)
			if err != nil {
				return nil, err
			}
			end = &t
		}
		changes["end_time"] = end
	}

	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	return changes, nil
}
