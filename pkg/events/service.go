// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/authorization"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

const (
	msgEventNotFound = "Event not found"
	startLayout      = "Mon, Jan 2 2006 15:04 MST"
)

type Service struct {
	storage  StorageInterface
	notifier NotifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateEvent stores the event and one pending assignment per active member in a single transaction,
// each assignment keeps the sailing position the member holds at creation time
func (s *Service) CreateEvent(ctx context.Context, boatID, actorID string, in EventInput) (*types.EventDetails, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.CreateEvent")
	defer span.End()

	event, err := in.event(boatID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, boatID, actorID); err != nil {
		return nil, err
	}

	details := new(types.EventDetails)
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateEvent(ctx, event)
		if err != nil {
			return apperrors.Persistence(err)
		}

		members, err := s.storage.ListActiveMemberships(ctx, boatID)
		if err != nil {
			return apperrors.Persistence(err)
		}

		assignments, err := s.storage.CreateAssignments(ctx, created.ID, members)
		if err != nil {
			return apperrors.Persistence(err)
		}

		details.Event = *created
		details.Assignments = assignments
		details.Summary = types.SummarizeRSVPs(assignments)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCrew(ctx, &details.Event, actorID, types.NotificationEventCreated, "New event: "+details.Event.Title)

	return details, nil
}

// UpdateEvent applies a partial update, concurrent edits are last write wins
func (s *Service) UpdateEvent(ctx context.Context, eventID, actorID string, patch EventPatch) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.UpdateEvent")
	defer span.End()

	current, err := s.event(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, current.BoatID, actorID); err != nil {
		return nil, err
	}

	changes, err := patch.columns(current)
	if err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		return current, nil
	}

	updated, err := s.storage.UpdateEvent(ctx, eventID, changes)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgEventNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	s.notifyCrew(ctx, updated, actorID, types.NotificationEventUpdated, "Event updated: "+updated.Title)

	return updated, nil
}

// DeleteEvent removes the event together with its assignments
func (s *Service) DeleteEvent(ctx context.Context, eventID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "events.Service.DeleteEvent")
	defer span.End()

	current, err := s.event(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, current.BoatID, actorID); err != nil {
		return err
	}

	if err := s.storage.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound(msgEventNotFound)
		}
		return apperrors.Persistence(err)
	}

	return nil
}

func (s *Service) GetEvent(ctx context.Context, eventID, actorID string) (*types.EventDetails, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.GetEvent")
	defer span.End()

	event, err := s.event(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, err := s.actor(ctx, event.BoatID, actorID); err != nil {
		return nil, err
	}

	assignments, err := s.storage.ListAssignments(ctx, eventID)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return &types.EventDetails{Event: *event, Assignments: assignments, Summary: types.SummarizeRSVPs(assignments)}, nil
}

func (s *Service) ListEvents(ctx context.Context, boatID, actorID string, offset, size uint64) ([]*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "events.Service.ListEvents")
	defer span.End()

	if _, err := s.actor(ctx, boatID, actorID); err != nil {
		return nil, err
	}

	events, err := s.storage.ListEvents(ctx, boatID, offset, size)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return events, nil
}

func (s *Service) notifyCrew(ctx context.Context, e *types.Event, actorID string, kind types.NotificationType, title string) {
	err := s.notifier.NotifyBoatCrew(ctx, e.BoatID, actorID, notifications.NotificationInput{
		Type:  kind,
		Title: title,
		Body:  fmt.Sprintf("%s on %s", e.Title, e.StartTime.Format(startLayout)),
		Data:  map[string]string{"boat_id": e.BoatID, "event_id": e.ID},
	})
	if err != nil {
		s.logger.Warnf("failed to notify crew about event %s: %v", e.ID, err)
	}
}

func (s *Service) event(ctx context.Context, eventID string) (*types.Event, error) {
	e, err := s.storage.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgEventNotFound)
		}
		return nil, apperrors.Persistence(err)
	}
	return e, nil
}

func (s *Service) actor(ctx context.Context, boatID, actorID string) (*types.CrewMembership, error) {
	m, err := s.storage.GetActiveMembership(ctx, boatID, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, apperrors.Persistence(err)
	}
	return m, nil
}

func (s *Service) authorize(ctx context.Context, boatID, actorID string) error {
	actor, err := s.actor(ctx, boatID, actorID)
	if err != nil {
		return err
	}

	if !authorization.CanManageEvents(actor.Role) {
		s.logger.Security().AuthzFailure(actorID, "events:manage:"+boatID)
		return apperrors.Forbidden(authorization.ReasonManageEvents)
	}

	return nil
}
