// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rsvp

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

const (
	maxNotes = 500

	msgAssignmentNotFound = "Assignment not found"
	msgUnsettableStatus   = "Status must be accepted, declined or tentative"
	defaultResponderName  = "A crew member"
)

// Confirmation is what the link confirmation page shows, titles are empty when they could not be loaded
type Confirmation struct {
	Status     types.RSVPStatus
	EventTitle string
	BoatName   string
}

type Service struct {
	storage   StorageInterface
	signer    *Signer
	notifier  NotifierInterface
	publisher PublisherInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	signer *Signer,
	notifier NotifierInterface,
	publisher PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		signer:    signer,
		notifier:  notifier,
		publisher: publisher,
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// UpdateRsvp answers an assignment owned by actorID, assignments of other people read as not found
func (s *Service) UpdateRsvp(ctx context.Context, assignmentID, actorID string, status types.RSVPStatus, notes *string) (*types.EventAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "rsvp.Service.UpdateRsvp")
	defer span.End()

	if !status.Settable() {
		return nil, apperrors.Validation(msgUnsettableStatus)
	}

	notes = types.TextOrNil(notes)
	if notes != nil && utf8.RuneCountInString(*notes) > maxNotes {
		return nil, apperrors.Validation(fmt.Sprintf("Notes must be at most %d characters", maxNotes))
	}

	a, err := s.storage.UpdateOwnRSVP(ctx, assignmentID, actorID, status, notes, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgAssignmentNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	s.announce(ctx, a)

	return a, nil
}

// ConfirmRsvpViaToken answers an assignment from a signed link, the token stands in for the session
func (s *Service) ConfirmRsvpViaToken(ctx context.Context, assignmentID string, status types.RSVPStatus, token string) (*Confirmation, error) {
	ctx, span := s.tracer.Start(ctx, "rsvp.Service.ConfirmRsvpViaToken")
	defer span.End()

	if !status.Settable() {
		return nil, apperrors.Validation(msgUnsettableStatus)
	}

	if !s.signer.Verify(assignmentID, status, token) {
		s.logger.Security().TokenRejected("rsvp:"+assignmentID, "signature mismatch")
		return nil, apperrors.ErrInvalidToken
	}

	a, err := s.storage.UpdateRSVP(ctx, assignmentID, status, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgAssignmentNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	c := s.announce(ctx, a)

	confirmation := &Confirmation{Status: a.RSVPStatus}
	if c != nil {
		confirmation.EventTitle = c.EventTitle
		confirmation.BoatName = c.BoatName
	}

	return confirmation, nil
}

// announce publishes the change and tells the event creator, it returns the assignment context when loaded
func (s *Service) announce(ctx context.Context, a *types.EventAssignment) *types.AssignmentContext {
	if err := s.publisher.PublishAssignmentChanged(ctx, a); err != nil {
		s.logger.Warnf("failed to publish change of assignment %s: %v", a.ID, err)
	}

	c, err := s.storage.GetAssignmentContext(ctx, a.ID)
	if err != nil {
		s.logger.Warnf("failed to load context of assignment %s: %v", a.ID, err)
		return nil
	}

	if c.EventCreatedBy == "" || c.EventCreatedBy == a.UserID {
		return c
	}

	err = s.notifier.Notify(ctx, notifications.NotificationInput{
		UserID: c.EventCreatedBy,
		Type:   types.NotificationRSVPReceived,
		Title:  fmt.Sprintf("%s %s %s", s.responderName(ctx, a.UserID), verb(a.RSVPStatus), c.EventTitle),
		Data:   map[string]string{"boat_id": c.BoatID, "event_id": a.EventID, "assignment_id": a.ID, "status": string(a.RSVPStatus)},
	})
	if err != nil {
		s.logger.Warnf("failed to notify creator about assignment %s: %v", a.ID, err)
	}

	return c
}

func (s *Service) responderName(ctx context.Context, userID string) string {
	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil || p.Name() == "" {
		return defaultResponderName
	}
	return p.Name()
}

func verb(status types.RSVPStatus) string {
	switch status {
	case types.RSVPAccepted:
		return "is going to"
	case types.RSVPDeclined:
		return "can't make it to"
	default:
		return "might join"
	}
}
