// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/crew-service/internal/types"
)

var assignmentColumns = []string{
	"id", "event_id", "user_id", "rsvp_status", "sailing_position", "notes", "responded_at", "created_at",
}

func scanAssignment(row rowScanner) (*types.EventAssignment, error) {
	var a types.EventAssignment

	if err := row.Scan(&a.ID, &a.EventID, &a.UserID, &a.RSVPStatus, &a.SailingPosition, &a.Notes, &a.RespondedAt, &a.CreatedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

// CreateAssignments bulk inserts one pending assignment per membership, snapshotting its sailing position
func (s *Storage) CreateAssignments(ctx context.Context, eventID string, members []*types.CrewMembership) ([]*types.EventAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAssignments")
	defer span.End()

	if len(members) == 0 {
		return []*types.EventAssignment{}, nil
	}

	query := s.db.Statement(ctx).
		Insert("event_assignments").
		Columns("id", "event_id", "user_id", "rsvp_status", "sailing_position")

	for _, m := range members {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		query = query.Values(id, eventID, m.UserID, types.RSVPPending, m.SailingPosition)
	}

	rows, err := query.
		Suffix("RETURNING " + strings.Join(assignmentColumns, ", ")).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "insert assignments")
	}

	return collect(rows, func(row rowScanner) (*types.EventAssignment, error) {
		a, err := scanAssignment(row)
		if err != nil {
			return nil, translate(err, "scan assignment")
		}
		return a, nil
	})
}

func (s *Storage) ListAssignments(ctx context.Context, eventID string) ([]*types.EventAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAssignments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(assignmentColumns...).
		From("event_assignments").
		Where(sq.Eq{"event_id": eventID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list assignments")
	}

	return collect(rows, func(row rowScanner) (*types.EventAssignment, error) {
		a, err := scanAssignment(row)
		if err != nil {
			return nil, translate(err, "scan assignment")
		}
		return a, nil
	})
}

// UpdateOwnRSVP updates the assignment only when it belongs to userID, ErrNotFound otherwise
func (s *Storage) UpdateOwnRSVP(ctx context.Context, assignmentID, userID string, status types.RSVPStatus, notes *string, respondedAt time.Time) (*types.EventAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOwnRSVP")
	defer span.End()

	a, err := scanAssignment(
		s.db.Statement(ctx).
			Update("event_assignments").
			Set("rsvp_status", status).
			Set("notes", notes).
			Set("responded_at", respondedAt).
			Where(sq.Eq{"id": assignmentID, "user_id": userID}).
			Suffix("RETURNING "+strings.Join(assignmentColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update rsvp")
	}

	return a, nil
}

// UpdateRSVP updates an assignment by id alone, callers must hold a proof bound to it
func (s *Storage) UpdateRSVP(ctx context.Context, assignmentID string, status types.RSVPStatus, respondedAt time.Time) (*types.EventAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateRSVP")
	defer span.End()

	a, err := scanAssignment(
		s.db.Statement(ctx).
			Update("event_assignments").
			Set("rsvp_status", status).
			Set("responded_at", respondedAt).
			Where(sq.Eq{"id": assignmentID}).
			Suffix("RETURNING "+strings.Join(assignmentColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update rsvp")
	}

	return a, nil
}

// GetAssignmentContext loads an assignment with the event and boat it belongs to
func (s *Storage) GetAssignmentContext(ctx context.Context, assignmentID string) (*types.AssignmentContext, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssignmentContext")
	defer span.End()

	columns := append(prefixed("a", assignmentColumns), "e.title", "e.created_by", "b.id", "b.name")

	var c types.AssignmentContext
	var a types.EventAssignment

	err := s.db.Statement(ctx).
		Select(columns...).
		From("event_assignments a").
		Join("events e ON e.id = a.event_id").
		Join("boats b ON b.id = e.boat_id").
		Where(sq.Eq{"a.id": assignmentID}).
		QueryRowContext(ctx).
		Scan(
			&a.ID, &a.EventID, &a.UserID, &a.RSVPStatus, &a.SailingPosition, &a.Notes, &a.RespondedAt, &a.CreatedAt,
			&c.EventTitle, &c.EventCreatedBy, &c.BoatID, &c.BoatName,
		)
	if err != nil {
		return nil, translate(err, "get assignment context")
	}

	c.Assignment = &a

	return &c, nil
}
