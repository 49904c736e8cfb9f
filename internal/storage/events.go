// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/crew-service/internal/types"
)

var eventColumns = []string{
	"id", "boat_id", "title", "description", "event_type", "location", "start_time", "end_time", "all_day",
	"created_by", "created_at", "updated_at",
}

func scanEvent(row rowScanner) (*types.Event, error) {
	var e types.Event

	if err := row.Scan(
		&e.ID, &e.BoatID, &e.Title, &e.Description, &e.EventType, &e.Location, &e.StartTime, &e.EndTime, &e.AllDay,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Storage) CreateEvent(ctx context.Context, e *types.Event) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateEvent")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanEvent(
		s.db.Statement(ctx).
			Insert("events").
			Columns("id", "boat_id", "title", "description", "event_type", "location", "start_time", "end_time", "all_day", "created_by").
			Values(id, e.BoatID, e.Title, e.Description, e.EventType, e.Location, e.StartTime, e.EndTime, e.AllDay, e.CreatedBy).
			Suffix("RETURNING "+strings.Join(eventColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert event")
	}

	return created, nil
}

func (s *Storage) GetEvent(ctx context.Context, id string) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetEvent")
	defer span.End()

	e, err := scanEvent(
		s.db.Statement(ctx).
			Select(eventColumns...).
			From("events").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get event")
	}

	return e, nil
}

// UpdateEvent writes only the given columns, last write wins
func (s *Storage) UpdateEvent(ctx context.Context, id string, changes map[string]any) (*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateEvent")
	defer span.End()

	e, err := scanEvent(
		s.db.Statement(ctx).
			Update("events").
			SetMap(changes).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING "+strings.Join(eventColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update event")
	}

	return e, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteEvent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("events").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "delete event")
	}

	return affected(res, "delete event")
}

func (s *Storage) ListEvents(ctx context.Context, boatID string, offset, limit uint64) ([]*types.Event, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListEvents")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(eventColumns...).
		From("events").
		Where(sq.Eq{"boat_id": boatID}).
		OrderBy("start_time").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list events")
	}

	return collect(rows, func(row rowScanner) (*types.Event, error) {
		e, err := scanEvent(row)
		if err != nil {
			return nil, translate(err, "scan event")
		}
		return e, nil
	})
}
