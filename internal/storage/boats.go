// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/crew-service/internal/types"
)

var boatColumns = []string{
	"id", "name", "boat_type", "sail_number", "home_port", "photo_url", "description",
	"created_by", "created_at", "updated_at",
}

func scanBoat(row rowScanner) (*types.Boat, error) {
	var b types.Boat

	if err := row.Scan(
		&b.ID, &b.Name, &b.BoatType, &b.SailNumber, &b.HomePort, &b.PhotoURL, &b.Description,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Storage) CreateBoat(ctx context.Context, b *types.Boat) (*types.Boat, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBoat")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanBoat(
		s.db.Statement(ctx).
			Insert("boats").
			Columns("id", "name", "boat_type", "sail_number", "home_port", "photo_url", "description", "created_by").
			Values(id, b.Name, b.BoatType, b.SailNumber, b.HomePort, b.PhotoURL, b.Description, b.CreatedBy).
			Suffix("RETURNING "+strings.Join(boatColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert boat")
	}

	return created, nil
}

func (s *Storage) GetBoat(ctx context.Context, id string) (*types.Boat, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBoat")
	defer span.End()

	b, err := scanBoat(
		s.db.Statement(ctx).
			Select(boatColumns...).
			From("boats").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get boat")
	}

	return b, nil
}

func (s *Storage) UpdateBoat(ctx context.Context, id string, changes map[string]any) (*types.Boat, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBoat")
	defer span.End()

	b, err := scanBoat(
		s.db.Statement(ctx).
			Update("boats").
			SetMap(changes).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING "+strings.Join(boatColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update boat")
	}

	return b, nil
}

// DeleteBoat removes the boat, memberships, events, assignments and invitations cascade
func (s *Storage) DeleteBoat(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBoat")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("boats").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "delete boat")
	}

	return affected(res, "delete boat")
}

// ListBoatsByUser returns the boats where the person holds an active membership
func (s *Storage) ListBoatsByUser(ctx context.Context, userID string) ([]*types.UserBoat, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBoatsByUser")
	defer span.End()

	columns := make([]string, 0, len(boatColumns)+1)
	for _, c := range boatColumns {
		columns = append(columns, "b."+c)
	}
	columns = append(columns, "m.role")

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From("boats b").
		Join("crew_memberships m ON m.boat_id = b.id").
		Where(sq.Eq{"m.user_id": userID, "m.is_active": true}).
		OrderBy("b.name").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list boats")
	}

	return collect(rows, func(row rowScanner) (*types.UserBoat, error) {
		var ub types.UserBoat
		b := &ub.Boat
		if err := row.Scan(
			&b.ID, &b.Name, &b.BoatType, &b.SailNumber, &b.HomePort, &b.PhotoURL, &b.Description,
			&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt, &ub.Role,
		); err != nil {
			return nil, translate(err, "scan boat")
		}
		return &ub, nil
	})
}
