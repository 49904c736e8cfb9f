// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/crew-service/internal/types"
)

var membershipColumns = []string{"id", "boat_id", "user_id", "role", "sailing_position", "joined_at", "is_active"}

func scanMembership(row rowScanner) (*types.CrewMembership, error) {
	var m types.CrewMembership

	if err := row.Scan(&m.ID, &m.BoatID, &m.UserID, &m.Role, &m.SailingPosition, &m.JoinedAt, &m.IsActive); err != nil {
		return nil, err
	}

	return &m, nil
}

func prefixed(prefix string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, prefix+"."+c)
	}
	return out
}

// CreateMembership inserts an active membership, a second active row for the same person
// or a second owner fails with ErrDuplicateKey
func (s *Storage) CreateMembership(ctx context.Context, boatID, userID string, role types.CrewRole, position *types.SailingPosition) (*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	m, err := scanMembership(
		s.db.Statement(ctx).
			Insert("crew_memberships").
			Columns("id", "boat_id", "user_id", "role", "sailing_position", "is_active").
			Values(id, boatID, userID, role, position, true).
			Suffix("RETURNING "+strings.Join(membershipColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert membership")
	}

	return m, nil
}

func (s *Storage) GetMembership(ctx context.Context, id string) (*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	m, err := scanMembership(
		s.db.Statement(ctx).
			Select(membershipColumns...).
			From("crew_memberships").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get membership")
	}

	return m, nil
}

func (s *Storage) GetActiveMembership(ctx context.Context, boatID, userID string) (*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveMembership")
	defer span.End()

	m, err := scanMembership(
		s.db.Statement(ctx).
			Select(membershipColumns...).
			From("crew_memberships").
			Where(sq.Eq{"boat_id": boatID, "user_id": userID, "is_active": true}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get active membership")
	}

	return m, nil
}

// ListActiveMemberships returns the current roster of a boat, it is the fan-out source for events
func (s *Storage) ListActiveMemberships(ctx context.Context, boatID string) ([]*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveMemberships")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("crew_memberships").
		Where(sq.Eq{"boat_id": boatID, "is_active": true}).
		OrderBy("joined_at").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list memberships")
	}

	return collect(rows, func(row rowScanner) (*types.CrewMembership, error) {
		m, err := scanMembership(row)
		if err != nil {
			return nil, translate(err, "scan membership")
		}
		return m, nil
	})
}

func (s *Storage) ListCrewMembers(ctx context.Context, boatID string) ([]*types.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCrewMembers")
	defer span.End()

	columns := append(prefixed("m", membershipColumns), "p.email", "p.full_name", "p.display_name", "p.avatar_url")

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From("crew_memberships m").
		Join("profiles p ON p.id = m.user_id").
		Where(sq.Eq{"m.boat_id": boatID, "m.is_active": true}).
		OrderBy("m.role", "p.full_name").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list crew members")
	}

	return collect(rows, func(row rowScanner) (*types.CrewMember, error) {
		var cm types.CrewMember
		m := &cm.CrewMembership
		if err := row.Scan(
			&m.ID, &m.BoatID, &m.UserID, &m.Role, &m.SailingPosition, &m.JoinedAt, &m.IsActive,
			&cm.Email, &cm.FullName, &cm.DisplayName, &cm.AvatarURL,
		); err != nil {
			return nil, translate(err, "scan crew member")
		}
		return &cm, nil
	})
}

// UpdateMembership applies role and position changes to an active membership.
// A role change never matches the owner row.
func (s *Storage) UpdateMembership(ctx context.Context, id string, changes map[string]any) (*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembership")
	defer span.End()

	where := sq.And{sq.Eq{"id": id, "is_active": true}}
	if _, ok := changes["role"]; ok {
		where = append(where, sq.NotEq{"role": types.RoleOwner})
	}

	m, err := scanMembership(
		s.db.Statement(ctx).
			Update("crew_memberships").
			SetMap(changes).
			Where(where).
			Suffix("RETURNING "+strings.Join(membershipColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update membership")
	}

	return m, nil
}

// DeactivateMembership soft deletes a non owner active membership
func (s *Storage) DeactivateMembership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("crew_memberships").
		Set("is_active", false).
		Where(sq.Eq{"id": id, "is_active": true}).
		Where(sq.NotEq{"role": types.RoleOwner}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "deactivate membership")
	}

	return affected(res, "deactivate membership")
}

func (s *Storage) IsActiveMemberByEmail(ctx context.Context, boatID, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsActiveMemberByEmail")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("crew_memberships m").
		Join("profiles p ON p.id = m.user_id").
		Where(sq.Eq{"m.boat_id": boatID, "m.is_active": true}).
		Where(sq.Expr("lower(p.email) = lower(?)", email)).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, translate(err, "check membership by email")
	}

	return exists, nil
}

func (s *Storage) ListActiveBoatIDsByUser(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveBoatIDsByUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("boat_id").
		From("crew_memberships").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("boat_id").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list boat ids")
	}

	ids, err := collect(rows, func(row rowScanner) (*string, error) {
		var id string
		if err := row.Scan(&id); err != nil {
			return nil, translate(err, "scan boat id")
		}
		return &id, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, *id)
	}

	return out, nil
}
