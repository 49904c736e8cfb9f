// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/canonical/crew-service/internal/types"
)

var profileColumns = []string{
	"id", "email", "full_name", "display_name", "avatar_url", "phone", "weight_lbs",
	"sailing_experience", "default_roles", "timezone", "created_at", "updated_at",
}

func scanProfile(row rowScanner) (*types.Profile, error) {
	var p types.Profile
	var roles []string

	err := row.Scan(
		&p.ID, &p.Email, &p.FullName, &p.DisplayName, &p.AvatarURL, &p.Phone, &p.WeightLbs,
		&p.SailingExperience, pgtype.NewMap().SQLScanner(&roles), &p.Timezone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.DefaultRoles = make([]types.SailingPosition, 0, len(roles))
	for _, r := range roles {
		p.DefaultRoles = append(p.DefaultRoles, types.SailingPosition(r))
	}

	return &p, nil
}

func (s *Storage) CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	created, err := scanProfile(
		s.db.Statement(ctx).
			Insert("profiles").
			Columns("id", "email", "full_name", "display_name", "avatar_url").
			Values(p.ID, strings.ToLower(p.Email), p.FullName, p.DisplayName, p.AvatarURL).
			Suffix("RETURNING "+strings.Join(profileColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert profile")
	}

	return created, nil
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Select(profileColumns...).
			From("profiles").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get profile")
	}

	return p, nil
}

func (s *Storage) GetProfileByEmail(ctx context.Context, email string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfileByEmail")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Select(profileColumns...).
			From("profiles").
			Where(sq.Eq{"email": strings.ToLower(email)}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get profile by email")
	}

	return p, nil
}

// UpdateProfile applies the column changes and bumps updated_at
func (s *Storage) UpdateProfile(ctx context.Context, id string, changes map[string]any) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfile")
	defer span.End()

	p, err := scanProfile(
		s.db.Statement(ctx).
			Update("profiles").
			SetMap(changes).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING "+strings.Join(profileColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update profile")
	}

	return p, nil
}
