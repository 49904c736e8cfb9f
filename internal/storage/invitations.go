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

var invitationColumns = []string{
	"id", "boat_id", "invited_by", "invited_email", "role", "token", "status", "expires_at", "accepted_at", "created_at",
}

func scanInvitation(row rowScanner) (*types.Invitation, error) {
	var i types.Invitation

	if err := row.Scan(
		&i.ID, &i.BoatID, &i.InvitedBy, &i.InvitedEmail, &i.Role, &i.Token, &i.Status, &i.ExpiresAt, &i.AcceptedAt, &i.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &i, nil
}

// CreateInvitation inserts a pending invitation, a concurrent pending one for the same
// boat and email fails on ConstraintPendingInvite
func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanInvitation(
		s.db.Statement(ctx).
			Insert("invitations").
			Columns("id", "boat_id", "invited_by", "invited_email", "role", "token", "status", "expires_at").
			Values(id, inv.BoatID, inv.InvitedBy, strings.ToLower(inv.InvitedEmail), inv.Role, inv.Token, types.InvitationPending, inv.ExpiresAt).
			Suffix("RETURNING "+strings.Join(invitationColumns, ", ")).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert invitation")
	}

	return created, nil
}

func (s *Storage) GetInvitation(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitation")
	defer span.End()

	inv, err := scanInvitation(
		s.db.Statement(ctx).
			Select(invitationColumns...).
			From("invitations").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get invitation")
	}

	return inv, nil
}

// GetInvitationByToken looks the token up regardless of status, statuses restrict the match when given
func (s *Storage) GetInvitationByToken(ctx context.Context, token string, statuses ...types.InvitationStatus) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"token": token})

	if len(statuses) > 0 {
		query = query.Where(sq.Eq{"status": statuses})
	}

	inv, err := scanInvitation(query.QueryRowContext(ctx))
	if err != nil {
		return nil, translate(err, "get invitation by token")
	}

	return inv, nil
}

func (s *Storage) HasPendingInvitation(ctx context.Context, boatID, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasPendingInvitation")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("invitations").
		Where(sq.Eq{"boat_id": boatID, "status": types.InvitationPending}).
		Where(sq.Expr("lower(invited_email) = lower(?)", email)).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, translate(err, "check pending invitation")
	}

	return exists, nil
}

func (s *Storage) ListPendingInvitations(ctx context.Context, boatID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations").
		Where(sq.Eq{"boat_id": boatID, "status": types.InvitationPending}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list invitations")
	}

	return collect(rows, func(row rowScanner) (*types.Invitation, error) {
		inv, err := scanInvitation(row)
		if err != nil {
			return nil, translate(err, "scan invitation")
		}
		return inv, nil
	})
}

// TransitionInvitation moves an invitation from one status to another only if it is still in the
// expected status, it reports whether a row changed
func (s *Storage) TransitionInvitation(ctx context.Context, id string, from, to types.InvitationStatus, acceptedAt *time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionInvitation")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("invitations").
		Set("status", to).
		Where(sq.Eq{"id": id, "status": from})

	if acceptedAt != nil {
		query = query.Set("accepted_at", *acceptedAt)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return false, translate(err, "transition invitation")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, translate(err, "transition invitation")
	}

	return n > 0, nil
}
