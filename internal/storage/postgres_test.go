// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/canonical/crew-service/internal/db"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/migrations"
)

const postgresImage = "postgres:16-alpine"

var (
	skipWhy  string
	dbClient *db.DBClient
)

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		skipWhy = "postgres tests disabled in short mode"
		os.Exit(m.Run())
	}

	container, err := startPostgres(context.Background())
	if err != nil {
		skipWhy = fmt.Sprintf("postgres container unavailable: %v", err)
		os.Exit(m.Run())
	}

	code := m.Run()

	if dbClient != nil {
		dbClient.Close()
	}
	if err := testcontainers.TerminateContainer(container); err != nil {
		fmt.Printf("failed to terminate postgres container: %v\n", err)
	}

	os.Exit(code)
}

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, error) {
	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("crew"),
		postgres.WithUsername("crew"),
		postgres.WithPassword("crew"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, err
	}

	if err := migrateUp(ctx, dsn); err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, err
	}

	logger := logging.NewNoopLogger()
	dbClient, err = db.NewDBClient(
		db.Config{DSN: dsn, MaxConns: 8, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: time.Minute},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("crew-service", logger),
		logger,
	)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, err
	}

	return container, nil
}

func migrateUp(ctx context.Context, dsn string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, conn, migrations.EmbedMigrations, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return err
	}

	_, err = provider.Up(ctx)
	return err
}

func newPostgresStorage(t *testing.T) *Storage {
	t.Helper()

	if skipWhy != "" {
		t.Skip(skipWhy)
	}

	logger := logging.NewNoopLogger()

	return NewStorage(dbClient, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("crew-service", logger), logger)
}

func newProfile(t *testing.T, s *Storage) *types.Profile {
	t.Helper()

	id := uuid.NewString()
	p, err := s.CreateProfile(context.Background(), &types.Profile{ID: id, Email: id + "@example.com"})
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return p
}

// newBoat creates a boat owned by a fresh profile and returns it with the owner membership
func newBoat(t *testing.T, s *Storage) (*types.Boat, *types.CrewMembership) {
	t.Helper()

	ctx := context.Background()
	owner := newProfile(t, s)

	boat, err := s.CreateBoat(ctx, &types.Boat{Name: "Wind Dancer", CreatedBy: owner.ID})
	if err != nil {
		t.Fatalf("failed to create boat: %v", err)
	}

	membership, err := s.CreateMembership(ctx, boat.ID, owner.ID, types.RoleOwner, nil)
	if err != nil {
		t.Fatalf("failed to create owner membership: %v", err)
	}

	return boat, membership
}

func pendingInvite(boatID, invitedBy, email string) *types.Invitation {
	return &types.Invitation{
		BoatID:       boatID,
		InvitedBy:    invitedBy,
		InvitedEmail: email,
		Role:         types.RoleCrew,
		Token:        uuid.NewString(),
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func expectConstraint(t *testing.T, err error, sentinel error, constraint string) {
	t.Helper()

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected %v, got %v", sentinel, err)
	}
	if got := ViolatedConstraint(err); got != constraint {
		t.Fatalf("expected violation of %s, got %q", constraint, got)
	}
}

func TestPostgres_PendingInvitationPerEmail(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
	}{
		{name: "same email", first: "sam@example.com", second: "sam@example.com"},
		{name: "mixed case email", first: "Sam@Example.com", second: "sAM@example.COM"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newPostgresStorage(t)
			ctx := context.Background()
			boat, owner := newBoat(t, s)

			first, err := s.CreateInvitation(ctx, pendingInvite(boat.ID, owner.UserID, test.first))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			pending, err := s.HasPendingInvitation(ctx, boat.ID, test.second)
			if err != nil || !pending {
				t.Fatalf("expected a pending invitation to be found, got %v, %v", pending, err)
			}

			_, err = s.CreateInvitation(ctx, pendingInvite(boat.ID, owner.UserID, test.second))
			expectConstraint(t, err, ErrDuplicateKey, ConstraintPendingInvite)

			// once the first is no longer pending the email can be invited again
			if _, err := s.TransitionInvitation(ctx, first.ID, types.InvitationPending, types.InvitationExpired, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := s.CreateInvitation(ctx, pendingInvite(boat.ID, owner.UserID, test.second)); err != nil {
				t.Fatalf("expected re-invite to succeed, got %v", err)
			}
		})
	}
}

func TestPostgres_RawMixedCaseInviteHitsIndex(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	boat, owner := newBoat(t, s)

	if _, err := s.CreateInvitation(ctx, pendingInvite(boat.ID, owner.UserID, "sam@example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// bypasses the lower casing done by CreateInvitation
	_, err := dbClient.Statement(ctx).
		Insert("invitations").
		Columns("id", "boat_id", "invited_by", "invited_email", "role", "token", "expires_at").
		Values(uuid.NewString(), boat.ID, owner.UserID, "SAM@Example.com", types.RoleCrew, uuid.NewString(), time.Now().Add(time.Hour)).
		ExecContext(ctx)

	expectConstraint(t, translate(err, "insert invitation"), ErrDuplicateKey, ConstraintPendingInvite)
}

func TestPostgres_ActiveMembership(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	boat, _ := newBoat(t, s)
	sam := newProfile(t, s)

	m, err := s.CreateMembership(ctx, boat.ID, sam.ID, types.RoleCrew, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.CreateMembership(ctx, boat.ID, sam.ID, types.RoleCrew, nil)
	expectConstraint(t, err, ErrDuplicateKey, ConstraintActiveMember)

	if err := s.DeactivateMembership(ctx, m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rejoined, err := s.CreateMembership(ctx, boat.ID, sam.ID, types.RoleAdmin, nil)
	if err != nil {
		t.Fatalf("expected re-adding after deactivation to succeed, got %v", err)
	}
	if rejoined.ID == m.ID || !rejoined.IsActive || rejoined.Role != types.RoleAdmin {
		t.Fatalf("unexpected membership %+v", rejoined)
	}

	if err := s.DeactivateMembership(ctx, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deactivating an inactive membership to be %v, got %v", ErrNotFound, err)
	}
}

func TestPostgres_SingleOwner(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	boat, _ := newBoat(t, s)
	sam := newProfile(t, s)

	_, err := s.CreateMembership(ctx, boat.ID, sam.ID, types.RoleOwner, nil)
	expectConstraint(t, err, ErrDuplicateKey, ConstraintSingleOwner)

	m, err := s.CreateMembership(ctx, boat.ID, sam.ID, types.RoleAdmin, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.UpdateMembership(ctx, m.ID, map[string]any{"role": types.RoleOwner})
	expectConstraint(t, err, ErrDuplicateKey, ConstraintSingleOwner)
}

func TestPostgres_OwnerRowGuards(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	boat, owner := newBoat(t, s)

	if err := s.DeactivateMembership(ctx, owner.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected owner deactivation to match nothing, got %v", err)
	}

	if _, err := s.UpdateMembership(ctx, owner.ID, map[string]any{"role": types.RoleCrew}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected owner role change to match nothing, got %v", err)
	}

	position := types.PositionHelmsman
	updated, err := s.UpdateMembership(ctx, owner.ID, map[string]any{"sailing_position": position})
	if err != nil {
		t.Fatalf("expected owner position change to succeed, got %v", err)
	}
	if updated.SailingPosition == nil || *updated.SailingPosition != position {
		t.Fatalf("unexpected position %v", updated.SailingPosition)
	}

	current, err := s.GetActiveMembership(ctx, boat.ID, owner.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Role != types.RoleOwner || !current.IsActive {
		t.Fatalf("owner row changed: %+v", current)
	}
}

func TestPostgres_TransitionInvitation(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	boat, owner := newBoat(t, s)

	inv, err := s.CreateInvitation(ctx, pendingInvite(boat.ID, owner.UserID, "sam@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)

	changed, err := s.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationAccepted, &now)
	if err != nil || !changed {
		t.Fatalf("expected first transition to change the row, got %v, %v", changed, err)
	}

	changed, err = s.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationAccepted, &now)
	if err != nil || changed {
		t.Fatalf("expected second transition to change nothing, got %v, %v", changed, err)
	}

	changed, err = s.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationExpired, nil)
	if err != nil || changed {
		t.Fatalf("expected accepted invitation not to expire, got %v, %v", changed, err)
	}

	got, err := s.GetInvitation(ctx, inv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != types.InvitationAccepted || got.AcceptedAt == nil || !got.AcceptedAt.Equal(now) {
		t.Fatalf("unexpected invitation %+v", got)
	}

	if _, err := s.GetInvitationByToken(ctx, inv.Token, types.InvitationPending); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected accepted token not to match pending, got %v", err)
	}
}

func TestPostgres_WithTxRollsBack(t *testing.T) {
	s := newPostgresStorage(t)
	ctx := context.Background()
	owner := newProfile(t, s)
	fail := errors.New("fan-out failed")

	var boatID string
	err := s.WithTx(ctx, func(ctx context.Context) error {
		boat, err := s.CreateBoat(ctx, &types.Boat{Name: "Sea Breeze", CreatedBy: owner.ID})
		if err != nil {
			return err
		}
		boatID = boat.ID
		return fail
	})
	if !errors.Is(err, fail) {
		t.Fatalf("expected %v, got %v", fail, err)
	}

	if _, err := s.GetBoat(ctx, boatID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected rolled back boat to be missing, got %v", err)
	}
}
