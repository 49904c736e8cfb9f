// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boats

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/authorization"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

const msgBoatNotFound = "Boat not found"

type BoatInput struct {
	Name        string  `json:"name" validate:"required,notblank,max=100"`
	BoatType    *string `json:"boat_type" validate:"omitempty,max=100"`
	SailNumber  *string `json:"sail_number" validate:"omitempty,max=20"`
	HomePort    *string `json:"home_port" validate:"omitempty,max=200"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// BoatPatch only changes the fields present in the request, optional fields are cleared by null or ""
type BoatPatch struct {
	Name        *string                `json:"name" validate:"omitempty,notblank,max=100"`
	BoatType    types.Nullable[string] `json:"boat_type" validate:"omitempty,max=100"`
	SailNumber  types.Nullable[string] `json:"sail_number" validate:"omitempty,max=20"`
	HomePort    types.Nullable[string] `json:"home_port" validate:"omitempty,max=200"`
	PhotoURL    types.Nullable[string] `json:"photo_url" validate:"omitempty,url"`
	Description types.Nullable[string] `json:"description" validate:"omitempty,max=1000"`
}

func (p BoatPatch) columns() map[string]any {
	changes := make(map[string]any)

	if p.Name != nil {
		changes["name"] = strings.TrimSpace(*p.Name)
	}

	optional := map[string]types.Nullable[string]{
		"boat_type":   p.BoatType,
		"sail_number": p.SailNumber,
		"home_port":   p.HomePort,
		"photo_url":   p.PhotoURL,
		"description": p.Description,
	}
	for column, v := range optional {
		if v.Set {
			changes[column] = types.TextOrNil(v.Value)
		}
	}

	return changes
}

type Service struct {
	storage   StorageInterface
	owners    OwnerAssignerInterface
	authz     AuthorizerInterface
	publisher PublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	owners OwnerAssignerInterface,
	authz AuthorizerInterface,
	publisher PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		owners:    owners,
		authz:     authz,
		publisher: publisher,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// CreateBoat stores the boat and the owner membership of actorID atomically
func (s *Service) CreateBoat(ctx context.Context, actorID string, in BoatInput) (*types.UserBoat, error) {
	ctx, span := s.tracer.Start(ctx, "boats.Service.CreateBoat")
	defer span.End()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation("Boat name is required")
	}

	var boat *types.Boat
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateBoat(ctx, &types.Boat{
			Name:        name,
			BoatType:    types.TextOrNil(in.BoatType),
			SailNumber:  types.TextOrNil(in.SailNumber),
			HomePort:    types.TextOrNil(in.HomePort),
			PhotoURL:    types.TextOrNil(in.PhotoURL),
			Description: types.TextOrNil(in.Description),
			CreatedBy:   actorID,
		})
		if err != nil {
			return apperrors.Persistence(err)
		}

		if _, err := s.owners.AddOwner(ctx, created.ID, actorID); err != nil {
			return err
		}

		boat = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.authz.AssignBoatRole(ctx, boat.ID, actorID, types.RoleOwner); err != nil {
		s.logger.Errorf("failed to mirror owner of boat %s: %v", boat.ID, err)
	}

	return &types.UserBoat{Boat: *boat, Role: types.RoleOwner}, nil
}

// GetBoat is only visible to active members of the boat
func (s *Service) GetBoat(ctx context.Context, boatID, actorID string) (*types.UserBoat, error) {
	ctx, span := s.tracer.Start(ctx, "boats.Service.GetBoat")
	defer span.End()

	actor, err := s.actor(ctx, boatID, actorID)
	if err != nil {
		return nil, err
	}

	boat, err := s.storage.GetBoat(ctx, boatID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgBoatNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	return &types.UserBoat{Boat: *boat, Role: actor.Role}, nil
}

func (s *Service) UpdateBoat(ctx context.Context, boatID, actorID string, patch BoatPatch) (*types.Boat, error) {
	ctx, span := s.tracer.Start(ctx, "boats.Service.UpdateBoat")
	defer span.End()

	if err := s.authorize(ctx, boatID, actorID, authorization.ActionEditBoat); err != nil {
		return nil, err
	}

	changes := patch.columns()
	if name, ok := changes["name"]; ok && name == "" {
		return nil, apperrors.Validation("Boat name is required")
	}

	if len(changes) == 0 {
		boat, err := s.storage.GetBoat(ctx, boatID)
		if err != nil {
			return nil, apperrors.Persistence(err)
		}
		return boat, nil
	}

	boat, err := s.storage.UpdateBoat(ctx, boatID, changes)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgBoatNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	return boat, nil
}

// DeleteBoat cascades to memberships, events, assignments and invitations
func (s *Service) DeleteBoat(ctx context.Context, boatID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "boats.Service.DeleteBoat")
	defer span.End()

	if err := s.authorize(ctx, boatID, actorID, authorization.ActionDeleteBoat); err != nil {
		return err
	}

	if err := s.storage.DeleteBoat(ctx, boatID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound(msgBoatNotFound)
		}
		return apperrors.Persistence(err)
	}

	if err := s.authz.DeleteBoat(ctx, boatID); err != nil {
		s.logger.Errorf("failed to delete relationships of boat %s: %v", boatID, err)
	}

	if err := s.publisher.PublishCrewInvalidated(ctx, boatID, "boat_deleted"); err != nil {
		s.logger.Warnf("failed to publish deletion of boat %s: %v", boatID, err)
	}

	return nil
}

func (s *Service) ListBoats(ctx context.Context, userID string) ([]*types.UserBoat, error) {
	ctx, span := s.tracer.Start(ctx, "boats.Service.ListBoats")
	defer span.End()

	boats, err := s.storage.ListBoatsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return boats, nil
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

func (s *Service) authorize(ctx context.Context, boatID, actorID string, action authorization.Action) error {
	actor, err := s.actor(ctx, boatID, actorID)
	if err != nil {
		return err
	}

	decision := authorization.Evaluate(authorization.Request{Action: action, ActorID: actorID, ActorRole: actor.Role})
	if !decision.Allowed {
		s.logger.Security().AuthzFailure(actorID, string(action)+":"+boatID)
		return apperrors.Forbidden(decision.Reason)
	}

	return nil
}
