// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crew

import (
	"context"
	"errors"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/authorization"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

const (
	msgMemberNotFound  = "Crew member not found"
	msgUpdateMembers   = "Only owners and admins can update crew members"
	msgRemoveMembers   = "Only owners and admins can remove crew members"
	msgPromoteAdmin    = "Only owners can promote members to admin"
	msgRemoveAdmin     = "Only owners can remove admins"
	msgManageSelf      = "You cannot change your own membership"
	msgChangeAdminRole = "Only owners can change the role of an admin"
)

// MemberChanges is a partial update of a membership, a nil Role leaves the role untouched
// and an unset SailingPosition leaves the position untouched
type MemberChanges struct {
	Role            *types.CrewRole
	SailingPosition types.Nullable[types.SailingPosition]
}

func (c MemberChanges) empty() bool {
	return c.Role == nil && !c.SailingPosition.Set
}

type Service struct {
	storage   StorageInterface
	authz     AuthorizerInterface
	publisher PublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	publisher PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		authz:     authz,
		publisher: publisher,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// AddOwner creates the owner membership of a freshly created boat, it joins the transaction of ctx if any
func (s *Service) AddOwner(ctx context.Context, boatID, personID string) (*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "crew.Service.AddOwner")
	defer span.End()

	m, err := s.storage.CreateMembership(ctx, boatID, personID, types.RoleOwner, nil)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.ErrConflict.WithMessage("This boat already has an owner").Wrap(err)
		}
		return nil, apperrors.Persistence(err)
	}

	return m, nil
}

func (s *Service) UpdateMember(ctx context.Context, membershipID, actorID string, changes MemberChanges) (*types.CrewMembership, error) {
	ctx, span := s.tracer.Start(ctx, "crew.Service.UpdateMember")
	defer span.End()

	target, err := s.activeMembership(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	actor, err := s.actorMembership(ctx, target.BoatID, actorID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanManageCrew(actor.Role) {
		s.logger.Security().AuthzFailure(actorID, "crew:update:"+target.BoatID)
		return nil, apperrors.Forbidden(msgUpdateMembers)
	}

	if changes.Role != nil {
		switch {
		case target.Role == types.RoleOwner:
			return nil, apperrors.ErrOwnerRoleImmutable
		case *changes.Role == types.RoleOwner:
			return nil, apperrors.Validation(authorization.ReasonAssignOwner)
		case !changes.Role.Valid():
			return nil, apperrors.Validation("role has an invalid value")
		case *changes.Role == types.RoleAdmin && !authorization.CanChangeRoleTo(actor.Role, types.RoleAdmin):
			return nil, apperrors.ErrInsufficientPrivilege.WithMessage(msgPromoteAdmin)
		}
	}

	if actor.ID == target.ID {
		return nil, apperrors.Forbidden(msgManageSelf)
	}

	if changes.Role != nil && actor.Role == types.RoleAdmin && target.Role == types.RoleAdmin {
		return nil, apperrors.ErrInsufficientPrivilege.WithMessage(msgChangeAdminRole)
	}

	if changes.SailingPosition.Value != nil && !changes.SailingPosition.Value.Valid() {
		return nil, apperrors.Validation("sailing_position has an invalid value")
	}

	if changes.empty() {
		return target, nil
	}

	columns := make(map[string]any)
	if changes.Role != nil {
		columns["role"] = *changes.Role
	}
	if changes.SailingPosition.Set {
		columns["sailing_position"] = changes.SailingPosition.Value
	}

	updated, err := s.storage.UpdateMembership(ctx, target.ID, columns)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgMemberNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	if changes.Role != nil && *changes.Role != target.Role {
		if err := s.authz.ChangeBoatRole(ctx, target.BoatID, target.UserID, target.Role, *changes.Role); err != nil {
			s.logger.Errorf("failed to mirror role change of %s on boat %s: %v", target.UserID, target.BoatID, err)
		}
	}

	s.invalidate(ctx, target.BoatID, "member_updated")

	return updated, nil
}

// RemoveMember soft deletes a membership of boatID, the owner is never removed
func (s *Service) RemoveMember(ctx context.Context, membershipID, actorID, boatID string) error {
	ctx, span := s.tracer.Start(ctx, "crew.Service.RemoveMember")
	defer span.End()

	actor, err := s.actorMembership(ctx, boatID, actorID)
	if err != nil {
		return err
	}

	if !authorization.CanManageCrew(actor.Role) {
		s.logger.Security().AuthzFailure(actorID, "crew:remove:"+boatID)
		return apperrors.Forbidden(msgRemoveMembers)
	}

	target, err := s.activeMembership(ctx, membershipID)
	if err != nil {
		return err
	}

	if target.BoatID != boatID {
		return apperrors.NotFound(msgMemberNotFound)
	}

	decision := authorization.Evaluate(authorization.Request{
		Action:     authorization.ActionRemoveMember,
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		TargetID:   target.UserID,
		TargetRole: target.Role,
	})

	if !decision.Allowed {
		s.logger.Security().AuthzFailure(actorID, "crew:remove:"+boatID)

		switch decision.Reason {
		case authorization.ReasonRemoveOwner, authorization.ReasonRemoveSelf:
			return apperrors.Forbidden(decision.Reason)
		case authorization.ReasonRemoveAdmin:
			return apperrors.ErrInsufficientPrivilege.WithMessage(msgRemoveAdmin)
		default:
			return apperrors.ErrInsufficientPrivilege.WithMessage(decision.Reason)
		}
	}

	if err := s.storage.DeactivateMembership(ctx, target.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound(msgMemberNotFound)
		}
		return apperrors.Persistence(err)
	}

	if err := s.authz.RemoveBoatMember(ctx, boatID, target.UserID, target.Role); err != nil {
		s.logger.Errorf("failed to remove %s from boat %s in the relationship store: %v", target.UserID, boatID, err)
	}

	s.invalidate(ctx, boatID, "member_removed")

	return nil
}

func (s *Service) ListMembers(ctx context.Context, boatID, actorID string) ([]*types.CrewMember, error) {
	ctx, span := s.tracer.Start(ctx, "crew.Service.ListMembers")
	defer span.End()

	if _, err := s.actorMembership(ctx, boatID, actorID); err != nil {
		return nil, err
	}

	members, err := s.storage.ListCrewMembers(ctx, boatID)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return members, nil
}

func (s *Service) ListBoatIDsForUser(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "crew.Service.ListBoatIDsForUser")
	defer span.End()

	ids, err := s.storage.ListActiveBoatIDsByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return ids, nil
}

func (s *Service) activeMembership(ctx context.Context, membershipID string) (*types.CrewMembership, error) {
	m, err := s.storage.GetMembership(ctx, membershipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgMemberNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	if !m.IsActive {
		return nil, apperrors.NotFound(msgMemberNotFound)
	}

	return m, nil
}

func (s *Service) actorMembership(ctx context.Context, boatID, actorID string) (*types.CrewMembership, error) {
	m, err := s.storage.GetActiveMembership(ctx, boatID, actorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, apperrors.Persistence(err)
	}

	return m, nil
}

func (s *Service) invalidate(ctx context.Context, boatID, reason string) {
	if err := s.publisher.PublishCrewInvalidated(ctx, boatID, reason); err != nil {
		s.logger.Warnf("failed to publish crew invalidation for boat %s: %v", boatID, err)
	}
}
