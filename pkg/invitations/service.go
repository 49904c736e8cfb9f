// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/authorization"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/mail"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

const (
	tokenBytes = 32

	defaultInviterName = "Someone"
	defaultBoatName    = "a boat"
)

type ViewState string

const (
	StateNotFound ViewState = "not_found"
	StateExpired  ViewState = "expired"
	StateAccepted ViewState = "accepted"
	StatePending  ViewState = "pending"
)

// AcceptResult tells the caller which boat was joined, AlreadyMember is set when the person
// was on the crew before accepting
type AcceptResult struct {
	BoatID        string `json:"boat_id"`
	AlreadyMember bool   `json:"already_member"`
}

// InvitationView is what the invite landing page shows, fields other than State are empty when not found
type InvitationView struct {
	State       ViewState  `json:"state"`
	BoatID      string     `json:"boat_id,omitempty"`
	BoatName    string     `json:"boat_name,omitempty"`
	Role        string     `json:"role,omitempty"`
	InviterName string     `json:"inviter_name,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type Service struct {
	storage   StorageInterface
	mailer    MailerInterface
	notifier  NotifierInterface
	authz     AuthorizerInterface
	publisher PublisherInterface

	lifetime time.Duration
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	mailer MailerInterface,
	notifier NotifierInterface,
	authz AuthorizerInterface,
	publisher PublisherInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		mailer:    mailer,
		notifier:  notifier,
		authz:     authz,
		publisher: publisher,
		lifetime:  lifetime,
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CreateInvitation invites email to boatID, the mail and the in-app notification are best effort
func (s *Service) CreateInvitation(ctx context.Context, boatID, actorID, email string, role types.CrewRole) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.CreateInvitation")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.Validation("Email is required")
	}

	if role == "" {
		role = types.RoleCrew
	}
	if role == types.RoleOwner {
		return nil, apperrors.Validation(authorization.ReasonAssignOwner)
	}
	if !role.Valid() {
		return nil, apperrors.Validation(authorization.ReasonUnknownRole)
	}

	actor, err := s.actor(ctx, boatID, actorID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanManageCrew(actor.Role) {
		s.logger.Security().AuthzFailure(actorID, "crew:invite:"+boatID)
		return nil, apperrors.Forbidden("Only owners and admins can invite crew members")
	}
	if !authorization.CanChangeRoleTo(actor.Role, role) {
		s.logger.Security().AuthzFailure(actorID, "crew:invite:"+boatID)
		return nil, apperrors.ErrInsufficientPrivilege.WithMessage("Only owners can invite admins")
	}

	member, err := s.storage.IsActiveMemberByEmail(ctx, boatID, email)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	if member {
		return nil, apperrors.ErrAlreadyMember
	}

	pending, err := s.storage.HasPendingInvitation(ctx, boatID, email)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	if pending {
		return nil, apperrors.ErrDuplicateInvitation
	}

	token, err := newToken()
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	inv, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		BoatID:       boatID,
		InvitedBy:    actorID,
		InvitedEmail: email,
		Role:         role,
		Token:        token,
		ExpiresAt:    s.now().Add(s.lifetime),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.ErrDuplicateInvitation.Wrap(err)
		}
		return nil, apperrors.Persistence(err)
	}

	s.announce(ctx, inv)

	return inv, nil
}

func (s *Service) announce(ctx context.Context, inv *types.Invitation) {
	boatName := s.boatName(ctx, inv.BoatID)
	inviter := s.profileName(ctx, inv.InvitedBy)

	err := s.mailer.SendInvitation(ctx, &mail.InvitationMail{
		To:          inv.InvitedEmail,
		InviterName: inviter,
		BoatName:    boatName,
		Token:       inv.Token,
		Role:        inv.Role,
		Lifetime:    s.lifetime,
	})
	if err != nil {
		s.logger.Warnf("failed to send invitation %s: %v", inv.ID, err)
	}

	invitee, err := s.storage.GetProfileByEmail(ctx, inv.InvitedEmail)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("failed to look up invitee of invitation %s: %v", inv.ID, err)
		}
		return
	}

	err = s.notifier.Notify(ctx, notifications.NotificationInput{
		UserID: invitee.ID,
		Type:   types.NotificationInvitationReceived,
		Title:  fmt.Sprintf("You've been invited to join %s", boatName),
		Body:   fmt.Sprintf("%s invited you to join the crew as %s", inviter, mail.RoleLabel(inv.Role)),
		Data:   map[string]string{"boat_id": inv.BoatID, "invitation_id": inv.ID},
	})
	if err != nil {
		s.logger.Warnf("failed to notify invitee of invitation %s: %v", inv.ID, err)
	}
}

// RevokeInvitation expires a pending invitation, revoking an invitation that is no longer pending does nothing
func (s *Service) RevokeInvitation(ctx context.Context, invitationID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.RevokeInvitation")
	defer span.End()

	inv, err := s.storage.GetInvitation(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NotFound("Invitation not found")
		}
		return apperrors.Persistence(err)
	}

	if err := s.requireManager(ctx, inv.BoatID, actorID); err != nil {
		return err
	}

	if _, err := s.storage.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationExpired, nil); err != nil {
		return apperrors.Persistence(err)
	}

	return nil
}

// AcceptInvitation adds actorID to the crew, accepting again or while already a member is idempotent
func (s *Service) AcceptInvitation(ctx context.Context, token, actorID string) (*AcceptResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.AcceptInvitation")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token, types.InvitationPending)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.ErrNotFoundOrExpired
		}
		return nil, apperrors.Persistence(err)
	}

	now := s.now()

	if inv.Expired(now) {
		if _, err := s.storage.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationExpired, nil); err != nil {
			s.logger.Warnf("failed to expire invitation %s: %v", inv.ID, err)
		}
		return nil, apperrors.ErrInvitationExpired
	}

	_, err = s.storage.CreateMembership(ctx, inv.BoatID, actorID, inv.Role, nil)
	if err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.Persistence(err)
		}

		if _, err := s.storage.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationAccepted, &now); err != nil {
			return nil, apperrors.Persistence(err)
		}
		return &AcceptResult{BoatID: inv.BoatID, AlreadyMember: true}, nil
	}

	if _, err := s.storage.TransitionInvitation(ctx, inv.ID, types.InvitationPending, types.InvitationAccepted, &now); err != nil {
		return nil, apperrors.Persistence(err)
	}

	if err := s.authz.AssignBoatRole(ctx, inv.BoatID, actorID, inv.Role); err != nil {
		s.logger.Errorf("failed to mirror role of %s on boat %s: %v", actorID, inv.BoatID, err)
	}

	if err := s.publisher.PublishCrewInvalidated(ctx, inv.BoatID, "member_joined"); err != nil {
		s.logger.Warnf("failed to publish crew change of boat %s: %v", inv.BoatID, err)
	}

	err = s.notifier.Notify(ctx, notifications.NotificationInput{
		UserID: inv.InvitedBy,
		Type:   types.NotificationInvitationAccepted,
		Title:  fmt.Sprintf("%s joined %s", s.memberName(ctx, actorID, inv.InvitedEmail), s.boatName(ctx, inv.BoatID)),
		Body:   fmt.Sprintf("Your invitation was accepted, they joined as %s", mail.RoleLabel(inv.Role)),
		Data:   map[string]string{"boat_id": inv.BoatID, "user_id": actorID},
	})
	if err != nil {
		s.logger.Warnf("failed to notify inviter of invitation %s: %v", inv.ID, err)
	}

	return &AcceptResult{BoatID: inv.BoatID}, nil
}

// ViewInvitation describes an invitation to anyone holding its token, declined invitations read as expired
func (s *Service) ViewInvitation(ctx context.Context, token string) (*InvitationView, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ViewInvitation")
	defer span.End()

	inv, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &InvitationView{State: StateNotFound}, nil
		}
		return nil, apperrors.Persistence(err)
	}

	state := StatePending
	switch {
	case inv.Status == types.InvitationAccepted:
		state = StateAccepted
	case inv.Status.Terminal(), inv.Expired(s.now()):
		state = StateExpired
	}

	expiresAt := inv.ExpiresAt

	return &InvitationView{
		State:       state,
		BoatID:      inv.BoatID,
		BoatName:    s.boatName(ctx, inv.BoatID),
		Role:        mail.RoleLabel(inv.Role),
		InviterName: s.profileName(ctx, inv.InvitedBy),
		ExpiresAt:   &expiresAt,
	}, nil
}

func (s *Service) ListPendingInvitations(ctx context.Context, boatID, actorID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListPendingInvitations")
	defer span.End()

	if err := s.requireManager(ctx, boatID, actorID); err != nil {
		return nil, err
	}

	invitations, err := s.storage.ListPendingInvitations(ctx, boatID)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return invitations, nil
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

func (s *Service) requireManager(ctx context.Context, boatID, actorID string) error {
	actor, err := s.actor(ctx, boatID, actorID)
	if err != nil {
		return err
	}

	if !authorization.CanManageCrew(actor.Role) {
		s.logger.Security().AuthzFailure(actorID, "crew:invite:"+boatID)
		return apperrors.Forbidden(authorization.ReasonManageCrew)
	}

	return nil
}

func (s *Service) boatName(ctx context.Context, boatID string) string {
	boat, err := s.storage.GetBoat(ctx, boatID)
	if err != nil || strings.TrimSpace(boat.Name) == "" {
		return defaultBoatName
	}
	return boat.Name
}

func (s *Service) profileName(ctx context.Context, userID string) string {
	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil || p.Name() == "" {
		return defaultInviterName
	}
	return p.Name()
}

// memberName prefers the profile name of the new member and falls back to the invited address
func (s *Service) memberName(ctx context.Context, userID, email string) string {
	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil || p.Name() == "" {
		return email
	}
	return p.Name()
}
