// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/mail"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	boatID   = "boat-1"
	token    = "abc123"
	lifetime = 168 * time.Hour
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage   *MockStorageInterface
	mailer    *MockMailerInterface
	notifier  *MockNotifierInterface
	authz     *MockAuthorizerInterface
	publisher *MockPublisherInterface
	logger    *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		mailer:    NewMockMailerInterface(ctrl),
		notifier:  NewMockNotifierInterface(ctrl),
		authz:     NewMockAuthorizerInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	security := NewMockSecurityLoggerInterface(ctrl)
	security.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Security().Return(security).AnyTimes()

	s := NewService(m.storage, m.mailer, m.notifier, m.authz, m.publisher, lifetime, tracer, NewMockMonitorInterface(ctrl), m.logger)
	s.now = func() time.Time { return now }

	return s, m
}

func member(userID string, role types.CrewRole) *types.CrewMembership {
	return &types.CrewMembership{ID: "m-" + userID, BoatID: boatID, UserID: userID, Role: role, IsActive: true}
}

func name(s string) *string {
	return &s
}

func pendingInvitation(expiresAt time.Time) *types.Invitation {
	return &types.Invitation{
		ID:           "inv-1",
		BoatID:       boatID,
		InvitedBy:    "owner",
		InvitedEmail: "sam@example.com",
		Role:         types.RoleCrew,
		Token:        token,
		Status:       types.InvitationPending,
		ExpiresAt:    expiresAt,
	}
}

func TestService_CreateInvitation(t *testing.T) {
	testCases := []struct {
		name        string
		actorRole   types.CrewRole
		email       string
		role        types.CrewRole
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:      "owner invites crew, invitee has a profile",
			actorRole: types.RoleOwner,
			email:     " Sam@Example.com ",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().IsActiveMemberByEmail(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().HasPendingInvitation(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Role != types.RoleCrew || len(inv.Token) != 64 || !inv.ExpiresAt.Equal(now.Add(lifetime)) {
							t.Errorf("unexpected invitation %+v", inv)
						}
						inv.ID = "inv-1"
						inv.Status = types.InvitationPending
						return inv, nil
					},
				)
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(&types.Boat{ID: boatID, Name: "Wind Dancer"}, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), "actor").Return(&types.Profile{ID: "actor", FullName: name("Alex Skipper")}, nil)
				m.mailer.EXPECT().SendInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *mail.InvitationMail) error {
						if msg.To != "sam@example.com" || msg.InviterName != "Alex Skipper" || msg.BoatName != "Wind Dancer" || len(msg.Token) != 64 {
							t.Errorf("unexpected mail %+v", msg)
						}
						return nil
					},
				)
				m.storage.EXPECT().GetProfileByEmail(gomock.Any(), "sam@example.com").Return(&types.Profile{ID: "sam"}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in notifications.NotificationInput) error {
						if in.UserID != "sam" || in.Type != types.NotificationInvitationReceived {
							t.Errorf("unexpected notification %+v", in)
						}
						if in.Data["invitation_id"] != "inv-1" || in.Data["boat_id"] != boatID {
							t.Errorf("unexpected notification data %v", in.Data)
						}
						for k, v := range in.Data {
							if k == "token" || len(v) == 64 {
								t.Errorf("notification data carries the invitation token: %s=%s", k, v)
							}
						}
						return nil
					},
				)
			},
		},
		{
			name:      "mail failure does not fail the invitation",
			actorRole: types.RoleAdmin,
			email:     "sam@example.com",
			role:      types.RoleCrew,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().IsActiveMemberByEmail(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().HasPendingInvitation(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(pendingInvitation(now.Add(lifetime)), nil)
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetProfile(gomock.Any(), "owner").Return(nil, storage.ErrNotFound)
				m.mailer.EXPECT().SendInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg *mail.InvitationMail) error {
						if msg.InviterName != "Someone" || msg.BoatName != "a boat" {
							t.Errorf("unexpected defaults %+v", msg)
						}
						return errors.New("resend down")
					},
				)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().GetProfileByEmail(gomock.Any(), "sam@example.com").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:        "admin cannot invite an admin",
			actorRole:   types.RoleAdmin,
			email:       "sam@example.com",
			role:        types.RoleAdmin,
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrInsufficientPrivilege,
		},
		{
			name:        "crew cannot invite",
			actorRole:   types.RoleCrew,
			email:       "sam@example.com",
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrForbidden,
		},
		{
			name:      "already a member",
			actorRole: types.RoleOwner,
			email:     "sam@example.com",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().IsActiveMemberByEmail(gomock.Any(), boatID, "sam@example.com").Return(true, nil)
			},
			expectedErr: apperrors.ErrAlreadyMember,
		},
		{
			name:      "pending invitation exists",
			actorRole: types.RoleOwner,
			email:     "sam@example.com",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().IsActiveMemberByEmail(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().HasPendingInvitation(gomock.Any(), boatID, "sam@example.com").Return(true, nil)
			},
			expectedErr: apperrors.ErrDuplicateInvitation,
		},
		{
			name:      "concurrent invitation loses the race",
			actorRole: types.RoleOwner,
			email:     "sam@example.com",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().IsActiveMemberByEmail(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().HasPendingInvitation(gomock.Any(), boatID, "sam@example.com").Return(false, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, &storage.ConstraintError{Constraint: storage.ConstraintPendingInvite, Sentinel: storage.ErrDuplicateKey})
			},
			expectedErr: apperrors.ErrDuplicateInvitation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", tc.actorRole), nil)
			tc.setupMocks(m)

			_, err := s.CreateInvitation(context.Background(), boatID, "actor", tc.email, tc.role)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_CreateInvitationRejectsOwnerRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newTestService(ctrl)

	_, err := s.CreateInvitation(context.Background(), boatID, "actor", "sam@example.com", types.RoleOwner)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_AcceptInvitation(t *testing.T) {
	testCases := []struct {
		name          string
		setupMocks    func(*mocks)
		alreadyMember bool
		expectedErr   error
	}{
		{
			name: "accepted",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token, types.InvitationPending).Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), boatID, "sam", types.RoleCrew, nil).Return(member("sam", types.RoleCrew), nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(true, nil)
				m.authz.EXPECT().AssignBoatRole(gomock.Any(), boatID, "sam", types.RoleCrew).Return(nil)
				m.publisher.EXPECT().PublishCrewInvalidated(gomock.Any(), boatID, "member_joined").Return(nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), "sam").Return(&types.Profile{ID: "sam", FullName: name("Sam Trimmer")}, nil)
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(&types.Boat{ID: boatID, Name: "Wind Dancer"}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in notifications.NotificationInput) error {
						if in.UserID != "owner" || in.Type != types.NotificationInvitationAccepted || in.Title != "Sam Trimmer joined Wind Dancer" {
							t.Errorf("unexpected notification %+v", in)
						}
						return nil
					},
				)
			},
		},
		{
			name: "already a member accepts without a second membership",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token, types.InvitationPending).Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), boatID, "sam", types.RoleCrew, nil).Return(nil, &storage.ConstraintError{Constraint: storage.ConstraintActiveMember, Sentinel: storage.ErrDuplicateKey})
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(true, nil)
			},
			alreadyMember: true,
		},
		{
			name: "simultaneous accept loses to the first one",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token, types.InvitationPending).Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), boatID, "sam", types.RoleCrew, nil).Return(nil, &storage.ConstraintError{Constraint: storage.ConstraintActiveMember, Sentinel: storage.ErrDuplicateKey})
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationPending, types.InvitationAccepted, gomock.Any()).Return(false, nil)
			},
			alreadyMember: true,
		},
		{
			name: "unknown or used token",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token, types.InvitationPending).Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFoundOrExpired,
		},
		{
			name: "expired invitation is marked expired",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token, types.InvitationPending).Return(pendingInvitation(now.Add(-time.Minute)), nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationPending, types.InvitationExpired, nil).Return(true, nil)
			},
			expectedErr: apperrors.ErrInvitationExpired,
		},
		{
			name: "membership store failure",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token, types.InvitationPending).Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), boatID, "sam", types.RoleCrew, nil).Return(nil, errors.New("db down"))
			},
			expectedErr: apperrors.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			result, err := s.AcceptInvitation(context.Background(), token, "sam")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if result.BoatID != boatID || result.AlreadyMember != tc.alreadyMember {
				t.Fatalf("unexpected result %+v", result)
			}
		})
	}
}

func TestService_ViewInvitation(t *testing.T) {
	declined := pendingInvitation(now.Add(time.Hour))
	declined.Status = types.InvitationDeclined

	accepted := pendingInvitation(now.Add(time.Hour))
	accepted.Status = types.InvitationAccepted

	testCases := []struct {
		name          string
		invitation    *types.Invitation
		storeErr      error
		expectedState ViewState
	}{
		{name: "pending", invitation: pendingInvitation(now.Add(time.Hour)), expectedState: StatePending},
		{name: "past expiry", invitation: pendingInvitation(now.Add(-time.Hour)), expectedState: StateExpired},
		{name: "declined reads as expired", invitation: declined, expectedState: StateExpired},
		{name: "accepted", invitation: accepted, expectedState: StateAccepted},
		{name: "unknown token", storeErr: storage.ErrNotFound, expectedState: StateNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetInvitationByToken(gomock.Any(), token).Return(tc.invitation, tc.storeErr)
			if tc.invitation != nil {
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(&types.Boat{ID: boatID, Name: "Wind Dancer"}, nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), "owner").Return(&types.Profile{ID: "owner", DisplayName: name("Alex")}, nil)
			}

			view, err := s.ViewInvitation(context.Background(), token)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if view.State != tc.expectedState {
				t.Fatalf("expected state %s, got %s", tc.expectedState, view.State)
			}
			if tc.invitation != nil && (view.BoatName != "Wind Dancer" || view.Role != "Crew" || view.InviterName != "Alex") {
				t.Fatalf("unexpected view %+v", view)
			}
		})
	}
}

func TestService_RevokeInvitation(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "pending invitation revoked",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitation(gomock.Any(), "inv-1").Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", types.RoleAdmin), nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationPending, types.InvitationExpired, nil).Return(true, nil)
			},
		},
		{
			name: "invitation no longer pending is a no-op",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitation(gomock.Any(), "inv-1").Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", types.RoleOwner), nil)
				m.storage.EXPECT().TransitionInvitation(gomock.Any(), "inv-1", types.InvitationPending, types.InvitationExpired, nil).Return(false, nil)
			},
		},
		{
			name: "crew cannot revoke",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitation(gomock.Any(), "inv-1").Return(pendingInvitation(now.Add(time.Hour)), nil)
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", types.RoleCrew), nil)
			},
			expectedErr: apperrors.ErrForbidden,
		},
		{
			name: "unknown invitation",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetInvitation(gomock.Any(), "inv-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			err := s.RevokeInvitation(context.Background(), "inv-1", "actor")

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ListPendingInvitations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(nil, storage.ErrNotFound)

	if _, err := s.ListPendingInvitations(context.Background(), boatID, "actor"); !errors.Is(err, apperrors.ErrNotAMember) {
		t.Fatalf("expected not a member, got %v", err)
	}
}
