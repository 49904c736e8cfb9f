// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boats

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package boats -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package boats -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package boats -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package boats -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const boatID = "boat-1"

type mocks struct {
	storage   *MockStorageInterface
	owners    *MockOwnerAssignerInterface
	authz     *MockAuthorizerInterface
	publisher *MockPublisherInterface
	logger    *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		owners:    NewMockOwnerAssignerInterface(ctrl),
		authz:     NewMockAuthorizerInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	security := NewMockSecurityLoggerInterface(ctrl)
	security.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Security().Return(security).AnyTimes()

	return NewService(m.storage, m.owners, m.authz, m.publisher, tracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func member(userID string, role types.CrewRole) *types.CrewMembership {
	return &types.CrewMembership{ID: "m-" + userID, BoatID: boatID, UserID: userID, Role: role, IsActive: true}
}

func text(s string) *string {
	return &s
}

func runTx(m *mocks) {
	m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_CreateBoat(t *testing.T) {
	testCases := []struct {
		name        string
		input       BoatInput
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:  "boat created with owner",
			input: BoatInput{Name: "  Wind Dancer ", SailNumber: text("USA 123"), HomePort: text("   ")},
			setupMocks: func(m *mocks) {
				runTx(m)
				m.storage.EXPECT().CreateBoat(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *types.Boat) (*types.Boat, error) {
						if b.Name != "Wind Dancer" || b.HomePort != nil || *b.SailNumber != "USA 123" || b.CreatedBy != "owner" {
							t.Errorf("unexpected boat %+v", b)
						}
						b.ID = boatID
						return b, nil
					},
				)
				m.owners.EXPECT().AddOwner(gomock.Any(), boatID, "owner").Return(member("owner", types.RoleOwner), nil)
				m.authz.EXPECT().AssignBoatRole(gomock.Any(), boatID, "owner", types.RoleOwner).Return(nil)
			},
		},
		{
			name:  "relationship mirror failure is only logged",
			input: BoatInput{Name: "Wind Dancer"},
			setupMocks: func(m *mocks) {
				runTx(m)
				m.storage.EXPECT().CreateBoat(gomock.Any(), gomock.Any()).Return(&types.Boat{ID: boatID, Name: "Wind Dancer"}, nil)
				m.owners.EXPECT().AddOwner(gomock.Any(), boatID, "owner").Return(member("owner", types.RoleOwner), nil)
				m.authz.EXPECT().AssignBoatRole(gomock.Any(), boatID, "owner", types.RoleOwner).Return(errors.New("openfga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "blank name",
			input:       BoatInput{Name: "   "},
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:  "owner membership failure aborts the boat",
			input: BoatInput{Name: "Wind Dancer"},
			setupMocks: func(m *mocks) {
				runTx(m)
				m.storage.EXPECT().CreateBoat(gomock.Any(), gomock.Any()).Return(&types.Boat{ID: boatID}, nil)
				m.owners.EXPECT().AddOwner(gomock.Any(), boatID, "owner").Return(nil, apperrors.Persistence(errors.New("db down")))
			},
			expectedErr: apperrors.ErrPersistence,
		},
		{
			name:  "store failure",
			input: BoatInput{Name: "Wind Dancer"},
			setupMocks: func(m *mocks) {
				runTx(m)
				m.storage.EXPECT().CreateBoat(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
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

			boat, err := s.CreateBoat(context.Background(), "owner", tc.input)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if boat.ID != boatID || boat.Role != types.RoleOwner {
				t.Fatalf("unexpected boat %+v", boat)
			}
		})
	}
}

func TestService_GetBoat(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*mocks)
		expectedRole types.CrewRole
		expectedErr  error
	}{
		{
			name: "member sees the boat with its role",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "crew").Return(member("crew", types.RoleCrew), nil)
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(&types.Boat{ID: boatID}, nil)
			},
			expectedRole: types.RoleCrew,
		},
		{
			name: "non member",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "crew").Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotAMember,
		},
		{
			name: "boat vanished",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "crew").Return(member("crew", types.RoleCrew), nil)
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(nil, storage.ErrNotFound)
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

			boat, err := s.GetBoat(context.Background(), boatID, "crew")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil || boat.Role != tc.expectedRole {
				t.Fatalf("unexpected result %+v %v", boat, err)
			}
		})
	}
}

func TestService_UpdateBoat(t *testing.T) {
	testCases := []struct {
		name        string
		actorRole   types.CrewRole
		patch       BoatPatch
		setupMocks  func(*mocks)
		expectedErr error
		expectedMsg string
	}{
		{
			name:      "admin renames and clears the home port",
			actorRole: types.RoleAdmin,
			patch:     BoatPatch{Name: text(" Sea Breeze "), HomePort: types.Nullable[string]{Set: true}, Description: types.NewNullable("")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateBoat(gomock.Any(), boatID, map[string]any{
					"name":        "Sea Breeze",
					"home_port":   (*string)(nil),
					"description": (*string)(nil),
				}).Return(&types.Boat{ID: boatID, Name: "Sea Breeze"}, nil)
			},
		},
		{
			name:      "empty patch returns the current boat",
			actorRole: types.RoleOwner,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetBoat(gomock.Any(), boatID).Return(&types.Boat{ID: boatID}, nil)
			},
		},
		{
			name:        "crew cannot edit",
			actorRole:   types.RoleCrew,
			patch:       BoatPatch{Name: text("Mine")},
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrForbidden,
			expectedMsg: "Only owners and admins can edit the boat",
		},
		{
			name:        "blank name",
			actorRole:   types.RoleOwner,
			patch:       BoatPatch{Name: text("  ")},
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", tc.actorRole), nil)
			tc.setupMocks(m)

			_, err := s.UpdateBoat(context.Background(), boatID, "actor", tc.patch)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				if tc.expectedMsg != "" && apperrors.MessageOf(err) != tc.expectedMsg {
					t.Fatalf("expected message %q, got %q", tc.expectedMsg, apperrors.MessageOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestService_DeleteBoat(t *testing.T) {
	testCases := []struct {
		name        string
		actorRole   types.CrewRole
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:      "owner deletes",
			actorRole: types.RoleOwner,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().DeleteBoat(gomock.Any(), boatID).Return(nil)
				m.authz.EXPECT().DeleteBoat(gomock.Any(), boatID).Return(nil)
				m.publisher.EXPECT().PublishCrewInvalidated(gomock.Any(), boatID, "boat_deleted").Return(nil)
			},
		},
		{
			name:      "side effect failures are only logged",
			actorRole: types.RoleOwner,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().DeleteBoat(gomock.Any(), boatID).Return(nil)
				m.authz.EXPECT().DeleteBoat(gomock.Any(), boatID).Return(errors.New("openfga down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.publisher.EXPECT().PublishCrewInvalidated(gomock.Any(), boatID, "boat_deleted").Return(errors.New("kafka down"))
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "admin cannot delete",
			actorRole:   types.RoleAdmin,
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrForbidden,
		},
		{
			name:      "already deleted",
			actorRole: types.RoleOwner,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().DeleteBoat(gomock.Any(), boatID).Return(storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", tc.actorRole), nil)
			tc.setupMocks(m)

			err := s.DeleteBoat(context.Background(), boatID, "actor")

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ListBoats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().ListBoatsByUser(gomock.Any(), "crew").Return([]*types.UserBoat{{Boat: types.Boat{ID: boatID}, Role: types.RoleCrew}}, nil)

	boats, err := s.ListBoats(context.Background(), "crew")
	if err != nil || len(boats) != 1 {
		t.Fatalf("unexpected result %v %v", boats, err)
	}
}
