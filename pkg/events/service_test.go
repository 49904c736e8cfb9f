// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package events -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	boatID  = "boat-1"
	eventID = "event-1"
)

var start = time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)

type mocks struct {
	storage  *MockStorageInterface
	notifier *MockNotifierInterface
	logger   *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	security := NewMockSecurityLoggerInterface(ctrl)
	security.EXPECT().AuthzFailure(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Security().Return(security).AnyTimes()

	return NewService(m.storage, m.notifier, tracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func member(userID string, role types.CrewRole, position *types.SailingPosition) *types.CrewMembership {
	return &types.CrewMembership{ID: "m-" + userID, BoatID: boatID, UserID: userID, Role: role, SailingPosition: position, IsActive: true}
}

func position(p types.SailingPosition) *types.SailingPosition {
	return &p
}

func text(s string) *string {
	return &s
}

func storedEvent() *types.Event {
	return &types.Event{ID: eventID, BoatID: boatID, Title: "Regatta", EventType: types.EventRace, StartTime: start, CreatedBy: "owner"}
}

func TestService_CreateEvent(t *testing.T) {
	crew := []*types.CrewMembership{
		member("owner", types.RoleOwner, position(types.PositionSkipper)),
		member("sam", types.RoleCrew, position(types.PositionTrimmer)),
		member("kim", types.RoleCrew, nil),
	}

	testCases := []struct {
		name        string
		actorRole   types.CrewRole
		input       EventInput
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:      "fan-out to every active member",
			actorRole: types.RoleOwner,
			input:     EventInput{Title: " Regatta ", EventType: types.EventRace, StartTime: "2026-07-04T10:00:00Z", Location: text("")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					},
				)
				m.storage.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *types.Event) (*types.Event, error) {
						if e.Title != "Regatta" || e.Location != nil || !e.StartTime.Equal(start) || e.CreatedBy != "owner" {
							t.Errorf("unexpected event %+v", e)
						}
						e.ID = eventID
						return e, nil
					},
				)
				m.storage.EXPECT().ListActiveMemberships(gomock.Any(), boatID).Return(crew, nil)
				m.storage.EXPECT().CreateAssignments(gomock.Any(), eventID, crew).DoAndReturn(
					func(_ context.Context, _ string, members []*types.CrewMembership) ([]*types.EventAssignment, error) {
						out := make([]*types.EventAssignment, 0, len(members))
						for _, mb := range members {
							out = append(out, &types.EventAssignment{EventID: eventID, UserID: mb.UserID, RSVPStatus: types.RSVPPending, SailingPosition: mb.SailingPosition})
						}
						return out, nil
					},
				)
				m.notifier.EXPECT().NotifyBoatCrew(gomock.Any(), boatID, "owner", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, in notifications.NotificationInput) error {
						if in.Type != types.NotificationEventCreated || in.Data["event_id"] != eventID {
							t.Errorf("unexpected notification %+v", in)
						}
						return nil
					},
				)
			},
		},
		{
			name:        "crew cannot create events",
			actorRole:   types.RoleCrew,
			input:       EventInput{Title: "Regatta", EventType: types.EventRace, StartTime: "2026-07-04T10:00:00Z"},
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrForbidden,
		},
		{
			name:      "fan-out failure rolls the event back",
			actorRole: types.RoleAdmin,
			input:     EventInput{Title: "Regatta", EventType: types.EventRace, StartTime: "2026-07-04T10:00:00Z"},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					},
				)
				m.storage.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(storedEvent(), nil)
				m.storage.EXPECT().ListActiveMemberships(gomock.Any(), boatID).Return(crew, nil)
				m.storage.EXPECT().CreateAssignments(gomock.Any(), eventID, crew).Return(nil, errors.New("db down"))
			},
			expectedErr: apperrors.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "owner").Return(member("owner", tc.actorRole, nil), nil)
			tc.setupMocks(m)

			details, err := s.CreateEvent(context.Background(), boatID, "owner", tc.input)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if len(details.Assignments) != len(crew) {
				t.Fatalf("expected %d assignments, got %d", len(crew), len(details.Assignments))
			}
			if details.Summary.Pending != len(crew) || details.Summary.Total != len(crew) {
				t.Fatalf("unexpected summary %+v", details.Summary)
			}
			for i, a := range details.Assignments {
				if a.RSVPStatus != types.RSVPPending || a.SailingPosition != crew[i].SailingPosition {
					t.Fatalf("unexpected assignment %+v", a)
				}
			}
		})
	}
}

func TestEventInput_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input EventInput
	}{
		{name: "blank title", input: EventInput{Title: "  ", EventType: types.EventRace, StartTime: "2026-07-04T10:00:00Z"}},
		{name: "unknown type", input: EventInput{Title: "Regatta", EventType: "party", StartTime: "2026-07-04T10:00:00Z"}},
		{name: "bad start", input: EventInput{Title: "Regatta", EventType: types.EventRace, StartTime: "tomorrow"}},
		{name: "end before start", input: EventInput{Title: "Regatta", EventType: types.EventRace, StartTime: "2026-07-04T10:00:00Z", EndTime: text("2026-07-04T09:00:00Z")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.input.event(boatID, "owner"); !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestService_UpdateEvent(t *testing.T) {
	testCases := []struct {
		name            string
		actorRole       types.CrewRole
		patch           EventPatch
		expectedChanges map[string]any
		expectedErr     error
	}{
		{
			name:            "clear description and end time",
			actorRole:       types.RoleAdmin,
			patch:           EventPatch{Description: types.Nullable[string]{Set: true}, EndTime: types.NewNullable("")},
			expectedChanges: map[string]any{"description": (*string)(nil), "end_time": (*time.Time)(nil)},
		},
		{
			name:            "rename only",
			actorRole:       types.RoleOwner,
			patch:           EventPatch{Title: text("Night race")},
			expectedChanges: map[string]any{"title": "Night race"},
		},
		{
			name:        "end before the stored start",
			actorRole:   types.RoleOwner,
			patch:       EventPatch{EndTime: types.NewNullable("2026-07-04T09:00:00Z")},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:        "crew cannot edit",
			actorRole:   types.RoleCrew,
			patch:       EventPatch{Title: text("Mine")},
			expectedErr: apperrors.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().GetEvent(gomock.Any(), eventID).Return(storedEvent(), nil)
			m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", tc.actorRole, nil), nil)
			if tc.expectedChanges != nil {
				m.storage.EXPECT().UpdateEvent(gomock.Any(), eventID, tc.expectedChanges).Return(storedEvent(), nil)
				m.notifier.EXPECT().NotifyBoatCrew(gomock.Any(), boatID, "actor", gomock.Any()).Return(errors.New("kafka down"))
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			}

			_, err := s.UpdateEvent(context.Background(), eventID, "actor", tc.patch)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_DeleteEvent(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "admin deletes",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetEvent(gomock.Any(), eventID).Return(storedEvent(), nil)
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(member("actor", types.RoleAdmin, nil), nil)
				m.storage.EXPECT().DeleteEvent(gomock.Any(), eventID).Return(nil)
			},
		},
		{
			name: "unknown event",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetEvent(gomock.Any(), eventID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFound,
		},
		{
			name: "not a member",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetEvent(gomock.Any(), eventID).Return(storedEvent(), nil)
				m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "actor").Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotAMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			err := s.DeleteEvent(context.Background(), eventID, "actor")

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().GetEvent(gomock.Any(), eventID).Return(storedEvent(), nil)
	m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "sam").Return(member("sam", types.RoleCrew, nil), nil)
	m.storage.EXPECT().ListAssignments(gomock.Any(), eventID).Return([]*types.EventAssignment{
		{ID: "a-1", UserID: "sam", RSVPStatus: types.RSVPAccepted},
		{ID: "a-2", UserID: "alex", RSVPStatus: types.RSVPTentative},
		{ID: "a-3", UserID: "jo", RSVPStatus: types.RSVPAccepted},
		{ID: "a-4", UserID: "kim", RSVPStatus: types.RSVPPending},
	}, nil)

	details, err := s.GetEvent(context.Background(), eventID, "sam")
	if err != nil || details.ID != eventID || len(details.Assignments) != 4 {
		t.Fatalf("unexpected result %+v %v", details, err)
	}

	expected := types.RSVPSummary{Accepted: 2, Tentative: 1, Pending: 1, Total: 4}
	if details.Summary != expected {
		t.Fatalf("expected summary %+v, got %+v", expected, details.Summary)
	}
}

func TestService_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().GetActiveMembership(gomock.Any(), boatID, "sam").Return(member("sam", types.RoleCrew, nil), nil)
	m.storage.EXPECT().ListEvents(gomock.Any(), boatID, uint64(50), uint64(50)).Return([]*types.Event{storedEvent()}, nil)

	events, err := s.ListEvents(context.Background(), boatID, "sam", 50, 50)
	if err != nil || len(events) != 1 {
		t.Fatalf("unexpected result %v %v", events, err)
	}
}
