// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rsvp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/notifications"
)

//go:generate mockgen -build_flags=--mod=mod -package rsvp -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rsvp -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rsvp -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package rsvp -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const secret = "secret"

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage   *MockStorageInterface
	notifier  *MockNotifierInterface
	publisher *MockPublisherInterface
	logger    *MockLoggerInterface
	security  *MockSecurityLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		notifier:  NewMockNotifierInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
		security:  NewMockSecurityLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()

	s := NewService(m.storage, NewSigner(secret), m.notifier, m.publisher, tracer, NewMockMonitorInterface(ctrl), m.logger)
	s.now = func() time.Time { return now }

	return s, m
}

func assignment(status types.RSVPStatus) *types.EventAssignment {
	return &types.EventAssignment{ID: "a-1", EventID: "event-1", UserID: "sam", RSVPStatus: status, RespondedAt: &now}
}

func assignmentContext(status types.RSVPStatus) *types.AssignmentContext {
	return &types.AssignmentContext{
		Assignment:     assignment(status),
		EventTitle:     "Regatta",
		EventCreatedBy: "owner",
		BoatID:         "boat-1",
		BoatName:       "Wind Dancer",
	}
}

func text(s string) *string {
	return &s
}

func TestService_UpdateRsvp(t *testing.T) {
	testCases := []struct {
		name        string
		status      types.RSVPStatus
		notes       *string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:   "accepted with notes, creator notified",
			status: types.RSVPAccepted,
			notes:  text("bringing snacks"),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateOwnRSVP(gomock.Any(), "a-1", "sam", types.RSVPAccepted, text("bringing snacks"), now).Return(assignment(types.RSVPAccepted), nil)
				m.publisher.EXPECT().PublishAssignmentChanged(gomock.Any(), gomock.Any()).Return(nil)
				m.storage.EXPECT().GetAssignmentContext(gomock.Any(), "a-1").Return(assignmentContext(types.RSVPAccepted), nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), "sam").Return(&types.Profile{ID: "sam", FullName: text("Sam Trimmer")}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in notifications.NotificationInput) error {
						if in.UserID != "owner" || in.Type != types.NotificationRSVPReceived || in.Title != "Sam Trimmer is going to Regatta" {
							t.Errorf("unexpected notification %+v", in)
						}
						return nil
					},
				)
			},
		},
		{
			name:   "blank notes are stored as null, side effect failures are logged",
			status: types.RSVPDeclined,
			notes:  text("   "),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateOwnRSVP(gomock.Any(), "a-1", "sam", types.RSVPDeclined, nil, now).Return(assignment(types.RSVPDeclined), nil)
				m.publisher.EXPECT().PublishAssignmentChanged(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
				m.storage.EXPECT().GetAssignmentContext(gomock.Any(), "a-1").Return(nil, errors.New("db down"))
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(2)
			},
		},
		{
			name:        "pending is not settable",
			status:      types.RSVPPending,
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:        "notes too long",
			status:      types.RSVPTentative,
			notes:       text(strings.Repeat("x", 501)),
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:   "someone else's assignment",
			status: types.RSVPAccepted,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateOwnRSVP(gomock.Any(), "a-1", "sam", types.RSVPAccepted, nil, now).Return(nil, storage.ErrNotFound)
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

			_, err := s.UpdateRsvp(context.Background(), "a-1", "sam", tc.status, tc.notes)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ConfirmRsvpViaToken(t *testing.T) {
	signer := NewSigner(secret)

	testCases := []struct {
		name        string
		status      types.RSVPStatus
		token       string
		setupMocks  func(*mocks)
		expected    *Confirmation
		expectedErr error
	}{
		{
			name:   "valid link",
			status: types.RSVPTentative,
			token:  signer.Sign("a-1", types.RSVPTentative),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateRSVP(gomock.Any(), "a-1", types.RSVPTentative, now).Return(assignment(types.RSVPTentative), nil)
				m.publisher.EXPECT().PublishAssignmentChanged(gomock.Any(), gomock.Any()).Return(nil)
				m.storage.EXPECT().GetAssignmentContext(gomock.Any(), "a-1").Return(assignmentContext(types.RSVPTentative), nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), "sam").Return(nil, storage.ErrNotFound)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &Confirmation{Status: types.RSVPTentative, EventTitle: "Regatta", BoatName: "Wind Dancer"},
		},
		{
			name:   "token for another status mutates nothing",
			status: types.RSVPDeclined,
			token:  signer.Sign("a-1", types.RSVPAccepted),
			setupMocks: func(m *mocks) {
				m.security.EXPECT().TokenRejected("rsvp:a-1", gomock.Any())
			},
			expectedErr: apperrors.ErrInvalidToken,
		},
		{
			name:   "token signed with another secret",
			status: types.RSVPAccepted,
			token:  NewSigner("other").Sign("a-1", types.RSVPAccepted),
			setupMocks: func(m *mocks) {
				m.security.EXPECT().TokenRejected("rsvp:a-1", gomock.Any())
			},
			expectedErr: apperrors.ErrInvalidToken,
		},
		{
			name:   "unknown assignment",
			status: types.RSVPAccepted,
			token:  signer.Sign("a-1", types.RSVPAccepted),
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateRSVP(gomock.Any(), "a-1", types.RSVPAccepted, now).Return(nil, storage.ErrNotFound)
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

			got, err := s.ConfirmRsvpViaToken(context.Background(), "a-1", tc.status, tc.token)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if *got != *tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}
