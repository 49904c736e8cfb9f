// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package notifications -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type mocks struct {
	storage   *MockStorageInterface
	publisher *MockPublisherInterface
	tracer    *MockTracingInterface
	logger    *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
		tracer:    NewMockTracingInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return NewService(m.storage, m.publisher, m.tracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func TestService_Notify(t *testing.T) {
	input := NotificationInput{
		UserID: "user-1",
		Type:   types.NotificationInvitationAccepted,
		Title:  "Jo joined Windward",
		Data:   map[string]string{"boat_id": "boat-1"},
	}

	testCases := []struct {
		name        string
		input       NotificationInput
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:  "stores and publishes the notification",
			input: input,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rows []*types.Notification) ([]*types.Notification, error) {
						if len(rows) != 1 || rows[0].UserID != "user-1" || rows[0].Body != nil {
							t.Errorf("unexpected rows %+v", rows)
						}

						var data map[string]string
						if err := json.Unmarshal(rows[0].Data, &data); err != nil || data["boat_id"] != "boat-1" {
							t.Errorf("unexpected data %s", rows[0].Data)
						}

						return rows, nil
					},
				)
				m.publisher.EXPECT().PublishNotifications(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "publish failures are logged only",
			input: input,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return([]*types.Notification{{ID: "n-1"}}, nil)
				m.publisher.EXPECT().PublishNotifications(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "missing recipient",
			input:       NotificationInput{Type: types.NotificationEventCreated},
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:        "unknown type",
			input:       NotificationInput{UserID: "user-1", Type: "party"},
			setupMocks:  func(*mocks) {},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:  "store failure",
			input: input,
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
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

			err := s.Notify(context.Background(), tc.input)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_NotifyBoatCrew(t *testing.T) {
	input := NotificationInput{Type: types.NotificationEventCreated, Title: "New event: Wednesday race"}

	testCases := []struct {
		name        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "excludes the actor",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveMemberships(gomock.Any(), "boat-1").Return([]*types.CrewMembership{
					{UserID: "actor"}, {UserID: "user-2"}, {UserID: "user-3"},
				}, nil)
				m.storage.EXPECT().CreateNotifications(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rows []*types.Notification) ([]*types.Notification, error) {
						if len(rows) != 2 {
							t.Fatalf("expected 2 recipients, got %d", len(rows))
						}
						for _, r := range rows {
							if r.UserID == "actor" {
								t.Error("actor must not be notified")
							}
						}
						return rows, nil
					},
				)
				m.publisher.EXPECT().PublishNotifications(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "actor alone on the boat",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveMemberships(gomock.Any(), "boat-1").Return([]*types.CrewMembership{{UserID: "actor"}}, nil)
			},
		},
		{
			name: "roster lookup failure",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().ListActiveMemberships(gomock.Any(), "boat-1").Return(nil, errors.New("db down"))
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

			err := s.NotifyBoatCrew(context.Background(), "boat-1", "actor", input)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_MarkRead(t *testing.T) {
	testCases := []struct {
		name        string
		storeErr    error
		expectedErr error
	}{
		{name: "own notification"},
		{name: "someone else's notification", storeErr: storage.ErrNotFound, expectedErr: apperrors.ErrNotFound},
		{name: "store failure", storeErr: errors.New("db down"), expectedErr: apperrors.ErrPersistence},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().MarkNotificationRead(gomock.Any(), "n-1", "user-1").Return(tc.storeErr)

			err := s.MarkRead(context.Background(), "n-1", "user-1")

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ListAndMarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().ListNotifications(gomock.Any(), "user-1", true, uint64(0), uint64(50)).Return([]*types.Notification{{ID: "n-1"}}, nil)
	m.storage.EXPECT().MarkAllNotificationsRead(gomock.Any(), "user-1").Return(int64(3), nil)

	list, err := s.List(context.Background(), "user-1", true, 0, 50)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected result %v %v", list, err)
	}

	n, err := s.MarkAllRead(context.Background(), "user-1")
	if err != nil || n != 3 {
		t.Fatalf("unexpected result %d %v", n, err)
	}
}
