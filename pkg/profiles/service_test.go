// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/kratos"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	identity *MockIdentityInterface
	logger   *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		identity: NewMockIdentityInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return NewService(m.storage, m.identity, tracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func text(s string) *string {
	return &s
}

func TestService_GetProfile(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "profile found",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&types.Profile{ID: "user-1"}, nil)
			},
		},
		{
			name: "missing profile",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFound,
		},
		{
			name: "storage failure",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, errors.New("boom"))
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

			_, err := s.GetProfile(context.Background(), "user-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	weight := int32(170)

	testCases := []struct {
		name            string
		patch           ProfilePatch
		setupMocks      func(*mocks)
		expectedChanges map[string]any
		expectedErr     error
	}{
		{
			name: "set and clear fields",
			patch: ProfilePatch{
				FullName:     text("  Ada Lovelace "),
				DisplayName:  types.NewNullable("Ada"),
				Phone:        types.Nullable[string]{Set: true},
				WeightLbs:    types.NewNullable(weight),
				DefaultRoles: []types.SailingPosition{types.PositionHelmsman, types.PositionTrimmer, types.PositionHelmsman},
				Timezone:     types.NewNullable("   "),
			},
			expectedChanges: map[string]any{
				"full_name":     "Ada Lovelace",
				"display_name":  text("Ada"),
				"phone":         (*string)(nil),
				"weight_lbs":    &weight,
				"default_roles": []string{"helmsman", "trimmer"},
				"timezone":      (*string)(nil),
			},
		},
		{
			name:        "blank full name",
			patch:       ProfilePatch{FullName: text("   ")},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:        "unknown position",
			patch:       ProfilePatch{DefaultRoles: []types.SailingPosition{"captain"}},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:  "empty patch returns current profile",
			patch: ProfilePatch{},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&types.Profile{ID: "user-1"}, nil)
			},
		},
		{
			name:  "profile vanished",
			patch: ProfilePatch{DisplayName: types.NewNullable("Ada")},
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			if tc.setupMocks != nil {
				tc.setupMocks(m)
			}

			if tc.expectedChanges != nil {
				m.storage.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, changes map[string]any) (*types.Profile, error) {
						assertChanges(t, tc.expectedChanges, changes)
						return &types.Profile{ID: "user-1"}, nil
					},
				)
			}

			_, err := s.UpdateProfile(context.Background(), "user-1", tc.patch)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func assertChanges(t *testing.T, expected, actual map[string]any) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Fatalf("expected %d changes, got %v", len(expected), actual)
	}

	for column, want := range expected {
		got, ok := actual[column]
		if !ok {
			t.Fatalf("missing change for %s", column)
		}

		switch w := want.(type) {
		case *string:
			g, _ := got.(*string)
			if (w == nil) != (g == nil) || (w != nil && *w != *g) {
				t.Errorf("%s: expected %v, got %v", column, w, g)
			}
		case *int32:
			g, _ := got.(*int32)
			if g == nil || *g != *w {
				t.Errorf("%s: expected %d, got %v", column, *w, g)
			}
		case []string:
			g, _ := got.([]string)
			if len(g) != len(w) {
				t.Fatalf("%s: expected %v, got %v", column, w, g)
			}
			for i := range w {
				if g[i] != w[i] {
					t.Errorf("%s: expected %v, got %v", column, w, g)
				}
			}
		default:
			if got != want {
				t.Errorf("%s: expected %v, got %v", column, want, got)
			}
		}
	}
}

func TestService_EnsureProfile(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name: "existing profile",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&types.Profile{ID: "user-1"}, nil)
			},
		},
		{
			name: "profile created from traits",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				m.identity.EXPECT().GetTraits(gomock.Any(), "user-1").Return(&kratos.Traits{Email: "ada@example.com", Name: "Ada Lovelace"}, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Profile) (*types.Profile, error) {
						if p.ID != "user-1" || p.Email != "ada@example.com" || p.FullName == nil || *p.FullName != "Ada Lovelace" {
							t.Errorf("unexpected profile %+v", p)
						}
						return p, nil
					},
				)
			},
		},
		{
			name: "concurrent creation reads the winner",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				m.identity.EXPECT().GetTraits(gomock.Any(), "user-1").Return(&kratos.Traits{Email: "ada@example.com"}, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&types.Profile{ID: "user-1"}, nil)
			},
		},
		{
			name: "identity lookup fails",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				m.identity.EXPECT().GetTraits(gomock.Any(), "user-1").Return(nil, kratos.ErrIdentityNotFound)
			},
			expectedErr: apperrors.ErrPersistence,
		},
		{
			name: "identity without email",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				m.identity.EXPECT().GetTraits(gomock.Any(), "user-1").Return(&kratos.Traits{}, nil)
			},
			expectedErr: apperrors.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			_, err := s.EnsureProfile(context.Background(), "user-1")
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}

			if (err == nil) != s.seen("user-1") {
				t.Errorf("expected seen to be %v", err == nil)
			}
		})
	}
}
