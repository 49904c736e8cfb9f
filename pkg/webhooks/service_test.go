// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-123"
	email := "user@example.com"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockProfileCreatorInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockProfiles *MockProfileCreatorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockProfiles.EXPECT().CreateProfile(gomock.Any(), identityID, email, "Ada").Return(&types.Profile{ID: identityID, Email: email}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:       "empty email",
			identityID: identityID,
			setupMocks: func(mockProfiles *MockProfileCreatorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:  "empty identity ID",
			email: email,
			setupMocks: func(mockProfiles *MockProfileCreatorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "profile creation fails",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockProfiles *MockProfileCreatorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockProfiles.EXPECT().CreateProfile(gomock.Any(), identityID, email, "Ada").Return(nil, errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProfiles := NewMockProfileCreatorInterface(ctrl)
			mockBoats := NewMockBoatListerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockProfiles, mockLogger)

			s := NewService(mockProfiles, mockBoats, mockTracer, mockMonitor, mockLogger)
			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email, "Ada")

			if (err != nil) != tc.expectedErr {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name        string
		req         *oauth2.TokenHookRequest
		setupMocks  func(*MockBoatListerInterface, *MockLoggerInterface)
		expectedErr bool
		validate    func(*testing.T, *TokenHookResponse)
	}{
		{
			name: "success with boats",
			req: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockBoats *MockBoatListerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(2)
				mockBoats.EXPECT().ListBoatIDsForUser(gomock.Any(), userID).Return([]string{"boat-1", "boat-2"}, nil)
			},
			validate: func(t *testing.T, resp *TokenHookResponse) {
				boats, ok := resp.Session.IDToken[BoatsClaim].([]string)
				if !ok || len(boats) != 2 {
					t.Errorf("expected 2 boats in ID token, got %v", resp.Session.IDToken[BoatsClaim])
				}
				if resp.Session.AccessToken[BoatsClaim] == nil {
					t.Error("expected boats in access token")
				}
			},
		},
		{
			name: "success without boats",
			req: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockBoats *MockBoatListerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(2)
				mockBoats.EXPECT().ListBoatIDsForUser(gomock.Any(), userID).Return([]string{}, nil)
			},
			validate: func(t *testing.T, resp *TokenHookResponse) {
				if resp.Session.IDToken != nil || resp.Session.AccessToken != nil {
					t.Errorf("expected no claims, got %+v", resp.Session)
				}
			},
		},
		{
			name: "empty subject",
			req: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(""),
			},
			setupMocks: func(mockBoats *MockBoatListerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name: "nil session",
			req:  &oauth2.TokenHookRequest{},
			setupMocks: func(mockBoats *MockBoatListerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name: "listing fails",
			req: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockBoats *MockBoatListerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockBoats.EXPECT().ListBoatIDsForUser(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProfiles := NewMockProfileCreatorInterface(ctrl)
			mockBoats := NewMockBoatListerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleTokenHook").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockBoats, mockLogger)

			s := NewService(mockProfiles, mockBoats, mockTracer, mockMonitor, mockLogger)
			resp, err := s.HandleTokenHook(context.Background(), tc.req)

			if (err != nil) != tc.expectedErr {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.validate != nil {
				tc.validate(t, resp)
			}
		})
	}
}
