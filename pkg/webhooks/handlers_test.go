// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"
	"go.uber.org/mock/gomock"
)

func tokenHookBody(t *testing.T, subject string) string {
	t.Helper()

	raw, err := json.Marshal(&oauth2.TokenHookRequest{Session: oauth2.NewSession(subject)})
	if err != nil {
		t.Fatalf("failed to marshal token hook request: %v", err)
	}

	return string(raw)
}

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           func(*testing.T) string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "registration with structured name",
			path: "/api/v0/webhooks/registration",
			body: func(*testing.T) string {
				return `{"id": "identity-123", "traits": {"email": "sailor@example.com", "name": {"first": "Ada", "last": "Lovelace"}}}`
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "identity-123", "sailor@example.com", "Ada Lovelace").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "registration with plain name",
			path: "/api/v0/webhooks/registration",
			body: func(*testing.T) string {
				return `{"id": "identity-456", "traits": {"email": "grace@example.com", "name": " Grace "}}`
			},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "identity-456", "grace@example.com", "Grace").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "registration with malformed body",
			path: "/api/v0/webhooks/registration",
			body: func(*testing.T) string { return "not-json" },
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface) {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "registration failure",
			path: "/api/v0/webhooks/registration",
			body: func(*testing.T) string {
				return `{"id": "identity-789", "traits": {"email": "bosun@example.com"}}`
			},
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "identity-789", "bosun@example.com", "").Return(errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "token hook adds boats",
			path: "/api/v0/webhooks/token",
			body: func(t *testing.T) string { return tokenHookBody(t, "user-123") },
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
						if subjectOf(req) != "user-123" {
							t.Errorf("expected subject user-123, got %q", subjectOf(req))
						}

						resp := new(TokenHookResponse)
						resp.Session.IDToken = map[string]interface{}{BoatsClaim: []string{"boat-1"}}
						resp.Session.AccessToken = map[string]interface{}{BoatsClaim: []string{"boat-1"}}
						return resp, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp TokenHookResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				boats, _ := resp.Session.AccessToken[BoatsClaim].([]interface{})
				if len(boats) != 1 || boats[0] != "boat-1" {
					t.Errorf("unexpected access token claims %v", resp.Session.AccessToken)
				}
			},
		},
		{
			name: "token hook with malformed body",
			path: "/api/v0/webhooks/token",
			body: func(*testing.T) string { return "not-json" },
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface) {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "token hook failure",
			path: "/api/v0/webhooks/token",
			body: func(t *testing.T) string { return tokenHookBody(t, "user-123") },
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body(t)))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}
