// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		anonymous      bool
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "create invitation defaults to crew",
			method: http.MethodPost,
			path:   "/api/v0/boats/boat-1/invitations",
			body:   `{"email": "sam@example.com"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateInvitation(gomock.Any(), "boat-1", "user-1", "sam@example.com", types.CrewRole("")).Return(&types.Invitation{ID: "inv-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create with a malformed email",
			method:         http.MethodPost,
			path:           "/api/v0/boats/boat-1/invitations",
			body:           `{"email": "not-an-email"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "duplicate invitation",
			method: http.MethodPost,
			path:   "/api/v0/boats/boat-1/invitations",
			body:   `{"email": "sam@example.com", "role": "admin"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateInvitation(gomock.Any(), "boat-1", "user-1", "sam@example.com", types.RoleAdmin).Return(nil, apperrors.ErrDuplicateInvitation)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "list pending",
			method: http.MethodGet,
			path:   "/api/v0/boats/boat-1/invitations",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListPendingInvitations(gomock.Any(), "boat-1", "user-1").Return([]*types.Invitation{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "revoke",
			method: http.MethodDelete,
			path:   "/api/v0/invitations/inv-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RevokeInvitation(gomock.Any(), "inv-1", "user-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "accept expired",
			method: http.MethodPost,
			path:   "/api/v0/invite/tok/accept",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().AcceptInvitation(gomock.Any(), "tok", "user-1").Return(nil, apperrors.ErrInvitationExpired)
			},
			expectedStatus: http.StatusGone,
		},
		{
			name:           "accept without a session",
			method:         http.MethodPost,
			path:           "/api/v0/invite/tok/accept",
			anonymous:      true,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "view without a session",
			method:    http.MethodGet,
			path:      "/api/v0/invite/tok",
			anonymous: true,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ViewInvitation(gomock.Any(), "tok").Return(&InvitationView{State: StatePending, BoatName: "Wind Dancer", Role: "Crew"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			api := NewAPI(mockService, NewMockLoggerInterface(ctrl))
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			api.RegisterPublicEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if !tt.anonymous {
				req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_ViewInvitationBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ViewInvitation(gomock.Any(), "tok").Return(&InvitationView{State: StatePending, BoatName: "Wind Dancer", Role: "Crew"}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, NewMockLoggerInterface(ctrl)).RegisterPublicEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/invite/tok", nil))

	var body struct {
		Data InvitationView `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data.BoatName != "Wind Dancer" || body.Data.Role != "Crew" || body.Data.State != StatePending {
		t.Fatalf("unexpected view %+v", body.Data)
	}
}
