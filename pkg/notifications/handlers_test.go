// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/apperrors"
	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		userID         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list unread",
			method: http.MethodGet,
			path:   "/api/v0/notifications?unread=true&page=2&size=10",
			userID: "user-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().List(gomock.Any(), "user-1", true, uint64(10), uint64(10)).Return([]*types.Notification{{ID: "n-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list requires a user",
			method:         http.MethodGet,
			path:           "/api/v0/notifications",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "mark read",
			method: http.MethodPost,
			path:   "/api/v0/notifications/n-1/read",
			userID: "user-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().MarkRead(gomock.Any(), "n-1", "user-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "mark read of a foreign notification",
			method: http.MethodPost,
			path:   "/api/v0/notifications/n-2/read",
			userID: "user-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().MarkRead(gomock.Any(), "n-2", "user-1").Return(apperrors.NotFound("Notification not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "mark all read",
			method: http.MethodPost,
			path:   "/api/v0/notifications/read",
			userID: "user-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().MarkAllRead(gomock.Any(), "user-1").Return(int64(4), nil)
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

			mux := chi.NewMux()
			NewAPI(mockService, NewMockLoggerInterface(ctrl)).RegisterEndpoints(mux)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.userID != "" {
				req = req.WithContext(authentication.WithUserID(req.Context(), tt.userID))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			var resp httptypes.Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected body status %d, got %d", tt.expectedStatus, resp.Status)
			}
		})
	}
}
