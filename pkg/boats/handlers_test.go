// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boats

import (
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
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list boats",
			method: http.MethodGet,
			path:   "/api/v0/boats",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListBoats(gomock.Any(), "user-1").Return([]*types.UserBoat{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create boat",
			method: http.MethodPost,
			path:   "/api/v0/boats",
			body:   `{"name": "Wind Dancer", "sail_number": "USA 123"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CreateBoat(gomock.Any(), "user-1", gomock.Any()).Return(&types.UserBoat{Role: types.RoleOwner}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create without name",
			method:         http.MethodPost,
			path:           "/api/v0/boats",
			body:           `{"sail_number": "USA 123"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create with oversized sail number",
			method:         http.MethodPost,
			path:           "/api/v0/boats",
			body:           `{"name": "Wind Dancer", "sail_number": "` + strings.Repeat("9", 21) + `"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get boat as non member",
			method: http.MethodGet,
			path:   "/api/v0/boats/boat-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetBoat(gomock.Any(), "boat-1", "user-1").Return(nil, apperrors.ErrNotAMember)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "clear description",
			method: http.MethodPatch,
			path:   "/api/v0/boats/boat-1",
			body:   `{"description": null}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateBoat(gomock.Any(), "boat-1", "user-1", gomock.Any()).DoAndReturn(
					func(_, _, _ any, patch BoatPatch) (*types.Boat, error) {
						if patch.Name != nil || !patch.Description.Cleared() || patch.HomePort.Set {
							t.Errorf("unexpected patch %+v", patch)
						}
						return &types.Boat{ID: "boat-1"}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete boat",
			method: http.MethodDelete,
			path:   "/api/v0/boats/boat-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().DeleteBoat(gomock.Any(), "boat-1", "user-1").Return(nil)
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

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req = req.WithContext(authentication.WithUserID(req.Context(), "user-1"))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
