// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crew

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
			name:   "list crew",
			method: http.MethodGet,
			path:   "/api/v0/boats/boat-1/crew",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListMembers(gomock.Any(), "boat-1", "user-1").Return([]*types.CrewMember{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update position to null",
			method: http.MethodPatch,
			path:   "/api/v0/boats/boat-1/crew/m-1",
			body:   `{"sailing_position": null}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMember(gomock.Any(), "m-1", "user-1", gomock.Any()).DoAndReturn(
					func(_, _, _ any, changes MemberChanges) (*types.CrewMembership, error) {
						if changes.Role != nil || !changes.SailingPosition.Cleared() {
							t.Errorf("unexpected changes %+v", changes)
						}
						return &types.CrewMembership{ID: "m-1"}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update with unknown role",
			method:         http.MethodPatch,
			path:           "/api/v0/boats/boat-1/crew/m-1",
			body:           `{"role": "captain"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "update with unknown position",
			method:         http.MethodPatch,
			path:           "/api/v0/boats/boat-1/crew/m-1",
			body:           `{"sailing_position": "cook"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "owner role immutable",
			method: http.MethodPatch,
			path:   "/api/v0/boats/boat-1/crew/m-owner",
			body:   `{"role": "crew"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMember(gomock.Any(), "m-owner", "user-1", gomock.Any()).Return(nil, apperrors.ErrOwnerRoleImmutable)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "remove member",
			method: http.MethodDelete,
			path:   "/api/v0/boats/boat-1/crew/m-1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RemoveMember(gomock.Any(), "m-1", "user-1", "boat-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "remove forbidden",
			method: http.MethodDelete,
			path:   "/api/v0/boats/boat-1/crew/m-owner",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RemoveMember(gomock.Any(), "m-owner", "user-1", "boat-1").Return(apperrors.Forbidden("Cannot remove the boat owner"))
			},
			expectedStatus: http.StatusForbidden,
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
