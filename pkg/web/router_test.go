// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/identity"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_boats.go -source=../boats/interfaces.go ServiceInterface
//go:generate mockgen -build_flags=--mod=mod -package web -destination ./mock_status.go -source=../status/interfaces.go

func newTestRouter(ctrl *gomock.Controller) (http.Handler, *MockServiceInterface) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("crew-service", logger)

	mockBoats := NewMockServiceInterface(ctrl)

	router := NewRouter(
		Config{AppURL: "https://crew.example.com", AllowedOrigins: []string{"https://crew.example.com"}},
		Services{Boats: mockBoats},
		NewMockPingerInterface(ctrl),
		chi.Middlewares{identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware},
		tracer,
		monitor,
		logger,
	)

	return router, mockBoats
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:           "metrics are public",
			method:         http.MethodGet,
			path:           "/api/v0/metrics",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "protected route without identity",
			method:         http.MethodGet,
			path:           "/api/v0/boats",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "protected route with identity",
			method:  http.MethodGet,
			path:    "/api/v0/boats",
			headers: map[string]string{identity.HeaderName: "user-1"},
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ListBoats(gomock.Any(), "user-1").Return([]*types.UserBoat{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/api/v0/nope",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "cors preflight",
			method: http.MethodOptions,
			path:   "/api/v0/boats",
			headers: map[string]string{
				"Origin":                        "https://crew.example.com",
				"Access-Control-Request-Method": http.MethodPost,
			},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mockBoats := newTestRouter(ctrl)
			tt.setupMocks(mockBoats)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
