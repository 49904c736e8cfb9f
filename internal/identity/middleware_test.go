// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_tracer.go -source=../tracing/interfaces.go

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		expectedID string
		expectedOK bool
	}{
		{name: "header present", header: "user-1", expectedID: "user-1", expectedOK: true},
		{name: "header missing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockTracer.EXPECT().Start(gomock.Any(), "identity.Middleware.HTTPMiddleware").Return(context.Background(), trace.SpanFromContext(context.Background()))

			var (
				gotID string
				gotOK bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = authentication.GetUserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/boats", nil)
			if tc.header != "" {
				req.Header.Set(HeaderName, tc.header)
			}

			NewMiddleware(mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl)).HTTPMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

			if gotID != tc.expectedID || gotOK != tc.expectedOK {
				t.Errorf("expected %q/%v, got %q/%v", tc.expectedID, tc.expectedOK, gotID, gotOK)
			}
		})
	}
}
