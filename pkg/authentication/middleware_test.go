// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface, *MockLoggerInterface, *gomock.Controller)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "Missing token - rejects request",
			authHeader:         "",
			setupMocks:         func(*MockTokenVerifierInterface, *MockLoggerInterface, *gomock.Controller) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface, *MockLoggerInterface, *gomock.Controller) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, ctrl *gomock.Controller) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))

				security := NewMockSecurityLoggerInterface(ctrl)
				security.EXPECT().TokenRejected("bearer", "/test")
				l.EXPECT().Security().Return(security)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface, l *MockLoggerInterface, ctrl *gomock.Controller) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			tt.setupMocks(mockVerifier, mockLogger, ctrl)

			middleware := NewMiddleware(mockVerifier, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, _ := GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(id))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{name: "No Authorization header"},
		{name: "Bearer token", authHeader: "Bearer my-token-123", expectedToken: "my-token-123", expectedFound: true},
		{name: "Raw token without Bearer prefix", authHeader: "my-token-123"},
		{name: "Empty bearer", authHeader: "Bearer   "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			middleware := NewMiddleware(nil, nil, nil, nil)

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestAccessPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   AccessPolicy
		claims   claims
		expected error
	}{
		{name: "any subject", policy: AccessPolicy{AnySubject: true}, claims: claims{Subject: "u1"}},
		{name: "any subject needs a subject", policy: AccessPolicy{AnySubject: true}, expected: ErrNoAccessPolicy},
		{name: "no policy", policy: AccessPolicy{}, claims: claims{Subject: "u1"}, expected: ErrNoAccessPolicy},
		{name: "allowed subject", policy: AccessPolicy{AllowedSubjects: []string{"svc"}}, claims: claims{Subject: "svc"}},
		{name: "unknown subject", policy: AccessPolicy{AllowedSubjects: []string{"svc"}}, claims: claims{Subject: "u1"}, expected: ErrNotAllowed},
		{name: "space separated scope", policy: AccessPolicy{RequiredScope: "crew"}, claims: claims{Subject: "u1", Scope: "openid crew"}},
		{name: "scp claim", policy: AccessPolicy{RequiredScope: "crew"}, claims: claims{Subject: "u1", Scopes: []string{"crew"}}},
		{name: "missing scope", policy: AccessPolicy{RequiredScope: "crew"}, claims: claims{Subject: "u1", Scope: "openid"}, expected: ErrNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.policy.allows(&tt.claims); err != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestRequireUserID(t *testing.T) {
	if _, err := RequireUserID(context.Background()); err == nil {
		t.Error("expected an error without a user")
	}

	if _, err := RequireUserID(WithUserID(context.Background(), "")); err == nil {
		t.Error("expected an error for an empty user")
	}

	id, err := RequireUserID(WithUserID(context.Background(), "u1"))
	if err != nil || id != "u1" {
		t.Errorf("unexpected result %s %v", id, err)
	}
}
