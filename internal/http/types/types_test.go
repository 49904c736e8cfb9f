// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/logging"
	domain "github.com/canonical/crew-service/internal/types"
)

func TestStatusFromKind(t *testing.T) {
	tests := []struct {
		kind     apperrors.Kind
		expected int
	}{
		{apperrors.KindNotAuthenticated, http.StatusUnauthorized},
		{apperrors.KindForbidden, http.StatusForbidden},
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindValidation, http.StatusBadRequest},
		{apperrors.KindConflict, http.StatusConflict},
		{apperrors.KindExpired, http.StatusGone},
		{apperrors.KindInvalidToken, http.StatusBadRequest},
		{apperrors.KindPersistence, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFromKind(tt.kind); got != tt.expected {
			t.Errorf("StatusFromKind(%s) = %d, want %d", tt.kind, got, tt.expected)
		}
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "domain error keeps its message",
			err:             apperrors.ErrDuplicateInvitation,
			expectedStatus:  http.StatusConflict,
			expectedMessage: apperrors.ErrDuplicateInvitation.Message,
		},
		{
			name:            "unclassified error is hidden",
			err:             errors.New("pq: connection refused on 10.0.0.1"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: apperrors.ErrPersistence.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.err, logging.NewNoopLogger())

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Message != tt.expectedMessage || body.Status != tt.expectedStatus {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

type testPayload struct {
	Name  string          `json:"name" validate:"required,notblank,max=5"`
	Email string          `json:"email" validate:"omitempty,email"`
	Role  *domain.CrewRole `json:"role" validate:"omitempty,enum"`
	Start string          `json:"start_time" validate:"omitempty,rfc3339"`
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	badRole := domain.CrewRole("captain")
	goodRole := domain.RoleCrew

	tests := []struct {
		name     string
		payload  testPayload
		expected string
	}{
		{name: "valid", payload: testPayload{Name: "Ann", Role: &goodRole, Start: "2026-05-01T10:00:00Z"}},
		{name: "missing name", payload: testPayload{}, expected: "name is required"},
		{name: "blank name", payload: testPayload{Name: "   "}, expected: "name cannot be empty"},
		{name: "long name", payload: testPayload{Name: "abcdefg"}, expected: "name must be at most 5 characters"},
		{name: "bad email", payload: testPayload{Name: "Ann", Email: "nope"}, expected: "email must be a valid email address"},
		{name: "bad role", payload: testPayload{Name: "Ann", Role: &badRole}, expected: "role has an invalid value"},
		{name: "bad time", payload: testPayload{Name: "Ann", Start: "tomorrow"}, expected: "start_time must be an RFC3339 timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)

			if tt.expected == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if apperrors.MessageOf(err) != tt.expected {
				t.Errorf("expected message %q, got %q", tt.expected, apperrors.MessageOf(err))
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var p testPayload

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann","unknown":1}`))
	if err := DecodeJSON(httptest.NewRecorder(), req, &p); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	if err := DecodeJSON(httptest.NewRecorder(), req, &p); apperrors.MessageOf(err) != "Request body is required" {
		t.Fatalf("expected empty body error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
	if err := DecodeJSON(httptest.NewRecorder(), req, &p); err != nil || p.Name != "Ann" {
		t.Fatalf("unexpected result %v %+v", err, p)
	}
}

func TestPageParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&size=10", nil)
	page, offset, size := PageParams(req)
	if page != 3 || offset != 20 || size != 10 {
		t.Errorf("unexpected page params %d %d %d", page, offset, size)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	page, offset, size = PageParams(req)
	if page != 1 || offset != 0 || size != 50 {
		t.Errorf("unexpected default page params %d %d %d", page, offset, size)
	}
}
