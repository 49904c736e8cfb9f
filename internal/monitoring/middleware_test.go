// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/logging"
)

//go:generate mockgen -build_flags=--mod=mod -package monitoring -destination ./mock_monitor.go -source=./interfaces.go

func TestMiddleware_ResponseTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitor := NewMockMonitorInterface(ctrl)
	mockMonitor.EXPECT().SetResponseTimeMetric(
		map[string]string{"route": "GET/boats/{boatID}", "status": "418"},
		gomock.Any(),
	).Return(nil)

	router := chi.NewMux()
	router.Use(NewMiddleware(mockMonitor, logging.NewNoopLogger()).ResponseTime())
	router.Get("/boats/{boatID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boats/abc", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("unexpected status %d", w.Code)
	}
}
