// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	CheckedAt string `json:"checked_at"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.status)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	v, rev := version.Info()
	s := Status{
		Status:    "ok",
		Database:  "ok",
		Version:   v,
		Revision:  rev,
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK
	available := 1.0

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		s.Status, s.Database = "degraded", "unavailable"
		code = http.StatusServiceUnavailable
		available = 0
	}

	_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available)

	httptypes.WriteData(w, code, s, "Status")
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	v, rev := version.Info()

	httptypes.WriteData(w, http.StatusOK, map[string]string{"version": v, "revision": rev}, "Version")
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
