// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/pkg/boats"
	"github.com/canonical/crew-service/pkg/crew"
	"github.com/canonical/crew-service/pkg/events"
	"github.com/canonical/crew-service/pkg/invitations"
	"github.com/canonical/crew-service/pkg/metrics"
	"github.com/canonical/crew-service/pkg/notifications"
	"github.com/canonical/crew-service/pkg/profiles"
	"github.com/canonical/crew-service/pkg/rsvp"
	"github.com/canonical/crew-service/pkg/status"
	"github.com/canonical/crew-service/pkg/webhooks"
)

type Config struct {
	AppURL         string
	AllowedOrigins []string
}

// Services groups the domain services exposed over HTTP
type Services struct {
	Boats         boats.ServiceInterface
	Crew          crew.ServiceInterface
	Invitations   invitations.ServiceInterface
	Events        events.ServiceInterface
	RSVP          rsvp.ServiceInterface
	Notifications notifications.ServiceInterface
	Profiles      profiles.ServiceInterface
	Webhooks      webhooks.ServiceInterface
}

// NewRouter mounts public endpoints on the root mux and everything else behind the
// authentication middlewares, in the order they are given
func NewRouter(
	cfg Config,
	services Services,
	pinger status.PingerInterface,
	authMiddlewares chi.Middlewares,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(pinger, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(services.Webhooks, logger).RegisterEndpoints(router)

	invitationsAPI := invitations.NewAPI(services.Invitations, logger)
	rsvpAPI := rsvp.NewAPI(services.RSVP, cfg.AppURL, logger)

	invitationsAPI.RegisterPublicEndpoints(router)
	rsvpAPI.RegisterPublicEndpoints(router)

	protected := chi.NewMux()
	protected.Use(authMiddlewares...)

	boats.NewAPI(services.Boats, logger).RegisterEndpoints(protected)
	crew.NewAPI(services.Crew, logger).RegisterEndpoints(protected)
	invitationsAPI.RegisterEndpoints(protected)
	events.NewAPI(services.Events, logger).RegisterEndpoints(protected)
	rsvpAPI.RegisterEndpoints(protected)
	notifications.NewAPI(services.Notifications, logger).RegisterEndpoints(protected)
	profiles.NewAPI(services.Profiles, logger).RegisterEndpoints(protected)

	router.Mount("/", protected)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
