// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/pkg/authentication"
)

// HeaderName is the header the session proxy uses to pass the authenticated identity ID
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the identity header set by the proxy in front of the service,
// it is only mounted when bearer authentication is disabled
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
