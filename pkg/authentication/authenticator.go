// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

// NewJWTAuthenticator builds the bearer token verifier for the configured issuer
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	policy AccessPolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if jwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", jwksURL)
	} else {
		logger.Infof("Using OIDC discovery for issuer: %s", issuer)
	}

	idTokenVerifier, err := NewIDTokenVerifier(ctx, issuer, jwksURL)
	if err != nil {
		return nil, err
	}

	return NewJWTVerifier(idTokenVerifier, policy, tracer, monitor, logger), nil
}
