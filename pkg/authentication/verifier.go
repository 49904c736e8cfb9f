// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

var (
	ErrNoAccessPolicy = errors.New("unauthorized: no access policy configured")
	ErrNotAllowed     = errors.New("unauthorized: missing required scope or subject not allowed")
)

type claims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c *claims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

// AccessPolicy decides which verified tokens may call the API
type AccessPolicy struct {
	AllowedSubjects []string
	RequiredScope   string
	// AnySubject lets every verified end user through, used for interactive clients
	AnySubject bool
}

func (p AccessPolicy) allows(c *claims) error {
	if p.AnySubject && c.Subject != "" {
		return nil
	}
	if len(p.AllowedSubjects) == 0 && p.RequiredScope == "" {
		return ErrNoAccessPolicy
	}
	if slices.Contains(p.AllowedSubjects, c.Subject) {
		return nil
	}
	if p.RequiredScope != "" && c.hasScope(p.RequiredScope) {
		return nil
	}
	return ErrNotAllowed
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   AccessPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	c := new(claims)
	if err := token.Claims(c); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return "", err
	}

	if err := v.policy.allows(c); err != nil {
		v.logger.Security().AuthzFailure(c.Subject, "jwt_api_access")
		return "", err
	}

	return c.Subject, nil
}

func NewJWTVerifier(verifier *oidc.IDTokenVerifier, policy AccessPolicy, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		policy:   policy,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
