// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

// BoatsClaim is the token claim listing the boats the subject is an active member of
const BoatsClaim = "boats"

type Service struct {
	profiles ProfileCreatorInterface
	boats    BoatListerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	profiles ProfileCreatorInterface,
	boats BoatListerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		profiles: profiles,
		boats:    boats,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// HandleRegistration creates the profile of a freshly registered identity
func (s *Service) HandleRegistration(ctx context.Context, identityID, email, name string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	profile, err := s.profiles.CreateProfile(ctx, identityID, email, name)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infof("Created profile %s for %s", profile.ID, profile.Email)
	return nil
}

// HandleTokenHook adds the boats of the subject to the id and access token claims
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	subject := subjectOf(req)
	s.logger.Debugf("Handling token hook for subject %q", subject)

	if subject == "" {
		return nil, fmt.Errorf("token hook request has no subject")
	}

	boatIDs, err := s.boats.ListBoatIDsForUser(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}

	s.logger.Debugf("Adding %d boats to the token claims", len(boatIDs))

	resp := new(TokenHookResponse)
	if len(boatIDs) > 0 {
		resp.Session.IDToken = map[string]interface{}{BoatsClaim: boatIDs}
		resp.Session.AccessToken = map[string]interface{}{BoatsClaim: boatIDs}
	}

	return resp, nil
}

func subjectOf(req *oauth2.TokenHookRequest) string {
	if req == nil || req.Session == nil || req.Session.DefaultSession == nil {
		return ""
	}
	return req.Session.DefaultSession.Subject
}
