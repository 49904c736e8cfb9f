// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

// ErrIdentityNotFound is returned when the admin API does not know the identity
var ErrIdentityNotFound = errors.New("identity not found")

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetTraits fetches the identity and decodes the traits used to seed a profile
func (c *Client) GetTraits(ctx context.Context, identityID string) (*Traits, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetTraits")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, identityID).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return ParseTraits(identity.Traits)
}
