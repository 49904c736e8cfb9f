// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import (
	"context"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/types"
)

var _ PublisherInterface = (*NoopPublisher)(nil)

type NoopPublisher struct {
	logger logging.LoggerInterface
}

func (p *NoopPublisher) PublishNotifications(ctx context.Context, notifications ...*types.Notification) error {
	return nil
}

func (p *NoopPublisher) PublishAssignmentChanged(ctx context.Context, assignment *types.EventAssignment) error {
	return nil
}

func (p *NoopPublisher) PublishCrewInvalidated(ctx context.Context, boatID, reason string) error {
	p.logger.Debugf("crew of boat %s invalidated: %s", boatID, reason)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

func NewNoopPublisher(logger logging.LoggerInterface) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}
