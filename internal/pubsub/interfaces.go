// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/canonical/crew-service/internal/types"
)

// PublisherInterface emits realtime signals for connected clients
type PublisherInterface interface {
	PublishNotifications(ctx context.Context, notifications ...*types.Notification) error
	PublishAssignmentChanged(ctx context.Context, assignment *types.EventAssignment) error
	PublishCrewInvalidated(ctx context.Context, boatID string, reason string) error
	Close() error
}

// Writer is the subset of kafka.Writer the publisher needs
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
