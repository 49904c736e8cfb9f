// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

var _ PublisherInterface = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	writer Writer
	topics Topics

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func message(topic, key string, value any) (kafka.Message, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal %s message: %w", topic, err)
	}
	return kafka.Message{Topic: topic, Key: []byte(key), Value: b}, nil
}

func (p *KafkaPublisher) write(ctx context.Context, msgs ...kafka.Message) error {
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.monitor.SetDependencyAvailability(map[string]string{"component": "kafka"}, 0)
		return fmt.Errorf("kafka write error: %w", err)
	}
	p.monitor.SetDependencyAvailability(map[string]string{"component": "kafka"}, 1)
	return nil
}

// PublishNotifications writes one message per notification keyed by recipient
func (p *KafkaPublisher) PublishNotifications(ctx context.Context, notifications ...*types.Notification) error {
	ctx, span := p.tracer.Start(ctx, "pubsub.KafkaPublisher.PublishNotifications")
	defer span.End()

	if len(notifications) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(notifications))
	for _, n := range notifications {
		msg, err := message(p.topics.Notifications, n.UserID, NotificationMessage{Notification: n})
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	return p.write(ctx, msgs...)
}

func (p *KafkaPublisher) PublishAssignmentChanged(ctx context.Context, a *types.EventAssignment) error {
	ctx, span := p.tracer.Start(ctx, "pubsub.KafkaPublisher.PublishAssignmentChanged")
	defer span.End()

	msg, err := message(p.topics.Assignments, a.EventID, AssignmentMessage{
		AssignmentID: a.ID,
		EventID:      a.EventID,
		UserID:       a.UserID,
		RSVPStatus:   a.RSVPStatus,
		RespondedAt:  a.RespondedAt,
	})
	if err != nil {
		return err
	}

	return p.write(ctx, msg)
}

func (p *KafkaPublisher) PublishCrewInvalidated(ctx context.Context, boatID, reason string) error {
	ctx, span := p.tracer.Start(ctx, "pubsub.KafkaPublisher.PublishCrewInvalidated")
	defer span.End()

	msg, err := message(p.topics.Invalidate, boatID, InvalidateMessage{BoatID: boatID, Reason: reason, At: time.Now().UTC()})
	if err != nil {
		return err
	}

	return p.write(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NewKafkaWriter builds a writer without a fixed topic, each message carries its own
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func NewKafkaPublisher(w Writer, topics Topics, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KafkaPublisher {
	p := new(KafkaPublisher)

	p.writer = w
	p.topics = topics

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// NewPublisher returns a Kafka publisher when brokers are configured, a noop one otherwise
func NewPublisher(brokers []string, topicPrefix string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) PublisherInterface {
	if len(brokers) == 0 {
		logger.Info("no kafka brokers configured, realtime signals disabled")
		return NewNoopPublisher(logger)
	}

	return NewKafkaPublisher(NewKafkaWriter(brokers), NewTopics(topicPrefix), tracer, monitor, logger)
}
