// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w Writer) *KafkaPublisher {
	logger := logging.NewNoopLogger()
	return NewKafkaPublisher(w, NewTopics("crew"), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestPublishNotifications(t *testing.T) {
	w := new(fakeWriter)
	p := newTestPublisher(w)

	err := p.PublishNotifications(context.Background(),
		&types.Notification{ID: "n1", UserID: "u1", Type: types.NotificationEventCreated, Title: "New event"},
		&types.Notification{ID: "n2", UserID: "u2", Type: types.NotificationEventCreated, Title: "New event"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(w.msgs))
	}

	for i, user := range []string{"u1", "u2"} {
		if w.msgs[i].Topic != "crew.notifications" {
			t.Errorf("expected topic crew.notifications, got %s", w.msgs[i].Topic)
		}
		if string(w.msgs[i].Key) != user {
			t.Errorf("expected key %s, got %s", user, w.msgs[i].Key)
		}

		var msg NotificationMessage
		if err := json.Unmarshal(w.msgs[i].Value, &msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}
		if msg.Notification.UserID != user {
			t.Errorf("expected payload for %s, got %s", user, msg.Notification.UserID)
		}
	}
}

func TestPublishNotificationsEmpty(t *testing.T) {
	w := new(fakeWriter)

	if err := newTestPublisher(w).PublishNotifications(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(w.msgs))
	}
}

func TestPublishAssignmentChanged(t *testing.T) {
	w := new(fakeWriter)

	err := newTestPublisher(w).PublishAssignmentChanged(context.Background(), &types.EventAssignment{
		ID: "a1", EventID: "e1", UserID: "u1", RSVPStatus: types.RSVPAccepted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w.msgs) != 1 || w.msgs[0].Topic != "crew.assignments" || string(w.msgs[0].Key) != "e1" {
		t.Fatalf("unexpected messages %+v", w.msgs)
	}

	var msg AssignmentMessage
	if err := json.Unmarshal(w.msgs[0].Value, &msg); err != nil {
		t.Fatalf("failed to decode message: %v", err)
	}
	if msg.RSVPStatus != types.RSVPAccepted || msg.AssignmentID != "a1" {
		t.Errorf("unexpected payload %+v", msg)
	}
}

func TestPublishCrewInvalidated(t *testing.T) {
	w := new(fakeWriter)
	p := newTestPublisher(w)

	if err := p.PublishCrewInvalidated(context.Background(), "b1", "member_removed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.msgs) != 1 || w.msgs[0].Topic != "crew.invalidate" || string(w.msgs[0].Key) != "b1" {
		t.Fatalf("unexpected messages %+v", w.msgs)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Fatalf("expected writer to be closed, got %v", err)
	}
}

func TestPublishWriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}

	err := newTestPublisher(w).PublishCrewInvalidated(context.Background(), "b1", "role_changed")
	if err == nil {
		t.Fatal("expected error but got none")
	}
}

func TestNewTopics(t *testing.T) {
	topics := NewTopics("")
	if topics.Invalidate != "crew.invalidate" {
		t.Errorf("expected default prefix, got %s", topics.Invalidate)
	}

	topics = NewTopics("staging")
	if topics.Notifications != "staging.notifications" {
		t.Errorf("expected staging prefix, got %s", topics.Notifications)
	}
}
