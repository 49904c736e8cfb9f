// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

// NotificationInput is the content of a notification before it is addressed to recipients
type NotificationInput struct {
	UserID string
	Type   types.NotificationType
	Title  string
	Body   string
	Data   map[string]string
}

type Service struct {
	storage   StorageInterface
	publisher PublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	publisher PublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		publisher: publisher,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (s *Service) Notify(ctx context.Context, in NotificationInput) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.Notify")
	defer span.End()

	if in.UserID == "" {
		return apperrors.Validation("Recipient is required")
	}

	return s.dispatch(ctx, []string{in.UserID}, in)
}

// NotifyBoatCrew addresses the notification to every active member of the boat but excludeUserID
func (s *Service) NotifyBoatCrew(ctx context.Context, boatID, excludeUserID string, in NotificationInput) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.NotifyBoatCrew")
	defer span.End()

	members, err := s.storage.ListActiveMemberships(ctx, boatID)
	if err != nil {
		return apperrors.Persistence(err)
	}

	recipients := make([]string, 0, len(members))
	for _, m := range members {
		if m.UserID == excludeUserID {
			continue
		}
		recipients = append(recipients, m.UserID)
	}

	return s.dispatch(ctx, recipients, in)
}

func (s *Service) dispatch(ctx context.Context, recipients []string, in NotificationInput) error {
	if !in.Type.Valid() {
		return apperrors.Validation("Unknown notification type")
	}

	if len(recipients) == 0 {
		return nil
	}

	var data json.RawMessage
	if len(in.Data) > 0 {
		raw, err := json.Marshal(in.Data)
		if err != nil {
			return apperrors.Validation("Invalid notification data")
		}
		data = raw
	}

	var body *string
	if in.Body != "" {
		body = &in.Body
	}

	rows := make([]*types.Notification, 0, len(recipients))
	for _, userID := range recipients {
		rows = append(rows, &types.Notification{
			UserID: userID,
			Type:   in.Type,
			Title:  in.Title,
			Body:   body,
			Data:   data,
		})
	}

	created, err := s.storage.CreateNotifications(ctx, rows)
	if err != nil {
		return apperrors.Persistence(err)
	}

	if err := s.publisher.PublishNotifications(ctx, created...); err != nil {
		s.logger.Warnf("failed to publish %d notifications: %v", len(created), err)
	}

	return nil
}

func (s *Service) List(ctx context.Context, userID string, unreadOnly bool, offset, size uint64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.List")
	defer span.End()

	notifications, err := s.storage.ListNotifications(ctx, userID, unreadOnly, offset, size)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return notifications, nil
}

// MarkRead only touches notifications owned by userID
func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkRead")
	defer span.End()

	err := s.storage.MarkNotificationRead(ctx, id, userID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.NotFound("Notification not found")
	default:
		return apperrors.Persistence(err)
	}
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "notifications.Service.MarkAllRead")
	defer span.End()

	n, err := s.storage.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, apperrors.Persistence(err)
	}

	return n, nil
}
