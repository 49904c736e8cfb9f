// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/crew-service/internal/types"
)

var notificationColumns = []string{"id", "user_id", "type", "title", "body", "data", "is_read", "created_at"}

func scanNotification(row rowScanner) (*types.Notification, error) {
	var n types.Notification
	var data []byte

	if err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &data, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}

	if len(data) > 0 {
		n.Data = data
	}

	return &n, nil
}

// CreateNotifications bulk inserts unread notifications
func (s *Storage) CreateNotifications(ctx context.Context, notifications []*types.Notification) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotifications")
	defer span.End()

	if len(notifications) == 0 {
		return []*types.Notification{}, nil
	}

	query := s.db.Statement(ctx).
		Insert("notifications").
		Columns("id", "user_id", "type", "title", "body", "data")

	for _, n := range notifications {
		id, err := newID()
		if err != nil {
			return nil, err
		}

		var data any
		if len(n.Data) > 0 {
			data = string(n.Data)
		}

		query = query.Values(id, n.UserID, n.Type, n.Title, n.Body, data)
	}

	rows, err := query.
		Suffix("RETURNING " + strings.Join(notificationColumns, ", ")).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "insert notifications")
	}

	return collect(rows, func(row rowScanner) (*types.Notification, error) {
		n, err := scanNotification(row)
		if err != nil {
			return nil, translate(err, "scan notification")
		}
		return n, nil
	})
}

func (s *Storage) ListNotifications(ctx context.Context, userID string, unreadOnly bool, offset, limit uint64) ([]*types.Notification, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotifications")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"user_id": userID})

	if unreadOnly {
		query = query.Where(sq.Eq{"is_read": false})
	}

	rows, err := query.
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list notifications")
	}

	return collect(rows, func(row rowScanner) (*types.Notification, error) {
		n, err := scanNotification(row)
		if err != nil {
			return nil, translate(err, "scan notification")
		}
		return n, nil
	})
}

// MarkNotificationRead only touches notifications owned by userID
func (s *Storage) MarkNotificationRead(ctx context.Context, id, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkNotificationRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return translate(err, "mark notification read")
	}

	return affected(res, "mark notification read")
}

func (s *Storage) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkAllNotificationsRead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		ExecContext(ctx)
	if err != nil {
		return 0, translate(err, "mark all notifications read")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, translate(err, "mark all notifications read")
	}

	return n, nil
}
