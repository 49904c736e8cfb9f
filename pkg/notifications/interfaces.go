// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/canonical/crew-service/internal/types"
)

type ServiceInterface interface {
	Notify(ctx context.Context, in NotificationInput) error
	NotifyBoatCrew(ctx context.Context, boatID, excludeUserID string, in NotificationInput) error
	List(ctx context.Context, userID string, unreadOnly bool, offset, size uint64) ([]*types.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// StorageInterface is the subset of the storage layer used by the dispatcher
type StorageInterface interface {
	CreateNotifications(ctx context.Context, notifications []*types.Notification) ([]*types.Notification, error)
	ListActiveMemberships(ctx context.Context, boatID string) ([]*types.CrewMembership, error)
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, offset, limit uint64) ([]*types.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

type PublisherInterface interface {
	PublishNotifications(ctx context.Context, notifications ...*types.Notification) error
}
