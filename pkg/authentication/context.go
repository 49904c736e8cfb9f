// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/crew-service/internal/apperrors"
)

type contextKey struct{}

var userContextKey = contextKey{}

// WithUserID stores the authenticated person id on the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// GetUserID returns the authenticated person id, false when absent or empty
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userContextKey).(string)
	return id, ok && id != ""
}

// RequireUserID is GetUserID for handlers that cannot run anonymously
func RequireUserID(ctx context.Context) (string, error) {
	id, ok := GetUserID(ctx)
	if !ok {
		return "", apperrors.ErrNotAuthenticated
	}
	return id, nil
}
