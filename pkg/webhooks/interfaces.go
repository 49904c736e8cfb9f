// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/crew-service/internal/types"
)

// ProfileCreatorInterface is the subset of the profiles service creating profiles
type ProfileCreatorInterface interface {
	CreateProfile(ctx context.Context, identityID, email, name string) (*types.Profile, error)
}

// BoatListerInterface is the subset of the crew service listing the boats of a user
type BoatListerInterface interface {
	ListBoatIDsForUser(ctx context.Context, userID string) ([]string, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email, name string) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
