// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"

	"github.com/canonical/crew-service/internal/kratos"
	"github.com/canonical/crew-service/internal/types"
)

type ServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*types.Profile, error)
	EnsureProfile(ctx context.Context, identityID string) (*types.Profile, error)
	CreateProfile(ctx context.Context, identityID, email, name string) (*types.Profile, error)
}

type StorageInterface interface {
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, id string, changes map[string]any) (*types.Profile, error)
}

// IdentityInterface reads identity traits from the identity provider
type IdentityInterface interface {
	GetTraits(ctx context.Context, identityID string) (*kratos.Traits, error)
}
