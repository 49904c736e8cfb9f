// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/internal/types"
)

const msgProfileNotFound = "Profile not found"

// ProfilePatch changes only the fields present, optional fields are cleared by null or ""
type ProfilePatch struct {
	FullName          *string                 `json:"full_name" validate:"omitempty,notblank,max=100"`
	DisplayName       types.Nullable[string]  `json:"display_name" validate:"omitempty,max=50"`
	AvatarURL         types.Nullable[string]  `json:"avatar_url" validate:"omitempty,url"`
	Phone             types.Nullable[string]  `json:"phone" validate:"omitempty,max=20"`
	WeightLbs         types.Nullable[int32]   `json:"weight_lbs" validate:"omitempty,min=1,max=1000"`
	SailingExperience types.Nullable[string]  `json:"sailing_experience" validate:"omitempty,max=2000"`
	DefaultRoles      []types.SailingPosition `json:"default_roles" validate:"omitempty,dive,enum"`
	Timezone          types.Nullable[string]  `json:"timezone" validate:"omitempty,max=100,timezone"`
}

func (p ProfilePatch) columns() (map[string]any, error) {
	changes := make(map[string]any)

	if p.FullName != nil {
		name := strings.TrimSpace(*p.FullName)
		if name == "" {
			return nil, apperrors.Validation("Full name is required")
		}
		changes["full_name"] = name
	}

	optional := map[string]types.Nullable[string]{
		"display_name":       p.DisplayName,
		"avatar_url":         p.AvatarURL,
		"phone":              p.Phone,
		"sailing_experience": p.SailingExperience,
		"timezone":           p.Timezone,
	}
	for column, v := range optional {
		if v.Set {
			changes[column] = types.TextOrNil(v.Value)
		}
	}

	if p.WeightLbs.Set {
		changes["weight_lbs"] = p.WeightLbs.Value
	}

	if p.DefaultRoles != nil {
		roles := make([]string, 0, len(p.DefaultRoles))
		seen := make(map[types.SailingPosition]bool, len(p.DefaultRoles))
		for _, r := range p.DefaultRoles {
			if !r.Valid() {
				return nil, apperrors.Validation("Unknown sailing position " + string(r))
			}
			if seen[r] {
				continue
			}
			seen[r] = true
			roles = append(roles, string(r))
		}
		changes["default_roles"] = roles
	}

	return changes, nil
}

type Service struct {
	storage  StorageInterface
	identity IdentityInterface

	// known holds identities whose profile was seen during the process lifetime
	known sync.Map

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	identity IdentityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.GetProfile")
	defer span.End()

	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgProfileNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.UpdateProfile")
	defer span.End()

	changes, err := patch.columns()
	if err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		return s.GetProfile(ctx, userID)
	}

	p, err := s.storage.UpdateProfile(ctx, userID, changes)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgProfileNotFound)
		}
		return nil, apperrors.Persistence(err)
	}

	return p, nil
}

// CreateProfile stores a profile for a new identity, an existing profile is returned unchanged
func (s *Service) CreateProfile(ctx context.Context, identityID, email, name string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.CreateProfile")
	defer span.End()

	if identityID == "" || strings.TrimSpace(email) == "" {
		return nil, apperrors.Validation("Identity id and email are required")
	}

	profile := &types.Profile{ID: identityID, Email: strings.ToLower(strings.TrimSpace(email))}
	if name = strings.TrimSpace(name); name != "" {
		profile.FullName = &name
	}

	created, err := s.storage.CreateProfile(ctx, profile)
	if err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.Persistence(err)
		}

		existing, err := s.storage.GetProfile(ctx, identityID)
		if err != nil {
			return nil, apperrors.ErrConflict.WithMessage("A profile already uses this email").Wrap(err)
		}
		created = existing
	}

	s.known.Store(identityID, struct{}{})

	return created, nil
}

// EnsureProfile creates the profile of an authenticated identity on first sight from its traits
func (s *Service) EnsureProfile(ctx context.Context, identityID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.EnsureProfile")
	defer span.End()

	p, err := s.storage.GetProfile(ctx, identityID)
	if err == nil {
		s.known.Store(identityID, struct{}{})
		return p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.Persistence(err)
	}

	traits, err := s.identity.GetTraits(ctx, identityID)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return s.CreateProfile(ctx, identityID, traits.Email, string(traits.Name))
}

func (s *Service) seen(identityID string) bool {
	_, ok := s.known.Load(identityID)
	return ok
}
