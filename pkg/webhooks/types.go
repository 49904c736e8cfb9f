// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"github.com/canonical/crew-service/internal/kratos"
)

// KratosIdentity is the identity body posted by the after registration webhook
type KratosIdentity struct {
	ID     string        `json:"id"`
	Traits kratos.Traits `json:"traits"`
}

// TokenHookResponse carries the extra claims merged by hydra into the issued tokens
type TokenHookResponse struct {
	Session struct {
		IDToken     map[string]interface{} `json:"id_token,omitempty"`
		AccessToken map[string]interface{} `json:"access_token,omitempty"`
	} `json:"session"`
}
