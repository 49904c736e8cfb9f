// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"net/http"

	"github.com/canonical/crew-service/pkg/authentication"
)

// EnsureProfileMiddleware creates the profile of the authenticated user before the request
// reaches handlers relying on it, failures are logged and the request goes on
func (s *Service) EnsureProfileMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authentication.GetUserID(r.Context())
		if ok && !s.seen(userID) {
			if _, err := s.EnsureProfile(r.Context(), userID); err != nil {
				s.logger.Warnf("failed to ensure profile of %s: %v", userID, err)
			}
		}

		next.ServeHTTP(w, r)
	})
}
