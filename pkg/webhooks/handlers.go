// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/crew-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the identity provider hooks, they are called server to server
// and authenticated at the network level
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
	mux.Post("/api/v0/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("failed to decode registration webhook: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email, string(identity.Traits.Name)); err != nil {
		a.logger.Errorf("registration webhook failed: %v", err)
		http.Error(w, "Failed to handle registration", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	var req oauth2.TokenHookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Errorf("failed to decode token hook: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), &req)
	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		http.Error(w, "Failed to handle token hook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
