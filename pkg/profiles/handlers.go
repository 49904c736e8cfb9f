// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator *httptypes.Validator
	logger    logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: httptypes.NewValidator(),
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/profile", a.getProfile)
	mux.Patch("/api/v0/profile", a.updateProfile)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	profile, err := a.service.GetProfile(r.Context(), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, profile, "Profile")
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var patch ProfilePatch
	if err := httptypes.DecodeJSON(w, r, &patch); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(patch); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	profile, err := a.service.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, profile, "Profile updated")
}
