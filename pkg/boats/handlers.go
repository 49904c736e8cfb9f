// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boats

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
	mux.Get("/api/v0/boats", a.listBoats)
	mux.Post("/api/v0/boats", a.createBoat)
	mux.Get("/api/v0/boats/{boatID}", a.getBoat)
	mux.Patch("/api/v0/boats/{boatID}", a.updateBoat)
	mux.Delete("/api/v0/boats/{boatID}", a.deleteBoat)
}

func (a *API) listBoats(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	boats, err := a.service.ListBoats(r.Context(), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, boats, "List of boats")
}

func (a *API) createBoat(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var in BoatInput
	if err := httptypes.DecodeJSON(w, r, &in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	boat, err := a.service.CreateBoat(r.Context(), userID, in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, boat, "Boat created")
}

func (a *API) getBoat(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	boat, err := a.service.GetBoat(r.Context(), chi.URLParam(r, "boatID"), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, boat, "Boat details")
}

func (a *API) updateBoat(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var patch BoatPatch
	if err := httptypes.DecodeJSON(w, r, &patch); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(patch); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	boat, err := a.service.UpdateBoat(r.Context(), chi.URLParam(r, "boatID"), userID, patch)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, boat, "Boat updated")
}

func (a *API) deleteBoat(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteBoat(r.Context(), chi.URLParam(r, "boatID"), userID); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "Boat deleted")
}
