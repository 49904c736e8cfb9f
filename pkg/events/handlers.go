// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

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
	mux.Get("/api/v0/boats/{boatID}/events", a.listEvents)
	mux.Post("/api/v0/boats/{boatID}/events", a.createEvent)
	mux.Get("/api/v0/events/{eventID}", a.getEvent)
	mux.Patch("/api/v0/events/{eventID}", a.updateEvent)
	mux.Delete("/api/v0/events/{eventID}", a.deleteEvent)
}

func (a *API) listEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	page, offset, size := httptypes.PageParams(r)

	events, err := a.service.ListEvents(r.Context(), chi.URLParam(r, "boatID"), userID, offset, size)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WritePage(w, events, page, size)
}

func (a *API) createEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var in EventInput
	if err := httptypes.DecodeJSON(w, r, &in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	event, err := a.service.CreateEvent(r.Context(), chi.URLParam(r, "boatID"), userID, in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, event, "Event created")
}

func (a *API) getEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	event, err := a.service.GetEvent(r.Context(), chi.URLParam(r, "eventID"), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, event, "Event details")
}

func (a *API) updateEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var patch EventPatch
	if err := httptypes.DecodeJSON(w, r, &patch); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(patch); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	event, err := a.service.UpdateEvent(r.Context(), chi.URLParam(r, "eventID"), userID, patch)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, event, "Event updated")
}

func (a *API) deleteEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.DeleteEvent(r.Context(), chi.URLParam(r, "eventID"), userID); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "Event deleted")
}
