// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crew

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/authentication"
)

type updateMemberRequest struct {
	Role            *types.CrewRole                       `json:"role" validate:"omitempty,enum"`
	SailingPosition types.Nullable[types.SailingPosition] `json:"sailing_position" validate:"omitempty,enum"`
}

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
	mux.Get("/api/v0/boats/{boatID}/crew", a.listMembers)
	mux.Patch("/api/v0/boats/{boatID}/crew/{membershipID}", a.updateMember)
	mux.Delete("/api/v0/boats/{boatID}/crew/{membershipID}", a.removeMember)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	actorID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	members, err := a.service.ListMembers(r.Context(), chi.URLParam(r, "boatID"), actorID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, members, "List of crew members")
}

func (a *API) updateMember(w http.ResponseWriter, r *http.Request) {
	actorID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var req updateMemberRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	changes := MemberChanges{Role: req.Role, SailingPosition: req.SailingPosition}

	m, err := a.service.UpdateMember(r.Context(), chi.URLParam(r, "membershipID"), actorID, changes)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, m, "Crew member updated")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	actorID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.RemoveMember(r.Context(), chi.URLParam(r, "membershipID"), actorID, chi.URLParam(r, "boatID")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "Crew member removed")
}
