// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/authentication"
)

type createInvitationRequest struct {
	Email string         `json:"email" validate:"required,email,max=254"`
	Role  types.CrewRole `json:"role" validate:"omitempty,enum"`
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
	mux.Get("/api/v0/boats/{boatID}/invitations", a.listInvitations)
	mux.Post("/api/v0/boats/{boatID}/invitations", a.createInvitation)
	mux.Delete("/api/v0/invitations/{invitationID}", a.revokeInvitation)
	mux.Post("/api/v0/invite/{token}/accept", a.acceptInvitation)
}

// RegisterPublicEndpoints registers the routes reachable without a session
func (a *API) RegisterPublicEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/invite/{token}", a.viewInvitation)
}

func (a *API) listInvitations(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	invitations, err := a.service.ListPendingInvitations(r.Context(), chi.URLParam(r, "boatID"), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, invitations, "Pending invitations")
}

func (a *API) createInvitation(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var req createInvitationRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	inv, err := a.service.CreateInvitation(r.Context(), chi.URLParam(r, "boatID"), userID, req.Email, req.Role)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, inv, "Invitation sent")
}

func (a *API) revokeInvitation(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.RevokeInvitation(r.Context(), chi.URLParam(r, "invitationID"), userID); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "Invitation revoked")
}

func (a *API) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	result, err := a.service.AcceptInvitation(r.Context(), chi.URLParam(r, "token"), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	msg := "Invitation accepted"
	if result.AlreadyMember {
		msg = "Already a crew member"
	}

	httptypes.WriteData(w, http.StatusOK, result, msg)
}

func (a *API) viewInvitation(w http.ResponseWriter, r *http.Request) {
	view, err := a.service.ViewInvitation(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, view, "Invitation")
}
