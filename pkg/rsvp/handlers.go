// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rsvp

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/crew-service/internal/apperrors"
	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/authentication"
)

const (
	confirmedPath    = "/rsvp/confirmed"
	defaultEventName = "the event"

	errorInvalid = "invalid"
	errorFailed  = "failed"
)

type updateRsvpRequest struct {
	Status types.RSVPStatus `json:"status" validate:"required,enum"`
	Notes  *string          `json:"notes" validate:"omitempty,max=500"`
}

type API struct {
	service   ServiceInterface
	appURL    string
	validator *httptypes.Validator
	logger    logging.LoggerInterface
}

func NewAPI(service ServiceInterface, appURL string, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		appURL:    strings.TrimRight(appURL, "/"),
		validator: httptypes.NewValidator(),
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Put("/api/v0/assignments/{assignmentID}/rsvp", a.updateRsvp)
}

// RegisterPublicEndpoints registers the signed link route, it needs no session
func (a *API) RegisterPublicEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/rsvp/{assignmentID}", a.confirmRsvp)
}

func (a *API) updateRsvp(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	var req updateRsvpRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.validator.Struct(req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	assignment, err := a.service.UpdateRsvp(r.Context(), chi.URLParam(r, "assignmentID"), userID, req.Status, req.Notes)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, assignment, "RSVP updated")
}

func (a *API) confirmRsvp(w http.ResponseWriter, r *http.Request) {
	status := types.RSVPStatus(r.URL.Query().Get("status"))
	token := r.URL.Query().Get("token")

	if status == "" || token == "" || !status.Settable() {
		a.redirect(w, r, url.Values{"error": {errorInvalid}})
		return
	}

	c, err := a.service.ConfirmRsvpViaToken(r.Context(), chi.URLParam(r, "assignmentID"), status, token)
	if err != nil {
		reason := errorFailed
		if errors.Is(err, apperrors.ErrInvalidToken) || errors.Is(err, apperrors.ErrValidation) {
			reason = errorInvalid
		} else {
			a.logger.Errorf("failed to confirm rsvp of assignment %s: %v", chi.URLParam(r, "assignmentID"), err)
		}
		a.redirect(w, r, url.Values{"error": {reason}})
		return
	}

	event := c.EventTitle
	if event == "" {
		event = defaultEventName
	}

	q := url.Values{}
	q.Set("status", string(c.Status))
	q.Set("event", event)
	if c.BoatName != "" {
		q.Set("boat", c.BoatName)
	}

	a.redirect(w, r, q)
}

func (a *API) redirect(w http.ResponseWriter, r *http.Request, q url.Values) {
	http.Redirect(w, r, a.appURL+confirmedPath+"?"+q.Encode(), http.StatusSeeOther)
}
