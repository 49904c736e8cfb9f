// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/crew-service/internal/http/types"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/pkg/authentication"
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

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/notifications", a.list)
	mux.Post("/api/v0/notifications/read", a.markAllRead)
	mux.Post("/api/v0/notifications/{notificationID}/read", a.markRead)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
	page, offset, size := httptypes.PageParams(r)

	notifications, err := a.service.List(r.Context(), userID, unreadOnly, offset, size)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WritePage(w, notifications, page, size)
}

func (a *API) markRead(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.MarkRead(r.Context(), chi.URLParam(r, "notificationID"), userID); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, nil, "Notification marked as read")
}

func (a *API) markAllRead(w http.ResponseWriter, r *http.Request) {
	userID, err := authentication.RequireUserID(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	n, err := a.service.MarkAllRead(r.Context(), userID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteData(w, http.StatusOK, map[string]int64{"updated": n}, "Notifications marked as read")
}
