// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/logging"
)

type Pagination struct {
	Page int64  `json:"page"`
	Size uint64 `json:"size"`
}

type Response struct {
	Data    any         `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusFromKind maps an error kind to the HTTP status surfaced to clients
func StatusFromKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotAuthenticated:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindValidation, apperrors.KindInvalidToken:
		return http.StatusBadRequest
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindExpired:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{Data: data, Message: message, Status: status})
}

func WritePage(w http.ResponseWriter, data any, page int64, size uint64) {
	writeJSON(w, http.StatusOK, Response{Data: data, Message: "List", Status: http.StatusOK, Meta: &Pagination{Page: page, Size: size}})
}

// WriteError renders err with its user facing message, unclassified causes are only logged
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	kind := apperrors.KindOf(err)
	status := StatusFromKind(kind)

	var appErr *apperrors.Error
	if kind == apperrors.KindPersistence || !errors.As(err, &appErr) {
		logger.Errorf("request failed: %v", err)
	}

	writeJSON(w, status, ErrorResponse{Status: status, Message: apperrors.MessageOf(err)})
}
