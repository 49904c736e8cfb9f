// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/canonical/crew-service/internal/apperrors"
	"github.com/canonical/crew-service/internal/db"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a JSON body into v, rejecting unknown fields
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.Validation("Request body is required")
		}
		return apperrors.Validation("Invalid request body")
	}

	return nil
}

// PageParams reads page and size query parameters, falling back to defaults
func PageParams(r *http.Request) (int64, uint64, uint64) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if page <= 0 {
		page = 1
	}
	sizeParam, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	size := db.PageSize(sizeParam)
	return page, db.Offset(page, size), size
}
