// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rsvp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/canonical/crew-service/internal/types"
)

// Signer binds an RSVP link to one assignment and one status with HMAC-SHA256
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) mac(assignmentID string, status types.RSVPStatus) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(assignmentID + ":" + string(status)))
	return h.Sum(nil)
}

// Sign returns the hex encoded token for the assignment and status
func (s *Signer) Sign(assignmentID string, status types.RSVPStatus) string {
	return hex.EncodeToString(s.mac(assignmentID, status))
}

// Verify compares in constant time, malformed tokens never match
func (s *Signer) Verify(assignmentID string, status types.RSVPStatus, token string) bool {
	raw, err := hex.DecodeString(token)
	if err != nil {
		return false
	}
	return hmac.Equal(raw, s.mac(assignmentID, status))
}

// URL builds the one click link answering the assignment with status
func (s *Signer) URL(baseURL, assignmentID string, status types.RSVPStatus) string {
	q := url.Values{}
	q.Set("status", string(status))
	q.Set("token", s.Sign(assignmentID, status))

	return strings.TrimRight(baseURL, "/") + "/api/v0/rsvp/" + url.PathEscape(assignmentID) + "?" + q.Encode()
}
