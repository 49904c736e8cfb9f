// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Traits is the part of the identity schema the service reads, name may be a plain
// string or an object with first and last parts depending on the schema
type Traits struct {
	Email string `json:"email"`
	Name  Name   `json:"name"`
}

type Name string

func (n *Name) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*n = Name(strings.TrimSpace(plain))
		return nil
	}

	var parts struct {
		First string `json:"first"`
		Last  string `json:"last"`
	}
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("unsupported name trait: %w", err)
	}

	*n = Name(strings.TrimSpace(parts.First + " " + parts.Last))
	return nil
}

// ParseTraits decodes the free form traits returned by the admin API
func ParseTraits(raw any) (*Traits, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode traits: %w", err)
	}

	var t Traits
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode traits: %w", err)
	}
	t.Email = strings.ToLower(strings.TrimSpace(t.Email))

	return &t, nil
}
