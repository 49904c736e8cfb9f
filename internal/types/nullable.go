// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"strings"
)

// Nullable tells an absent JSON field apart from an explicit null.
// Set is true whenever the field was present, Value is nil for null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v

	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Cleared reports whether the field was explicitly set to null
func (n Nullable[T]) Cleared() bool {
	return n.Set && n.Value == nil
}

func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// TextOrNil maps blank text to nil so optional columns store NULL instead of empty strings
func TextOrNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
