// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperrors defines the error taxonomy shared by the lifecycle managers and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotAuthenticated Kind = "not_authenticated"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation_error"
	KindConflict         Kind = "conflict"
	KindExpired          Kind = "expired"
	KindPersistence      Kind = "persistence_error"
	KindInvalidToken     Kind = "invalid_token"
)

// Error is a classified failure carrying a short user facing message.
// Two errors match with errors.Is when their codes are equal.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of a sentinel with a more specific message, still matching the sentinel
func (e *Error) WithMessage(msg string) *Error {
	c := *e
	c.Message = msg
	return &c
}

// Wrap returns a copy of a sentinel carrying the underlying cause
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.Err = err
	return &c
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrNotAuthenticated = New(KindNotAuthenticated, "not_authenticated", "Not authenticated")
	ErrForbidden        = New(KindForbidden, "forbidden", "Forbidden")
	ErrNotFound         = New(KindNotFound, "not_found", "Not found")
	ErrValidation       = New(KindValidation, "validation_error", "Invalid input")
	ErrConflict         = New(KindConflict, "conflict", "Conflict")
	ErrPersistence      = New(KindPersistence, "persistence_error", "Something went wrong, please try again")

	ErrNotAMember            = New(KindForbidden, "not_a_member", "You are not a member of this boat")
	ErrInsufficientPrivilege = New(KindForbidden, "insufficient_privilege", "You do not have permission to perform this action")
	ErrOwnerRoleImmutable    = New(KindConflict, "owner_role_immutable", "Cannot change the owner role")
	ErrAlreadyMember         = New(KindConflict, "already_member", "This person is already a crew member on this boat")
	ErrDuplicateInvitation   = New(KindConflict, "duplicate_invitation", "An invitation has already been sent to this email")
	ErrNotFoundOrExpired     = New(KindNotFound, "not_found_or_expired", "Invitation not found or expired")
	ErrInvitationExpired     = New(KindExpired, "invitation_expired", "This invitation has expired")
	ErrInvalidToken          = New(KindInvalidToken, "invalid_token", "Invalid token")
)

// KindOf classifies any error, unclassified errors are persistence failures
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// MessageOf returns the user facing message, unclassified errors never leak their text
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrPersistence.Message
}

func Validation(msg string) *Error {
	return ErrValidation.WithMessage(msg)
}

func Forbidden(msg string) *Error {
	return ErrForbidden.WithMessage(msg)
}

func NotFound(msg string) *Error {
	return ErrNotFound.WithMessage(msg)
}

// Persistence hides the store failure behind a generic message while keeping it for logs
func Persistence(err error) *Error {
	return ErrPersistence.Wrap(err)
}
