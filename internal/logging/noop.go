// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger discards everything, security events included.
// Used by CLI commands that only print to stdout and by tests.
func NewNoopLogger() *Logger {
	z := zap.NewNop()

	return &Logger{
		SugaredLogger: z.Sugar(),
		security:      &SecurityLogger{l: z.Named("security")},
	}
}
