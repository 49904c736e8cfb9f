// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Errorw(string, ...interface{})
	Infow(string, ...interface{})
	Warnw(string, ...interface{})
	Debugw(string, ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits security events in a format suitable for audit pipelines.
type SecurityLoggerInterface interface {
	AuthzFailure(string, string)
	AuthzSuccess(string, string)
	TokenRejected(string, string)
	SystemStartup()
	SystemShutdown()
}
