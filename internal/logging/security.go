// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityAppID = "crew-service"
)

// SecurityLogger writes OWASP style security events
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthzFailure(user, resource string) {
	s.l.Warn(
		"authz_fail:"+user+","+resource,
		zap.String("type", "security"),
		zap.String("appid", securityAppID),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) AuthzSuccess(user, resource string) {
	s.l.Info(
		"authz_success:"+user+","+resource,
		zap.String("type", "security"),
		zap.String("appid", securityAppID),
		zap.String("level", "INFO"),
	)
}

// TokenRejected records a rejected bearer credential, the credential itself is never logged
func (s *SecurityLogger) TokenRejected(subject, reason string) {
	s.l.Warn(
		"token_rejected:"+subject,
		zap.String("type", "security"),
		zap.String("appid", securityAppID),
		zap.String("reason", reason),
		zap.String("level", "WARN"),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("sys_startup", zap.String("type", "security"), zap.String("appid", securityAppID))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("sys_shutdown", zap.String("type", "security"), zap.String("appid", securityAppID))
}
