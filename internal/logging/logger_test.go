// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "INFO", expected: zapcore.InfoLevel},
		{input: "warn", expected: zapcore.WarnLevel},
		{input: "", expected: zapcore.InfoLevel},
		{input: "nonsense", expected: zapcore.ErrorLevel},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := parseLevel(test.input); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestNewRotatorDefaults(t *testing.T) {
	r := newRotator(&FileConfig{Filename: filepath.Join(t.TempDir(), "crew.log")})

	if r.MaxSize != defaultLogMaxSize || r.MaxBackups != defaultLogMaxBackups || r.MaxAge != defaultLogMaxAge {
		t.Errorf("unexpected rotation defaults: %+v", r)
	}
}

func TestLoggerWithFile(t *testing.T) {
	logger := NewLoggerWithFile("info", &FileConfig{Filename: filepath.Join(t.TempDir(), "crew.log")})
	logger.Info("hello")
	logger.Security().SystemStartup()

	if err := logger.Sync(); err != nil {
		t.Errorf("unexpected sync error: %v", err)
	}
}
