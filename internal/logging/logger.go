// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogMaxSize    = 100
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
)

// Logger is the application logger, a thin layer over the zap sugared logger
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// Sync flushes buffered entries, errors on stdout/stderr sync are expected and ignored
func (l *Logger) Sync() error {
	_ = l.SugaredLogger.Sync()
	return nil
}

// FileConfig enables rotated file output next to stdout
type FileConfig struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// NewLogger creates a JSON logger writing to stdout at the given level,
// unknown levels fall back to error
func NewLogger(l string) *Logger {
	return NewLoggerWithFile(l, nil)
}

// NewLoggerWithFile behaves like NewLogger and additionally tees entries into a lumberjack rotated file
func NewLoggerWithFile(l string, file *FileConfig) *Logger {
	level := parseLevel(l)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "@timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	atom := zap.NewAtomicLevelAt(level)
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atom),
	}

	if file != nil && file.Filename != "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(newRotator(file)), atom))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	logger := new(Logger)
	logger.SugaredLogger = z.Sugar()
	logger.security = &SecurityLogger{l: z.Named("security")}

	logger.Debugf("logger initialized with level %s", level)

	return logger
}

func newRotator(file *FileConfig) *lumberjack.Logger {
	r := &lumberjack.Logger{
		Filename:   file.Filename,
		MaxSize:    file.MaxSize,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAge,
		Compress:   file.Compress,
	}

	if r.MaxSize == 0 {
		r.MaxSize = defaultLogMaxSize
	}
	if r.MaxBackups == 0 {
		r.MaxBackups = defaultLogMaxBackups
	}
	if r.MaxAge == 0 {
		r.MaxAge = defaultLogMaxAge
	}

	return r
}

func parseLevel(l string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		return zapcore.ErrorLevel
	}

	return level
}
