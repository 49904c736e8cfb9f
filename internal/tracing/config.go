// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/crew-service/internal/logging"
)

type ExporterKind string

const (
	ExporterOTLPGRPC ExporterKind = "otlp-grpc"
	ExporterOTLPHTTP ExporterKind = "otlp-http"
	ExporterStdout   ExporterKind = "stdout"
)

type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

// Exporter picks the span exporter, gRPC wins over HTTP when both endpoints are set
func (c *Config) Exporter() ExporterKind {
	switch {
	case c.OtelGRPCEndpoint != "":
		return ExporterOTLPGRPC
	case c.OtelHTTPEndpoint != "":
		return ExporterOTLPHTTP
	default:
		return ExporterStdout
	}
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
		Enabled:          enabled,
	}
}

func NewNoopConfig() *Config {
	return &Config{Logger: logging.NewNoopLogger()}
}
