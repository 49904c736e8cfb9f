// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

type Config struct {
	ApiURL      string
	ApiToken    string
	StoreID     string
	AuthModelID string
	Debug       bool

	Tracer  tracing.TracingInterface
	Monitor monitoring.MonitorInterface
	Logger  logging.LoggerInterface
}

func NewConfig(apiURL, apiToken, storeID, authModelID string, debug bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Config {
	return &Config{
		ApiURL:      apiURL,
		ApiToken:    apiToken,
		StoreID:     storeID,
		AuthModelID: authModelID,
		Debug:       debug,
		Tracer:      tracer,
		Monitor:     monitor,
		Logger:      logger,
	}
}
