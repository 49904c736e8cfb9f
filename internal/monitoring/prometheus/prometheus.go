// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/crew-service/internal/logging"
)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return errors.New("metric not initialized")
	}

	h, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	h.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return errors.New("metric not initialized")
	}

	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.responseTime = register(histogram, m.logger)
}

func (m *Monitor) registerGauges() {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.dependencies = register(gauge, m.logger)
}

// register returns the already registered collector when the same metric was registered before
func register[T prometheus.Collector](c T, logger logging.LoggerInterface) T {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		logger.Errorf("failed to register metric: %v", err)
	}

	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}
