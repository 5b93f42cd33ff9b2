// Package service implements the chart engine: pillar derivation, attribute
// enrichment, luck cycles, and the personality code. All computation is
// deterministic; the only external input is the solar-term provider.
package service

import (
	"fmt"
	"log/slog"

	"saju/internal/platform/metrics"
	"saju/internal/solarterm"
)

type Service struct {
	terms   solarterm.Provider
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(terms solarterm.Provider, opts ...Option) (*Service, error) {
	if terms == nil {
		return nil, fmt.Errorf("solar-term provider is required")
	}

	svc := &Service{
		terms:  terms,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}
