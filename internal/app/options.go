package app

import "go.opentelemetry.io/otel/metric"

type engineOptions struct {
	meterProvider metric.MeterProvider
}

// EngineOption configures optional engine collaborators
type EngineOption func(*engineOptions)

// WithMeterProvider records operation metrics on provider instead of the global one
func WithMeterProvider(provider metric.MeterProvider) EngineOption {
	return func(o *engineOptions) {
		o.meterProvider = provider
	}
}
