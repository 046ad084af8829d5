package app

import (
	"context"
	"fmt"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/cybervault/crypto-engine/internal/app"

// Operation names recorded on the operations counter
const (
	opGenerateKey = "generate_key"
	opDescribeKey = "describe_key"
	opEncrypt     = "encrypt"
	opDecrypt     = "decrypt"
	opHash        = "hash"
	opVerifyHash  = "verify_hash"
	opHMAC        = "hmac"
	opVerifyHMAC  = "verify_hmac"
)

// OperationsMetricName is the counter incremented once per engine call
const OperationsMetricName = "crypto_engine.operations"

type engineMetrics struct {
	operations metric.Int64Counter
}

func newEngineMetrics(provider metric.MeterProvider) (*engineMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	counter, err := provider.Meter(instrumentationName).Int64Counter(
		OperationsMetricName,
		metric.WithDescription("Cryptographic engine operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operations counter: %w", err)
	}
	return &engineMetrics{operations: counter}, nil
}

// record counts one call. The outcome is the error code, "success" for nil.
func (m *engineMetrics) record(ctx context.Context, operation string, err error) {
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", crypto.ErrorCode(err)),
	))
}
