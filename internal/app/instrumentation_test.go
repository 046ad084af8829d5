//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/cybervault/crypto-engine/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectOperations returns counter totals keyed by "operation/outcome"
func collectOperations(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	totals := make(map[string]int64)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != OperationsMetricName {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value("operation")
				outcome, _ := dp.Attributes.Value("outcome")
				totals[op.AsString()+"/"+outcome.AsString()] += dp.Value
			}
		}
	}
	return totals
}

func TestCryptoEngine_RecordsOperations(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	engine, _ := setupEngine(t, nil, WithMeterProvider(provider))
	ctx := context.Background()

	generated, err := engine.GenerateKey(ctx, crypto.KeyTypeSymmetric, 128)
	require.NoError(t, err)

	ciphertext, err := engine.Encrypt(ctx, generated.Symmetric.ID, "hi", crypto.AlgorithmSymmetric)
	require.NoError(t, err)

	_, err = engine.Decrypt(ctx, generated.Symmetric.ID, ciphertext, crypto.AlgorithmSymmetric)
	require.NoError(t, err)

	_, err = engine.Decrypt(ctx, "missing", ciphertext, crypto.AlgorithmSymmetric)
	require.Error(t, err)

	_, err = engine.GenerateKey(ctx, crypto.KeyTypeSymmetric, 100)
	require.Error(t, err)

	totals := collectOperations(t, reader)
	assert.Equal(t, int64(1), totals["generate_key/success"])
	assert.Equal(t, int64(1), totals["generate_key/invalid_key_spec"])
	assert.Equal(t, int64(1), totals["encrypt/success"])
	assert.Equal(t, int64(1), totals["decrypt/success"])
	assert.Equal(t, int64(1), totals["decrypt/key_not_found"])
}
