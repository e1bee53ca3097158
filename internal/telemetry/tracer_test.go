package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/inventory-hub/internal/config"
	"github.com/tuanvumaihuynh/inventory-hub/internal/telemetry"
)

func TestInitTracerDisabled(t *testing.T) {
	cleanup, err := telemetry.InitTracer(context.Background(), config.Otel{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	assert.NoError(t, cleanup(context.Background()))
}

func TestInitTracerEnabled(t *testing.T) {
	// the grpc client connects lazily, so no collector is needed here
	cleanup, err := telemetry.InitTracer(context.Background(), config.Otel{
		Enabled:      true,
		ServiceName:  "inventory-hub-test",
		CollectorURL: "localhost:4317",
		Insecure:     true,
		TraceIDRatio: 1,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = cleanup(ctx)
}
