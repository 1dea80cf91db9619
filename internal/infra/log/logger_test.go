package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newTestConfig(level string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "storefront"
	cfg.Env.Log.Level = level

	return cfg
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, "WARN", level.String())

	_, err = parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_AddsServiceAndTraceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newTestConfig("info"))
	require.NoError(t, err)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "order submitted")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "storefront", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, traceID.String(), record["trace_id"])
	assert.Equal(t, spanID.String(), record["span_id"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newTestConfig("error"))
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Empty(t, buf.String())
}
