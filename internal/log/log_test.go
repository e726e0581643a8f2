package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/log"
	"github.com/tuanvumaihuynh/food-catalog/pkg/correlationid"
)

func TestNewJSONLoggerAddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo}, &buf)

	ctx := correlationid.NewContext(context.Background(), "corr-42")
	logger.With(slog.String("service", "http")).InfoContext(ctx, "fetched foods", slog.Int("count", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fetched foods", line["msg"])
	assert.Equal(t, "corr-42", line["correlation_id"])
	assert.Equal(t, "http", line["service"])
	assert.EqualValues(t, 3, line["count"])
	assert.NotContains(t, line, "trace_id")
}

func TestNewTextLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(config.Log{Format: config.LogFormatText, Level: slog.LevelWarn}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
