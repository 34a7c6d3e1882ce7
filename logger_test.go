package bitarray

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LogBuild(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, err := New(5000, WithLogger(logger))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "bit array constructed", rec["msg"])
	assert.Equal(t, float64(5000), rec["size"])
	assert.Equal(t, float64(b.Depth()), rec["depth"])
	assert.Equal(t, float64(2), rec["fan_out"])
	assert.Equal(t, b.Stats().FFS, rec["ffs"])
	assert.Equal(t, b.Stats().FFSCPU, rec["ffs_cpu"])
}

func TestLogger_LogBuildError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	_, err := New(0, WithLogger(logger))
	require.Error(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, float64(0), rec["size"])
	assert.Contains(t, rec["error"], "invalid size")
}

func TestLogger_WithSize(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithSize(42)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "size=42")
}

func TestNoopLogger(t *testing.T) {
	_, err := New(64, WithLogger(NoopLogger()), WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewLogger(nil))
}
