package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabring/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"loud", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, logging.ValidLevel("debug"))
	assert.True(t, logging.ValidLevel("Warning"))
	assert.False(t, logging.ValidLevel("loud"))
	assert.False(t, logging.ValidLevel(""))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.InfoLevel

	logger := logging.NewWithWriter(cfg, &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Str("tab_id", "T1").Msg("tab opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "T1", entry["tab_id"])
	assert.Equal(t, "tab opened", entry["message"])
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel

	ctx := logging.WithContext(context.Background(), logging.NewWithWriter(cfg, &buf))
	ctx = logging.WithComponent(ctx, "registry")
	ctx = logging.WithTabID(ctx, "T2")
	ctx = logging.WithGroup(ctx, "work")
	ctx = logging.WithSnapshotID(ctx, "abcd")

	logging.FromContext(ctx).Debug().Msg("switched")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "registry", entry["component"])
	assert.Equal(t, "T2", entry["tab_id"])
	assert.Equal(t, "work", entry["group"])
	assert.Equal(t, "abcd", entry["snapshot_id"])
}

func TestFromContext_NoLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestNewFromConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tabring.log")
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.File = path

	logger, closer, err := logging.NewFromConfig(cfg)
	require.NoError(t, err)
	logger.Warn().Msg("written to file")
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}
