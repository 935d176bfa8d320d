package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/SHEBN-DEV/Demoshebn/internal/config"
	"github.com/SHEBN-DEV/Demoshebn/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level, format string) config.Config {
	return config.Config{
		Service: &config.ServiceConfig{Name: "demoshebn-test", Env: "test", Add: ":0"},
		Logger:  &config.LoggerConfig{Level: level, Format: format},
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(testConfig("debug", "json"), &buf)
	log.Debug("hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "demoshebn-test", entry["service"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(testConfig("error", "TEXT"), &buf)
	log.Info("dropped")
	assert.Empty(t, buf.String())
	log.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := context.WithValue(context.Background(), middleware.LoggerKey, custom)
	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWithContextRoundTrip(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, FromContext(WithContext(context.Background(), custom)))
}
