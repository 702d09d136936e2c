package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFrom(t *testing.T) {
	env := map[string]string{
		EnvLevel: "DEBUG",
		EnvJSON:  "true",
	}
	cfg := configFrom(func(k string) string { return env[k] })

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.JSON)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)

	cfg = configFrom(func(k string) string {
		if k == EnvQuiet {
			return "true"
		}
		return ""
	})
	assert.False(t, cfg.Enabled)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Enabled: true, JSON: true, Level: zerolog.InfoLevel})

	log.Debug("Export", "hidden", nil)
	log.Info("Export", "journal saved", map[string]interface{}{"bytes": 24})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Export", entry["component"])
	assert.Equal(t, "journal saved", entry["message"])
	assert.EqualValues(t, 24, entry["bytes"])
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Enabled: true, JSON: true, Level: zerolog.InfoLevel})

	log.Error("Handlers", errors.New("permission denied"), map[string]interface{}{"path": "/tmp/x.txt"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "permission denied", entry["error"])
	assert.Equal(t, "/tmp/x.txt", entry["path"])
}

func TestDisabledLoggerIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Config{Enabled: false})

	_, ok := log.(NoOp)
	assert.True(t, ok)
	log.Info("Application", "starting", nil)
	assert.Zero(t, buf.Len())
}
