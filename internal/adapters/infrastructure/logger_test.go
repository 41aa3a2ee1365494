package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breezy.app/internal/ports"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := NewSlogLoggerAdapter(slog.New(handler)).With(ports.F("component", "dashboard"))

	logger.Debug("hidden")
	logger.Warn("City refresh failed", ports.F("city", "London"), ports.F("attempt", 2))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "City refresh failed", entry["msg"])
	assert.Equal(t, "dashboard", entry["component"])
	assert.Equal(t, "London", entry["city"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestNewSlogLoggerAdapter_DefaultsToSlogDefault(t *testing.T) {
	assert.NotNil(t, NewSlogLoggerAdapter(nil).logger)
}
