package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	logger := WithComponent("player")
	logger.Debug().Str("mode", "pipe").Msg("starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "player", entry["component"])
	assert.Equal(t, "pipe", entry["mode"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "starting", entry["message"])
}

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf, JSON: true})
	t.Cleanup(func() { Configure(Config{}) })

	L().Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	L().Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigureConsole(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "bogus", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	L().Debug().Msg("hidden")
	L().Info().Msg("player exited")
	assert.Contains(t, buf.String(), "player exited")
	assert.NotContains(t, buf.String(), "hidden")
	assert.NotContains(t, buf.String(), "\x1b[")
}
