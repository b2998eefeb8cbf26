package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"logLevel": -4, "winningScore": 5, "aiDeadZone": 20, "historyDriver": "memory"}`)

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, -4, c.LogLevel)
	assert.Equal(t, 5, c.WinningScore)
	assert.Equal(t, 20.0, c.AIDeadZone)
	assert.Equal(t, "memory", c.HistoryDriver)
	// untouched keys keep their defaults
	assert.Equal(t, 800.0, c.Width)
	assert.Equal(t, 60, c.TickRate)
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "config.toml", "tickRate = 30\nballSpeed = 8.0\nhistoryDriver = \"protolog\"\nhistoryPath = \"matches.pb\"\n")

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 30, c.TickRate)
	assert.Equal(t, 8.0, c.BallSpeed)
	assert.Equal(t, "protolog", c.HistoryDriver)
	assert.Equal(t, "matches.pb", c.HistoryPath)
	assert.Equal(t, time.Second/30, c.TickInterval())
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	path := writeFile(t, "config.json", `{"winningScore": "ten"`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"winningScore": 5, "sound": true}`)
	t.Setenv("PONG_WINNING_SCORE", "3")
	t.Setenv("PONG_SOUND", "false")
	t.Setenv("PONG_HISTORY_PATH", "/tmp/other.db")

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.WinningScore)
	assert.False(t, c.Sound)
	assert.Equal(t, "/tmp/other.db", c.HistoryPath)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("PONG_TICK_RATE", "fast")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSettings(t *testing.T) {
	c := Default()
	c.PaddleHeight = 80
	c.AIStep = 4

	s := c.Settings()
	assert.Equal(t, 80.0, s.PaddleHeight)
	assert.Equal(t, 4.0, s.AIStep)
	assert.Equal(t, 10, s.WinningScore)
	assert.Equal(t, 150*time.Millisecond, c.KeyHold())
}
