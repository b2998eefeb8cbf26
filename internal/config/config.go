package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"termpong/internal/pong"
)

type Configuration struct {
	LogLevel int    `json:"logLevel" toml:"logLevel" env:"PONG_LOG_LEVEL"`
	LogFile  string `json:"logFile" toml:"logFile" env:"PONG_LOG_FILE"`
	TickRate int    `json:"tickRate" toml:"tickRate" env:"PONG_TICK_RATE"`

	Width        float64 `json:"width" toml:"width" env:"PONG_WIDTH"`
	Height       float64 `json:"height" toml:"height" env:"PONG_HEIGHT"`
	WinningScore int     `json:"winningScore" toml:"winningScore" env:"PONG_WINNING_SCORE"`
	PaddleWidth  float64 `json:"paddleWidth" toml:"paddleWidth" env:"PONG_PADDLE_WIDTH"`
	PaddleHeight float64 `json:"paddleHeight" toml:"paddleHeight" env:"PONG_PADDLE_HEIGHT"`
	PaddleMargin float64 `json:"paddleMargin" toml:"paddleMargin" env:"PONG_PADDLE_MARGIN"`
	PaddleSpeed  float64 `json:"paddleSpeed" toml:"paddleSpeed" env:"PONG_PADDLE_SPEED"`
	BallRadius   float64 `json:"ballRadius" toml:"ballRadius" env:"PONG_BALL_RADIUS"`
	BallSpeed    float64 `json:"ballSpeed" toml:"ballSpeed" env:"PONG_BALL_SPEED"`
	AIDeadZone   float64 `json:"aiDeadZone" toml:"aiDeadZone" env:"PONG_AI_DEAD_ZONE"`
	AIStep       float64 `json:"aiStep" toml:"aiStep" env:"PONG_AI_STEP"`
	Seed         uint64  `json:"seed" toml:"seed" env:"PONG_SEED"`

	KeyHoldMillis int     `json:"keyHoldMillis" toml:"keyHoldMillis" env:"PONG_KEY_HOLD_MILLIS"`
	Sound         bool    `json:"sound" toml:"sound" env:"PONG_SOUND"`
	Volume        float64 `json:"volume" toml:"volume" env:"PONG_VOLUME"`

	HistoryDriver string `json:"historyDriver" toml:"historyDriver" env:"PONG_HISTORY_DRIVER"`
	HistoryPath   string `json:"historyPath" toml:"historyPath" env:"PONG_HISTORY_PATH"`
	HistoryLimit  int    `json:"historyLimit" toml:"historyLimit" env:"PONG_HISTORY_LIMIT"`

	OtelEndpoint string `json:"otelEndpoint" toml:"otelEndpoint" env:"PONG_OTEL_ENDPOINT"`
}

// Default mirrors pong.DefaultSettings and keeps history in a local sqlite
// file next to the binary.
func Default() Configuration {
	s := pong.DefaultSettings()
	return Configuration{
		LogLevel:      int(slog.LevelInfo),
		LogFile:       "pong.log",
		TickRate:      60,
		Width:         s.Width,
		Height:        s.Height,
		WinningScore:  s.WinningScore,
		PaddleWidth:   s.PaddleWidth,
		PaddleHeight:  s.PaddleHeight,
		PaddleMargin:  s.PaddleMargin,
		PaddleSpeed:   s.PaddleSpeed,
		BallRadius:    s.BallRadius,
		BallSpeed:     s.BallSpeed,
		AIDeadZone:    s.AIDeadZone,
		AIStep:        s.AIStep,
		KeyHoldMillis: 150,
		Sound:         true,
		Volume:        0.5,
		HistoryDriver: "sqlite",
		HistoryPath:   "pong-history.db",
		HistoryLimit:  10,
	}
}

// LoadConfig reads the configuration at path (config.json when empty), then
// applies PONG_* environment overrides. A missing or malformed file is not
// fatal; the defaults are used instead. Only a bad environment override is
// reported as an error.
func LoadConfig(path string) (Configuration, error) {
	c := Default()

	if path == "" {
		path = "config.json"
	}

	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
	} else if err := decode(path, cf, &c); err != nil {
		slog.Info("failed to read configuration, using default config instead...", slog.Any("error", err))
		c = Default()
	}

	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}

	return c, nil
}

func decode(path string, data []byte, c *Configuration) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), c)
		return err
	default:
		return json.Unmarshal(data, c)
	}
}

// Settings converts the configuration into simulation settings.
func (c Configuration) Settings() pong.Settings {
	return pong.Settings{
		Width:        c.Width,
		Height:       c.Height,
		PaddleWidth:  c.PaddleWidth,
		PaddleHeight: c.PaddleHeight,
		PaddleMargin: c.PaddleMargin,
		PaddleSpeed:  c.PaddleSpeed,
		BallRadius:   c.BallRadius,
		BallSpeed:    c.BallSpeed,
		AIDeadZone:   c.AIDeadZone,
		AIStep:       c.AIStep,
		WinningScore: c.WinningScore,
	}
}

func (c Configuration) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

func (c Configuration) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMillis) * time.Millisecond
}
