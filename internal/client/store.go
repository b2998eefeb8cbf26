package client

import (
	"fmt"
	"log/slog"
	"strings"

	"termpong/internal/config"
	"termpong/internal/history"
	"termpong/internal/history/protolog"
	"termpong/internal/history/sqlite"
)

// OpenStore opens the history backend named by the configuration.
func OpenStore(cfg config.Configuration) (*history.Traced, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.HistoryDriver))

	var (
		store history.Store
		err   error
	)
	switch driver {
	case "", "sqlite":
		driver = "sqlite"
		store, err = sqlite.Open(cfg.HistoryPath)
	case "protolog":
		store, err = protolog.Open(cfg.HistoryPath)
	case "memory":
		store = history.NewMemory()
	default:
		return nil, fmt.Errorf("unknown history driver %q", cfg.HistoryDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s history: %w", driver, err)
	}

	return history.NewTraced(store, driver), nil
}

// OpenStoreOrMemory is OpenStore with an in-memory fallback when the backend
// cannot be opened.
func OpenStoreOrMemory(cfg config.Configuration) *history.Traced {
	store, err := OpenStore(cfg)
	if err != nil {
		slog.Warn("history unavailable, keeping matches in memory", slog.Any("error", err))
		return history.NewTraced(history.NewMemory(), "memory")
	}
	return store
}
