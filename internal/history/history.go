// Package history persists finished matches.
//
// Every backend keeps records in completion order and serves them back newest
// first. A store with nothing written yet reads as an empty history.
package history

import (
	"context"
	"errors"
	"sync"

	"termpong/internal/pong"
)

// ErrNotConfigured is returned by methods on a nil or closed store.
var ErrNotConfigured = errors.New("history store is not configured")

type Store interface {
	Append(ctx context.Context, record pong.MatchRecord) error
	// LoadRecent returns up to n records, most recent first. n <= 0 means all.
	LoadRecent(ctx context.Context, n int) ([]pong.MatchRecord, error)
	Close() error
}

// Memory keeps records for the lifetime of the process.
type Memory struct {
	mu      sync.Mutex
	records []pong.MatchRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(ctx context.Context, record pong.MatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m == nil {
		return ErrNotConfigured
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *Memory) LoadRecent(ctx context.Context, n int) ([]pong.MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotConfigured
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Recent(m.records, n), nil
}

func (m *Memory) Close() error {
	return nil
}

// Recent takes records stored oldest first and returns the newest n of them,
// newest first, in a new slice.
func Recent(records []pong.MatchRecord, n int) []pong.MatchRecord {
	if n <= 0 || n > len(records) {
		n = len(records)
	}
	out := make([]pong.MatchRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out
}
