// Package protolog stores match history as an append-only file of
// length-delimited protobuf messages.
package protolog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"

	"termpong/internal/history"
	"termpong/internal/pong"
)

// Store appends one structpb.Struct per finished match to a file.
type Store struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// Open opens or creates the log at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	f, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open history log: %w", err)
	}
	return &Store{path: cleanPath, file: f}, nil
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (s *Store) Append(ctx context.Context, record pong.MatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return history.ErrNotConfigured
	}

	msg, err := encode(record)
	if err != nil {
		return fmt.Errorf("encode match record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return history.ErrNotConfigured
	}
	if _, err := protodelim.MarshalTo(s.file, msg); err != nil {
		return fmt.Errorf("append match record: %w", err)
	}
	return nil
}

// LoadRecent reads the whole log and returns the newest n records. A
// truncated trailing message, left behind by a crash mid-write, is ignored.
func (s *Store) LoadRecent(ctx context.Context, n int) ([]pong.MatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, history.ErrNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []pong.MatchRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	var records []pong.MatchRecord
	r := bufio.NewReader(f)
	for {
		msg := &structpb.Struct{}
		err := protodelim.UnmarshalFrom(r, msg)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read match record: %w", err)
		}
		records = append(records, decode(msg))
	}

	return history.Recent(records, n), nil
}

func encode(record pong.MatchRecord) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":           record.ID,
		"player_score": record.PlayerScore,
		"ai_score":     record.AIScore,
		"winner":       record.Winner,
		"completed_at": record.CompletedAt.UTC().UnixMilli(),
	})
}

func decode(msg *structpb.Struct) pong.MatchRecord {
	fields := msg.GetFields()
	return pong.MatchRecord{
		ID:          fields["id"].GetStringValue(),
		PlayerScore: int(fields["player_score"].GetNumberValue()),
		AIScore:     int(fields["ai_score"].GetNumberValue()),
		Winner:      fields["winner"].GetStringValue(),
		CompletedAt: time.UnixMilli(int64(fields["completed_at"].GetNumberValue())).UTC(),
	}
}
