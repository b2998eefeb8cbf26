// Package client runs the local game: it owns the simulation state and feeds
// it terminal input, the history store, audio and the renderer.
package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"termpong/internal/audio"
	"termpong/internal/config"
	"termpong/internal/history"
	"termpong/internal/input"
	"termpong/internal/pong"
	"termpong/internal/renderer"
)

const (
	tracerName   = "termpong/internal/client"
	storeTimeout = 2 * time.Second
)

type Game struct {
	screen tcell.Screen
	cfg    config.Configuration
	state  *pong.State
	input  *input.Adapter
	store  history.Store
	audio  audio.Player
	recent []pong.MatchRecord

	tracer    trace.Tracer
	matchSpan trace.Span
}

// NewGame builds a game on an initialised screen. A nil store keeps history in
// memory and a nil player plays nothing.
func NewGame(screen tcell.Screen, cfg config.Configuration, store history.Store, player audio.Player) *Game {
	if store == nil {
		store = history.NewMemory()
	}
	if player == nil {
		player = audio.Silent{}
	}

	g := &Game{
		screen: screen,
		cfg:    cfg,
		state:  pong.NewState(cfg.Settings(), pong.NewRandom(cfg.Seed), pong.SystemTime),
		input:  input.NewAdapter(cfg.Height, cfg.KeyHold()),
		store:  store,
		audio:  player,
		tracer: otel.Tracer(tracerName),
	}
	g.layout()
	return g
}

// Run drives the game until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.loadHistory(ctx)
	g.startMatch(ctx)
	defer func() { g.endMatch("quit", nil) }()

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	slog.Info("game started", slog.Int("tickRate", g.cfg.TickRate), slog.Int("winningScore", g.cfg.WinningScore))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !g.handleEvent(ctx, ev, time.Now()) {
				slog.Info("player quit")
				return nil
			}
		case now := <-ticker.C:
			g.tick(ctx, now)
		}
	}
}

// handleEvent reports false once the player asked to quit.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event, now time.Time) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.layout()
		g.screen.Sync()
		return true
	}

	switch g.input.Handle(ev, now) {
	case input.CommandQuit:
		return false
	case input.CommandReset:
		slog.Info("match reset",
			slog.Int("playerScore", g.state.Match.PlayerScore),
			slog.Int("aiScore", g.state.Match.AIScore))
		g.endMatch("reset", nil)
		g.state.Reset()
		g.input.Release()
		g.startMatch(ctx)
	}
	return true
}

func (g *Game) tick(ctx context.Context, now time.Time) {
	ev := pong.Step(g.state, g.input.Snapshot(now))

	if ev.Scorer != pong.NoSide {
		slog.Debug("point scored",
			slog.String("scorer", ev.Scorer.String()),
			slog.Int("playerScore", g.state.Match.PlayerScore),
			slog.Int("aiScore", g.state.Match.AIScore))
	}
	if ev.Completed != nil {
		g.finishMatch(ctx, *ev.Completed)
	}

	for _, s := range audio.ForEvents(ev) {
		g.audio.Play(s)
	}

	renderer.Render(g.screen, g.state.Snapshot(), g.recent)
}

func (g *Game) finishMatch(ctx context.Context, record pong.MatchRecord) {
	slog.Info("match complete",
		slog.String("id", record.ID),
		slog.String("winner", record.Winner),
		slog.Int("playerScore", record.PlayerScore),
		slog.Int("aiScore", record.AIScore))
	g.endMatch("complete", &record)

	wctx, cancel := context.WithTimeout(ctx, storeTimeout)
	err := g.store.Append(wctx, record)
	cancel()
	if err != nil {
		slog.Warn("failed to save match, keeping it in memory only", slog.String("id", record.ID), slog.Any("error", err))
		g.recent = history.Recent(append(reverse(g.recent), record), g.historyLimit())
	} else {
		g.loadHistory(ctx)
	}

	g.startMatch(ctx)
}

func (g *Game) loadHistory(ctx context.Context) {
	rctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	recent, err := g.store.LoadRecent(rctx, g.historyLimit())
	if err != nil {
		slog.Warn("failed to load match history", slog.Any("error", err))
		return
	}
	g.recent = recent
}

func (g *Game) historyLimit() int {
	if g.cfg.HistoryLimit <= 0 {
		return 10
	}
	return g.cfg.HistoryLimit
}

func (g *Game) layout() {
	w, h := g.screen.Size()
	court, _ := renderer.Layout(w, h)
	g.input.SetCourt(court.Y, court.H)
}

func (g *Game) startMatch(ctx context.Context) {
	_, g.matchSpan = g.tracer.Start(ctx, "match",
		trace.WithAttributes(attribute.Int("match.winning_score", g.cfg.WinningScore)))
}

func (g *Game) endMatch(outcome string, record *pong.MatchRecord) {
	if g.matchSpan == nil {
		return
	}
	g.matchSpan.SetAttributes(
		attribute.String("match.outcome", outcome),
		attribute.Int64("match.ticks", int64(g.state.Tick)),
	)
	if record != nil {
		g.matchSpan.SetAttributes(
			attribute.String("match.id", record.ID),
			attribute.String("match.winner", record.Winner),
			attribute.Int("match.player_score", record.PlayerScore),
			attribute.Int("match.ai_score", record.AIScore),
		)
		g.matchSpan.SetStatus(codes.Ok, "")
	}
	g.matchSpan.End()
	g.matchSpan = nil
}

// reverse returns a newest-last copy of a newest-first slice.
func reverse(records []pong.MatchRecord) []pong.MatchRecord {
	out := make([]pong.MatchRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}
