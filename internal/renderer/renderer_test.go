package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termpong/internal/pong"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func snapshot() pong.Snapshot {
	return pong.NewState(pong.DefaultSettings(), pong.NewRandom(1), nil).Snapshot()
}

func TestLayout(t *testing.T) {
	court, panel := Layout(80, 25)
	assert.Equal(t, Rect{X: 0, Y: 1, W: 80, H: 24}, court)
	assert.Equal(t, Rect{}, panel)

	court, panel = Layout(120, 30)
	assert.Equal(t, Rect{X: 0, Y: 1, W: 83, H: 29}, court)
	assert.Equal(t, Rect{X: 84, Y: 1, W: 36, H: 29}, panel)
}

func TestRenderTooSmall(t *testing.T) {
	s := newScreen(t, 30, 10)
	Render(s, snapshot(), nil)
	assert.True(t, strings.HasPrefix(rowText(s, 0), "SCREEN TOO SMALL"))
}

func TestRenderCourt(t *testing.T) {
	s := newScreen(t, 80, 25)
	snap := snapshot()
	snap.PlayerScore = 3
	snap.AIScore = 7

	Render(s, snap, nil)

	assert.True(t, strings.HasPrefix(rowText(s, 0), "Player 1: 3 - Player 2 (AI): 7"))

	// 800x600 onto 80x24 cells: the ball at (400, 300) lands on cell (40, 12)
	r, _, _, _ := s.GetContent(40, 13)
	assert.Equal(t, '●', r)

	// player paddle spans y 250..350, rows 10..13 of the court
	for y := 11; y <= 14; y++ {
		r, _, _, _ := s.GetContent(1, y)
		assert.Equal(t, '█', r, "row %d", y)
	}
	r, _, _, _ = s.GetContent(1, 15)
	assert.NotEqual(t, '█', r)

	// AI paddle at x 775 lands on column 77
	r, _, _, _ = s.GetContent(77, 11)
	assert.Equal(t, '█', r)

	// net on even court rows
	r, _, _, _ = s.GetContent(40, 1)
	assert.Equal(t, '│', r)

	text := screenText(s)
	assert.Contains(t, text, "Player 2 (AI)")
	assert.NotContains(t, text, "Recent matches", "no panel on a narrow screen")
}

func TestRenderEmptyHistory(t *testing.T) {
	s := newScreen(t, 120, 30)
	Render(s, snapshot(), nil)

	text := screenText(s)
	assert.Contains(t, text, "Recent matches")
	assert.Contains(t, text, "No games played yet")
}

func TestRenderHistory(t *testing.T) {
	s := newScreen(t, 120, 30)
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	recent := []pong.MatchRecord{
		{ID: "b", PlayerScore: 10, AIScore: 4, Winner: pong.PlayerLabel, CompletedAt: at},
		{ID: "a", PlayerScore: 2, AIScore: 10, Winner: pong.AILabel, CompletedAt: at.Add(-time.Hour)},
	}

	Render(s, snapshot(), recent)

	assert.True(t, strings.Contains(rowText(s, 3), "Player 1: 10 - Player 2 (AI): 4"))
	assert.True(t, strings.Contains(rowText(s, 4), "Winner: Player 1"))
	assert.True(t, strings.Contains(rowText(s, 5), "2024-05-06 07:08:09"))
	assert.True(t, strings.Contains(rowText(s, 7), "Player 1: 2 - Player 2 (AI): 10"))
	assert.True(t, strings.Contains(rowText(s, 8), "Winner: Player 2 (AI)"))
	assert.NotContains(t, screenText(s), "No games played yet")
}

func TestRenderHistoryClipsToPanel(t *testing.T) {
	s := newScreen(t, 120, 12)
	var recent []pong.MatchRecord
	for i := 0; i < 10; i++ {
		recent = append(recent, pong.MatchRecord{PlayerScore: i, AIScore: 10, Winner: pong.AILabel})
	}

	Render(s, snapshot(), recent)

	text := screenText(s)
	assert.Contains(t, text, "Player 1: 0 - Player 2 (AI): 10")
	assert.Contains(t, text, "Player 1: 1 - Player 2 (AI): 10")
	assert.NotContains(t, text, "Player 1: 2 - Player 2 (AI): 10")
}
