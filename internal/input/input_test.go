package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestProcessInput(t *testing.T) {
	tests := []struct {
		in   rune
		want UiAction
	}{
		{'q', Quit},
		{'Q', Quit},
		{'r', Reset},
		{'w', Up},
		{'S', Down},
		{'x', Unknown},
		{'1', Unknown},
		{'↑', Unknown},
		{'↓', Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProcessInput(tt.in), "rune %q", tt.in)
	}
}

func TestKeyAction(t *testing.T) {
	assert.Equal(t, UpArrow, KeyAction(key(tcell.KeyUp)))
	assert.Equal(t, DownArrow, KeyAction(key(tcell.KeyDown)))
	assert.Equal(t, Quit, KeyAction(key(tcell.KeyEscape)))
	assert.Equal(t, Up, KeyAction(runeKey('w')))
	assert.Equal(t, Unknown, KeyAction(key(tcell.KeyTab)))
}

func TestCommands(t *testing.T) {
	a := NewAdapter(600, 150*time.Millisecond)

	assert.Equal(t, CommandQuit, a.Handle(runeKey('q'), t0))
	assert.Equal(t, CommandReset, a.Handle(runeKey('R'), t0))
	assert.Equal(t, CommandNone, a.Handle(runeKey('w'), t0))
	assert.Equal(t, CommandNone, a.Handle(tcell.NewEventResize(80, 24), t0))
}

func TestKeyHold(t *testing.T) {
	hold := 150 * time.Millisecond
	a := NewAdapter(600, hold)

	a.Handle(key(tcell.KeyUp), t0)
	in := a.Snapshot(t0.Add(100 * time.Millisecond))
	assert.True(t, in.Up)
	assert.False(t, in.Down)

	// a repeat extends the hold
	a.Handle(key(tcell.KeyUp), t0.Add(100*time.Millisecond))
	assert.True(t, a.Snapshot(t0.Add(200*time.Millisecond)).Up)

	assert.False(t, a.Snapshot(t0.Add(250*time.Millisecond)).Up)
}

func TestOppositeKeyCancelsHold(t *testing.T) {
	a := NewAdapter(600, time.Second)

	a.Handle(runeKey('w'), t0)
	a.Handle(runeKey('s'), t0.Add(10*time.Millisecond))

	in := a.Snapshot(t0.Add(20 * time.Millisecond))
	assert.False(t, in.Up)
	assert.True(t, in.Down)

	a.Release()
	in = a.Snapshot(t0.Add(30 * time.Millisecond))
	assert.False(t, in.Up)
	assert.False(t, in.Down)
}

func TestPointerTarget(t *testing.T) {
	a := NewAdapter(600, time.Second)
	a.SetCourt(1, 30)

	// row 16 is court cell 15, whose center is 15.5 * 20
	a.Handle(tcell.NewEventMouse(10, 16, tcell.ButtonNone, tcell.ModNone), t0)

	in := a.Snapshot(t0)
	assert.True(t, in.HasTarget)
	assert.InDelta(t, 310.0, in.TargetY, 1e-9)

	assert.False(t, a.Snapshot(t0).HasTarget, "target is reported once")
}

func TestPointerOutsideCourtIgnored(t *testing.T) {
	a := NewAdapter(600, time.Second)
	a.SetCourt(1, 30)

	a.Handle(tcell.NewEventMouse(10, 0, tcell.ButtonNone, tcell.ModNone), t0)
	a.Handle(tcell.NewEventMouse(10, 31, tcell.ButtonNone, tcell.ModNone), t0)
	assert.False(t, a.Snapshot(t0).HasTarget)

	unsized := NewAdapter(600, time.Second)
	unsized.Handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone), t0)
	assert.False(t, unsized.Snapshot(t0).HasTarget)
}
