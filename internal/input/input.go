// Package input folds terminal key and mouse events into the per-tick
// paddle input consumed by the simulation.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"termpong/internal/pong"
)

// Command is a non-paddle request the game loop acts on.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandReset
)

// Adapter tracks the held direction and pending pointer target between ticks.
//
// Terminals report key presses and auto-repeats but never key releases, so a
// direction stays held until hold elapses without a repeat or the opposite
// direction is pressed.
type Adapter struct {
	surfaceHeight float64
	courtTop      int
	courtRows     int
	hold          time.Duration

	targetPending bool
	targetY       float64
	upUntil       time.Time
	downUntil     time.Time
}

func NewAdapter(surfaceHeight float64, hold time.Duration) *Adapter {
	return &Adapter{
		surfaceHeight: surfaceHeight,
		hold:          hold,
	}
}

// SetCourt tells the adapter which screen rows show the playing surface.
func (a *Adapter) SetCourt(top, rows int) {
	a.courtTop = top
	a.courtRows = rows
}

// Handle folds one event received at now.
func (a *Adapter) Handle(ev tcell.Event, now time.Time) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	case *tcell.EventMouse:
		_, y := ev.Position()
		a.point(y)
	}
	return CommandNone
}

func (a *Adapter) handleKey(ev *tcell.EventKey, now time.Time) Command {
	switch KeyAction(ev) {
	case Quit:
		return CommandQuit
	case Reset:
		return CommandReset
	case Up, UpArrow:
		a.upUntil = now.Add(a.hold)
		a.downUntil = time.Time{}
	case Down, DownArrow:
		a.downUntil = now.Add(a.hold)
		a.upUntil = time.Time{}
	}
	return CommandNone
}

func (a *Adapter) point(row int) {
	if a.courtRows <= 0 {
		return
	}
	cell := row - a.courtTop
	if cell < 0 || cell >= a.courtRows {
		return
	}
	a.targetY = (float64(cell) + 0.5) * a.surfaceHeight / float64(a.courtRows)
	a.targetPending = true
}

// Snapshot returns the input for the tick starting at now. A pointer target
// is reported once per mouse event.
func (a *Adapter) Snapshot(now time.Time) pong.Input {
	in := pong.Input{
		HasTarget: a.targetPending,
		TargetY:   a.targetY,
		Up:        now.Before(a.upUntil),
		Down:      now.Before(a.downUntil),
	}
	a.targetPending = false
	return in
}

// Release drops any held direction.
func (a *Adapter) Release() {
	a.upUntil = time.Time{}
	a.downUntil = time.Time{}
}
