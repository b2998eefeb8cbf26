package pong

import "time"

type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
}

// Center returns the vertical center of the paddle.
func (p Paddle) Center() float64 {
	return p.Y + p.Height/2
}

type Ball struct {
	X      float64
	Y      float64
	Radius float64
	DX     float64
	DY     float64
	Speed  float64
	Color  string
}

// Input is the per tick snapshot handed to Step by the input adapter.
// TargetY is the absolute pointer position the paddle centers on and is only
// honored when HasTarget is set.
type Input struct {
	HasTarget bool
	TargetY   float64
	Up        bool
	Down      bool
}

// TimeProvider stamps completed matches.
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time {
	return time.Now()
}

// SystemTime is the wall clock TimeProvider.
var SystemTime TimeProvider = systemTime{}

type State struct {
	Settings Settings
	Tick     uint64
	Player   Paddle
	AI       Paddle
	Ball     Ball
	Match    Match

	rand Random
}

// NewState lays out both paddles and serves the ball from the center of the
// surface. A nil random or clock falls back to a time seeded source and the
// wall clock.
func NewState(settings Settings, random Random, clock TimeProvider) *State {
	if random == nil {
		random = NewRandom(0)
	}
	if clock == nil {
		clock = SystemTime
	}

	s := &State{
		Settings: settings,
		Player: Paddle{
			X:      settings.PaddleMargin,
			Y:      settings.Height/2 - settings.PaddleHeight/2,
			Width:  settings.PaddleWidth,
			Height: settings.PaddleHeight,
			Color:  PlayerColor,
		},
		AI: Paddle{
			X:      settings.Width - settings.PaddleWidth - settings.PaddleMargin,
			Y:      settings.Height/2 - settings.PaddleHeight/2,
			Width:  settings.PaddleWidth,
			Height: settings.PaddleHeight,
			Color:  AIColor,
		},
		Ball: Ball{
			X:      settings.Width / 2,
			Y:      settings.Height / 2,
			Radius: settings.BallRadius,
			Speed:  settings.BallSpeed,
			Color:  BallColor,
		},
		Match: Match{
			WinningScore: settings.WinningScore,
			Clock:        clock,
		},
		rand: random,
	}

	s.Ball.DX = settings.BallSpeed * randomSign(random)
	s.Ball.DY = InitialServeDY * randomSign(random)

	return s
}

// Reset starts a new match: both scores go back to zero and the ball is
// served again from the center.
func (s *State) Reset() {
	s.Match.Reset()
	s.resetBall()
}

func (s *State) resetBall() {
	s.Ball.X = s.Settings.Width / 2
	s.Ball.Y = s.Settings.Height / 2
	s.Ball.DX = s.Ball.Speed * randomSign(s.rand)
	s.Ball.DY = (s.rand.Float64()*(MaxServeDY-MinServeDY) + MinServeDY) * randomSign(s.rand)
}

// Snapshot is a read only copy of everything the presentation layer draws.
type Snapshot struct {
	Tick        uint64
	Width       float64
	Height      float64
	Player      Paddle
	AI          Paddle
	Ball        Ball
	PlayerScore int
	AIScore     int
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.Tick,
		Width:       s.Settings.Width,
		Height:      s.Settings.Height,
		Player:      s.Player,
		AI:          s.AI,
		Ball:        s.Ball,
		PlayerScore: s.Match.PlayerScore,
		AIScore:     s.Match.AIScore,
	}
}
