package pong

// Events reports what a single Step did so callers can play sounds and store
// results without the simulation doing any I/O itself.
type Events struct {
	WallBounce bool
	PlayerHit  bool
	AIHit      bool
	Scorer     Side
	Completed  *MatchRecord
}

// Step advances the simulation by one tick.
func Step(s *State, in Input) Events {
	var ev Events
	s.Tick++

	// Move ball
	s.Ball.X += s.Ball.DX
	s.Ball.Y += s.Ball.DY

	// Top and bottom walls reflect dy without losing speed
	if s.Ball.Y-s.Ball.Radius < 0 {
		s.Ball.Y = s.Ball.Radius
		s.Ball.DY = -s.Ball.DY
		ev.WallBounce = true
	}
	if s.Ball.Y+s.Ball.Radius > s.Settings.Height {
		s.Ball.Y = s.Settings.Height - s.Ball.Radius
		s.Ball.DY = -s.Ball.DY
		ev.WallBounce = true
	}

	// Paddles, player first. Only one can realistically overlap per tick but
	// a very fast ball may pass through both without being seen.
	if Overlaps(s.Ball, s.Player) {
		s.Ball.X = s.Player.X + s.Player.Width + s.Ball.Radius
		deflect(&s.Ball, s.Player)
		ev.PlayerHit = true
	}
	if Overlaps(s.Ball, s.AI) {
		s.Ball.X = s.AI.X - s.Ball.Radius
		deflect(&s.Ball, s.AI)
		ev.AIHit = true
	}

	// Scoring
	if s.Ball.X-s.Ball.Radius < 0 {
		ev.Scorer = AISide
	} else if s.Ball.X+s.Ball.Radius > s.Settings.Width {
		ev.Scorer = PlayerSide
	}
	if ev.Scorer != NoSide {
		if record, done := s.Match.OnScore(ev.Scorer); done {
			ev.Completed = &record
		}
		s.resetBall()
	}

	movePlayer(&s.Player, in, s.Settings.PaddleSpeed, s.Settings.Height)

	StepOpponent(&s.AI, s.Ball, s.Settings.AIDeadZone, s.Settings.AIStep, s.Settings.Height)

	return ev
}

// deflect sends the ball back and bends it by how far off center it struck.
func deflect(b *Ball, p Paddle) {
	b.DX = -b.DX
	b.DY = b.Speed * CollidePoint(*b, p)
}

func movePlayer(p *Paddle, in Input, speed, surfaceHeight float64) {
	if in.HasTarget {
		p.Y = in.TargetY - p.Height/2
	}
	if in.Up {
		p.Y -= speed
	}
	if in.Down {
		p.Y += speed
	}

	clampPaddle(p, surfaceHeight)
}
