package pong

// StepOpponent chases the ball with a fixed step once the paddle center
// drifts more than deadZone away from it. There is no prediction; the paddle
// only reacts to where the ball is now.
func StepOpponent(ai *Paddle, ball Ball, deadZone, step, surfaceHeight float64) {
	center := ai.Center()
	if center < ball.Y-deadZone {
		ai.Y += step
	} else if center > ball.Y+deadZone {
		ai.Y -= step
	}

	clampPaddle(ai, surfaceHeight)
}
