package pong

// Overlaps reports whether the ball's bounding box intersects the paddle.
// Touching edges do not count, so a ball pushed flush against a paddle face
// is not hit again on the next tick.
func Overlaps(ball Ball, paddle Paddle) bool {
	return ball.X-ball.Radius < paddle.X+paddle.Width &&
		ball.X+ball.Radius > paddle.X &&
		ball.Y+ball.Radius > paddle.Y &&
		ball.Y-ball.Radius < paddle.Y+paddle.Height
}

// CollidePoint maps where the ball met the paddle to [-1, 1], 0 being the
// paddle center. Hits on the corners land slightly outside that range.
func CollidePoint(ball Ball, paddle Paddle) float64 {
	return (ball.Y - paddle.Center()) / (paddle.Height / 2)
}

func clampPaddle(p *Paddle, surfaceHeight float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.Height > surfaceHeight {
		p.Y = surfaceHeight - p.Height
	}
}
