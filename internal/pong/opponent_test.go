package pong

import "testing"

func TestStepOpponent(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		ballY float64
		wantY float64
	}{
		{"ball well above center moves up", 150, 100, 145},
		{"ball well below center moves down", 50, 200, 55},
		{"inside dead zone holds", 150, 230, 150},
		{"dead zone edge holds", 150, 235, 150},
		{"just past dead zone moves", 150, 236, 155},
		{"clamped at top", 0, 0, 0},
		{"clamped at bottom", 500, 600, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := Paddle{X: 775, Y: tt.y, Width: 15, Height: 100}
			StepOpponent(&ai, Ball{X: 400, Y: tt.ballY, Radius: 10}, 35, 5, 600)
			if ai.Y != tt.wantY {
				t.Errorf("Expected ai y %v, got %v", tt.wantY, ai.Y)
			}
		})
	}
}

func TestOpponentRunsEveryStep(t *testing.T) {
	s := newTestState()
	s.AI.Y = 150 // center at 200
	s.Ball.X, s.Ball.Y = 400, 100
	s.Ball.DX, s.Ball.DY = 0, 0

	Step(s, Input{})

	if s.AI.Center() != 195 {
		t.Fatalf("ai center = %v, want 195", s.AI.Center())
	}
}
