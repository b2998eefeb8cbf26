package pong

import "testing"

func TestOverlaps(t *testing.T) {
	paddle := Paddle{X: 10, Y: 250, Width: 15, Height: 100}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 20, 300, true},
		{"overlapping face", 34, 300, true},
		{"touching right face", 35, 300, false},
		{"touching left face", 0, 300, false},
		{"touching top", 20, 240, false},
		{"touching bottom", 20, 360, false},
		{"clipping top corner", 34, 241, true},
		{"far away", 400, 300, false},
		{"level but beyond face", 60, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{X: tt.x, Y: tt.y, Radius: 10}
			if got := Overlaps(ball, paddle); got != tt.want {
				t.Errorf("Expected Overlaps(%v,%v) = %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestCollidePoint(t *testing.T) {
	paddle := Paddle{X: 10, Y: 250, Width: 15, Height: 100}

	tests := []struct {
		y    float64
		want float64
	}{
		{300, 0},
		{250, -1},
		{350, 1},
		{275, -0.5},
		{340, 0.8},
	}

	for _, tt := range tests {
		got := CollidePoint(Ball{X: 30, Y: tt.y, Radius: 10}, paddle)
		if got != tt.want {
			t.Errorf("Expected collide point %v at y=%v, got %v", tt.want, tt.y, got)
		}
		if tt.y >= paddle.Y && tt.y <= paddle.Y+paddle.Height && (got < -1 || got > 1) {
			t.Errorf("collide point %v outside [-1,1] for a hit within the paddle span", got)
		}
	}
}
