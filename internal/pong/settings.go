package pong

const (
	PlayerColor = "#3399ff"
	AIColor     = "#ff3333"
	BallColor   = "#ffffff"
)

// Serve velocities. The opening serve always leaves at InitialServeDY, later
// serves draw the vertical speed from [MinServeDY, MaxServeDY).
const (
	InitialServeDY = 4.0
	MinServeDY     = 2.0
	MaxServeDY     = 6.0
)

const (
	PlayerLabel = "Player 1"
	AILabel     = "Player 2 (AI)"
)

// Settings holds the surface geometry and tuning for one simulation.
type Settings struct {
	Width        float64
	Height       float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64
	PaddleSpeed  float64
	BallRadius   float64
	BallSpeed    float64
	AIDeadZone   float64
	AIStep       float64
	WinningScore int
}

func DefaultSettings() Settings {
	return Settings{
		Width:        800,
		Height:       600,
		PaddleWidth:  15,
		PaddleHeight: 100,
		PaddleMargin: 10,
		PaddleSpeed:  7,
		BallRadius:   10,
		BallSpeed:    5,
		AIDeadZone:   35,
		AIStep:       5,
		WinningScore: 10,
	}
}
