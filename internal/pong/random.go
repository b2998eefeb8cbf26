package pong

import (
	"time"

	"golang.org/x/exp/rand"
)

// Random is the only source of nondeterminism in the simulation. It is
// consulted when the ball is served.
type Random interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewRandom returns a PCG backed source. A zero seed picks one from the clock.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func randomSign(r Random) float64 {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}
