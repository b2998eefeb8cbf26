// Package audio plays short synthesized blips for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"termpong/internal/pong"
)

const sampleRate = beep.SampleRate(44100)

type Sound int

const (
	SoundPaddle Sound = iota
	SoundWall
	SoundScore
	SoundMatch
)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[Sound]tone{
	SoundPaddle: {880, 50 * time.Millisecond},
	SoundWall:   {440, 30 * time.Millisecond},
	SoundScore:  {220, 150 * time.Millisecond},
	SoundMatch:  {660, 400 * time.Millisecond},
}

// Player is what the game loop talks to.
type Player interface {
	Play(s Sound)
	Close()
}

// Silent is used when sound is disabled or the speaker failed to open.
type Silent struct{}

func (Silent) Play(Sound) {}
func (Silent) Close()     {}

type Beeper struct {
	mu     sync.Mutex
	volume float64
	open   bool
}

// NewBeeper opens the speaker. volume is linear in [0, 1].
func NewBeeper(volume float64) (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Beeper{volume: volume, open: true}, nil
}

func (b *Beeper) Play(s Sound) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return
	}

	streamer, err := newStreamer(s, b.volume)
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return
	}
	speaker.Close()
	b.open = false
}

func newStreamer(s Sound, volume float64) (beep.Streamer, error) {
	t, ok := tones[s]
	if !ok {
		t = tones[SoundPaddle]
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Take(sampleRate.N(t.duration), sine), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as silence instead.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ForEvents lists the sounds a tick's events call for, loudest cue last.
func ForEvents(ev pong.Events) []Sound {
	var sounds []Sound
	if ev.WallBounce {
		sounds = append(sounds, SoundWall)
	}
	if ev.PlayerHit || ev.AIHit {
		sounds = append(sounds, SoundPaddle)
	}
	if ev.Scorer != pong.NoSide {
		sounds = append(sounds, SoundScore)
	}
	if ev.Completed != nil {
		sounds = append(sounds, SoundMatch)
	}
	return sounds
}
