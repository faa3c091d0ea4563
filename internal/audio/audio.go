// Package audio plays the eat and game over cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note is one tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
}

var (
	eatCue      = []Note{{Freq: 880, Duration: 50 * time.Millisecond}}
	gameOverCue = []Note{
		{Freq: 440, Duration: 120 * time.Millisecond},
		{Freq: 330, Duration: 120 * time.Millisecond},
		{Freq: 220, Duration: 300 * time.Millisecond},
	}
)

// Player implements game.Sounds. Until Init succeeds every cue is silent,
// so a machine without audio still plays the game.
type Player struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
}

// NewPlayer creates a player with volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Eat plays a short high blip.
func (p *Player) Eat() {
	p.play(eatCue)
}

// GameOver plays a falling three-note phrase.
func (p *Player) GameOver() {
	p.play(gameOverCue)
}

func (p *Player) play(notes []Note) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Cue(sampleRate, notes, p.volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Cue builds a streamer that plays notes back to back at the given volume.
func Cue(sr beep.SampleRate, notes []Note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.Duration), sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: volume - 1}, nil
}
