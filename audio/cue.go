// Package audio plays short synthesized cues when the selection or an LED
// color changes. Audio is optional; every method is a no-op until Init succeeds.
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

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 40 * time.Millisecond
)

// Cue frequencies in Hz
var (
	selectNotes = []float64{880}
	applyNotes  = []float64{660, 990}
)

// Player owns the speaker and a mixer that cues are added to
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Exponent of base 2, 0 = unity gain
	initialized bool
}

// NewPlayer creates an uninitialized player
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker; failure leaves the player silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Selected plays the selection cue
func (p *Player) Selected() {
	p.play(selectNotes)
}

// Applied plays the color-applied cue
func (p *Player) Applied() {
	p.play(applyNotes)
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) play(notes []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := tone(notes, noteLength, p.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// tone chains sine notes of equal length at the given volume
func tone(notes []float64, each time.Duration, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(each), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Silent satisfies the same cue interface without sound
type Silent struct{}

func (Silent) Selected() {}
func (Silent) Applied()  {}
func (Silent) Close()    {}
