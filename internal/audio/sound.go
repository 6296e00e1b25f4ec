// Package audio plays the short sound effects of the game through the
// system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	pickupDuration = 120 * time.Millisecond
)

// Pickup chime notes: a rising fifth
var pickupNotes = [2]float64{880, 1318.5}

// SoundManager owns the speaker and mixes effects into it.
// The zero value is not usable; create one with NewSoundManager.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Base-2 gain exponent, 0 = unity
	initialized bool
}

// NewSoundManager creates a sound manager. volume is in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volumeSteps(volume),
	}
}

// volumeSteps converts a linear [0, 1] level into the base-2 exponent
// effects.Volume expects.
func volumeSteps(v float64) float64 {
	if v <= 0 {
		return -10
	}
	if v >= 1 {
		return 0
	}
	return math.Log2(v)
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayPickup plays the fish pickup chime. Does nothing before Initialize.
func (sm *SoundManager) PlayPickup() {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()

	if !initialized {
		return
	}

	// The mixer is read on the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(sm.pickupStreamer())
	speaker.Unlock()
}

// pickupStreamer builds one chime at the configured volume.
func (sm *SoundManager) pickupStreamer() beep.Streamer {
	half := sampleRate.N(pickupDuration / 2)
	chime := beep.Seq(
		beep.Take(half, NewChimeGenerator(sampleRate, pickupNotes[0])),
		beep.Take(half, NewChimeGenerator(sampleRate, pickupNotes[1])),
	)
	return &effects.Volume{
		Streamer: chime,
		Base:     2,
		Volume:   sm.volume,
		Silent:   sm.volume <= -10,
	}
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// ChimeGenerator is a sine tone with a fast attack and exponential decay.
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at the given frequency in Hz.
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack, then decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*18)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
