package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	shotDuration      = 40 * time.Millisecond
	hitDuration       = 50 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	chainDuration     = 250 * time.Millisecond
	killDuration      = 120 * time.Millisecond
)

// SoundManager plays the arena's one-shot cues through a single mixer.
// Every Play method is a no-op until Initialize succeeds, so the game runs
// silently on machines without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	level       float64
	initialized bool
	seed        int64
}

// NewSoundManager creates a sound manager at full volume.
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: newVolume(mixer, 1),
		level:  1,
		seed:   1,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup drops every queued sound and stops accepting new ones.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume sets the master level in [0,1]; 0 mutes.
func (sm *SoundManager) SetVolume(level float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	level = math.Max(0, math.Min(1, level))
	sm.level = level
	v := newVolume(sm.mixer, level)
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.volume.Volume = v.Volume
	sm.volume.Silent = v.Silent
}

// Volume is the current master level.
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.level
}

// PlayShot plays a short noisy crack.
func (sm *SoundManager) PlayShot() {
	sm.play(func(seed int64) beep.Streamer {
		return beep.Take(sampleRate.N(shotDuration), NewCrackGenerator(sampleRate, seed))
	})
}

// PlayHit plays a short high blip.
func (sm *SoundManager) PlayHit() {
	sm.play(func(int64) beep.Streamer {
		sine, err := generators.SineTone(sampleRate, 880)
		if err != nil {
			return nil
		}
		return beep.Take(sampleRate.N(hitDuration), newVolume(sine, 0.2))
	})
}

// PlayKill plays a falling buzz.
func (sm *SoundManager) PlayKill() {
	sm.play(func(int64) beep.Streamer {
		return beep.Take(sampleRate.N(killDuration), NewSweepGenerator(sampleRate, 320, 90, killDuration))
	})
}

// PlayExplosion plays a long low rumble.
func (sm *SoundManager) PlayExplosion() {
	sm.play(func(seed int64) beep.Streamer {
		return beep.Take(sampleRate.N(explosionDuration), NewRumbleGenerator(sampleRate, 55, 6, seed))
	})
}

// PlayChain plays a shorter, brighter rumble for a sympathetic blast.
func (sm *SoundManager) PlayChain() {
	sm.play(func(seed int64) beep.Streamer {
		return beep.Take(sampleRate.N(chainDuration), NewRumbleGenerator(sampleRate, 90, 10, seed))
	})
}

func (sm *SoundManager) play(build func(seed int64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.level <= 0 {
		return
	}
	sm.seed++
	s := build(sm.seed)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// newVolume wraps s at a linear level. math.Log2(0) is -Inf, so zero maps to
// a silent effect.
func newVolume(s beep.Streamer, level float64) *effects.Volume {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}
