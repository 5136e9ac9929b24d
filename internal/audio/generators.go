package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// noise is a small LCG so cues are reproducible for a given seed.
func noise(seed *int64) float64 {
	*seed = (*seed*1103515245 + 12345) & 0x7fffffff
	return float64(*seed)/float64(0x7fffffff)*2 - 1
}

// CrackGenerator is a gunshot: white noise with a very fast decay over a
// short sine click.
type CrackGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrackGenerator creates a crack generator.
func NewCrackGenerator(sr beep.SampleRate, seed int64) *CrackGenerator {
	return &CrackGenerator{sr: sr, seed: seed}
}

func (g *CrackGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 90)
		click := 0.3 * math.Sin(2*math.Pi*1800*t)
		sample := envelope * (0.35*noise(&g.seed) + click)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackGenerator) Err() error {
	return nil
}

// RumbleGenerator is a blast: a low tone under filtered noise, decaying at
// the given rate.
type RumbleGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
	seed  int64
	prev  float64
}

// NewRumbleGenerator creates a rumble at base frequency freq (Hz) with an
// exponential decay rate (1/s).
func NewRumbleGenerator(sr beep.SampleRate, freq, decay float64, seed int64) *RumbleGenerator {
	return &RumbleGenerator{sr: sr, freq: freq, decay: decay, seed: seed}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		// One-pole low-pass keeps the noise dull.
		g.prev += 0.08 * (noise(&g.seed) - g.prev)
		tone := 0.35 * math.Sin(2*math.Pi*g.freq*t)
		sample := envelope * (0.5*g.prev + tone)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}

// SweepGenerator slides a soft square wave from one frequency to another over
// its duration, then holds the end frequency.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from `from` Hz to `to` Hz over d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: max(1, sr.N(d))}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := math.Min(1, float64(g.pos)/float64(g.length))
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(g.phase)
		sample += 0.1 * math.Sin(3*g.phase)
		sample *= 0.6 * (1 - 0.8*p)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
