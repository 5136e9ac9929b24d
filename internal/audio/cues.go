package audio

import "github.com/Garsondee/Root-Wars/internal/sim"

// Cue is one sound a tick asked for.
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueKill
	CueExplosion
	CueChain
)

// Cues maps one tick's events to sounds, at most one of each kind so a
// ten-shot burst is a single crack.
func Cues(events []sim.Event) []Cue {
	var seen [CueChain + 1]bool
	var out []Cue
	add := func(c Cue) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventBurst:
			add(CueShot)
		case sim.EventHit:
			add(CueHit)
		case sim.EventKill:
			add(CueKill)
		case sim.EventDetonate:
			add(CueExplosion)
		case sim.EventChain:
			add(CueChain)
		}
	}
	return out
}

// PlayEvents plays the cues for one tick's events.
func (sm *SoundManager) PlayEvents(events []sim.Event) {
	for _, c := range Cues(events) {
		switch c {
		case CueShot:
			sm.PlayShot()
		case CueHit:
			sm.PlayHit()
		case CueKill:
			sm.PlayKill()
		case CueExplosion:
			sm.PlayExplosion()
		case CueChain:
			sm.PlayChain()
		}
	}
}
