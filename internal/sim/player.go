package sim

import (
	"github.com/Garsondee/Root-Wars/internal/geom"
)

// Keys is the set of held movement keys.
type Keys uint8

const (
	KeyForward Keys = 1 << iota
	KeyBack
	KeyLeft
	KeyRight
)

// Has reports whether every key in k2 is held.
func (k Keys) Has(k2 Keys) bool { return k&k2 == k2 }

// Buttons is the set of held mouse buttons.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Has reports whether every button in b2 is held.
func (b Buttons) Has(b2 Buttons) bool { return b&b2 == b2 }

// Input is one frame's input snapshot. Mouse is in screen coordinates.
type Input struct {
	Keys    Keys
	Mouse   geom.Point
	Buttons Buttons
}

// Player is the user-controlled agent. It stays at a fixed screen anchor:
// moving shifts every other body the opposite way.
type Player struct {
	Agent
	Vision Vision // aim cone display only
	Speed  float64

	FireCooldown int // ticks until the next burst is allowed
}

func newPlayer(id int, pos geom.Point, spec PlayerSpec) *Player {
	return &Player{
		Agent: Agent{
			ID:        id,
			Pos:       pos,
			TargetPos: pos,
			Radius:    spec.Radius,
			Color:     spec.Color,
		},
		Vision: Vision{Angle: spec.VisionAngle, Range: spec.DetectRange},
		Speed:  spec.Speed,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Update does nothing; the player is driven by control after the entity pass.
func (p *Player) Update(*World) {}

// Damage is recorded but the player has no health.
func (p *Player) Damage(w *World, amount int) {
	w.emit(Event{Kind: EventHit, Agent: Label(p), Pos: p.Pos, NumVal: float64(amount)})
}

// control applies one input snapshot: fire, pull, world shift, aim, smoothing
// and cooldown, in that order.
func (p *Player) control(w *World, in Input) {
	spec := w.cfg.Player

	if in.Buttons.Has(ButtonLeft) && p.FireCooldown == 0 {
		p.FireBurst(w)
	}
	if in.Buttons.Has(ButtonRight) {
		p.pull(w, spec.PullStrength)
	}

	if d := p.moveDelta(in.Keys); d != (geom.Point{}) {
		shift := d.Scale(-1)
		for _, e := range w.entities {
			if e == Entity(p) || !e.Base().Alive() {
				continue
			}
			w.nudge(e, shift)
		}
	}

	aim := in.Mouse.Sub(w.camera.Offset)
	p.TargetHeading = geom.FacingTo(p.Pos, aim)
	p.turn(spec.AimRate)
	p.smooth(w.cfg.MoveRate)

	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
}

// moveDelta converts held keys into a displacement relative to the heading.
func (p *Player) moveDelta(k Keys) geom.Point {
	var d geom.Point
	if k.Has(KeyForward) {
		d = d.Add(geom.MoveDir(p.Heading, p.Speed))
	}
	if k.Has(KeyBack) {
		d = d.Sub(geom.MoveDir(p.Heading, p.Speed))
	}
	if k.Has(KeyRight) {
		d = d.Add(geom.MoveDir(p.Heading+90, p.Speed))
	}
	if k.Has(KeyLeft) {
		d = d.Add(geom.MoveDir(p.Heading-90, p.Speed))
	}
	return d
}

// FireBurst fires BurstSize hitscan shots, each with the heading perturbed by
// an independent random offset, then restores the heading and arms the
// cooldown.
func (p *Player) FireBurst(w *World) {
	spec := w.cfg.Player
	spread := int(spec.BurstSpread)
	heading := p.Heading
	for i := 0; i < spec.BurstSize; i++ {
		p.Heading = heading + float64(randInt(w.rng, -spread, spread))
		Shoot(w, p)
	}
	p.Heading = heading
	p.FireCooldown = spec.FireCooldown
	w.emit(Event{Kind: EventBurst, Agent: Label(p), Pos: p.Pos, NumVal: float64(spec.BurstSize)})
}

// pull drags the first live explosive toward the player.
func (p *Player) pull(w *World, strength float64) {
	for _, e := range w.entities {
		x, ok := e.(*Explosive)
		if !ok || !x.Alive() {
			continue
		}
		w.nudge(x, geom.MoveDir(geom.FacingTo(x.Pos, p.Pos), strength))
		w.emit(Event{Kind: EventPull, Agent: Label(x), Pos: x.Pos, NumVal: strength})
		return
	}
}
