package sim

import (
	"image/color"
	"math"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// --- Hitscan ---

// ShotResult describes one resolved shot.
type ShotResult struct {
	Hit      Entity     // nil on a miss
	HitPoint geom.Point // valid when Hit != nil
	End      geom.Point // visual ray end: the hit point or the ray's full length
}

// Shoot resolves an instantaneous shot along the shooter's heading. Every
// other live body is tested against the ray; the one whose entry point is
// nearest the shooter takes the hit, with ties going to the earlier body in
// collection order. A projectile trace is spawned whether or not anything
// was hit.
func Shoot(w *World, shooter Entity) ShotResult {
	a := shooter.Base()
	end := a.Pos.Add(geom.MoveDir(a.Heading, w.cfg.ShotRange))

	var res ShotResult
	best := math.Inf(1)
	for _, e := range w.entities {
		b := e.Base()
		if e == shooter || !b.Alive() {
			continue
		}
		p, ok := geom.LineCircleIntersection(a.Pos, end, b.Pos, b.Radius)
		if !ok {
			continue
		}
		if d := geom.Distance(a.Pos, p); d < best {
			best = d
			res.Hit = e
			res.HitPoint = p
		}
	}

	w.stats.Shots++
	if res.Hit != nil {
		end = res.HitPoint
		w.stats.Hits++
		w.nudge(res.Hit, geom.MoveDir(a.Heading, w.cfg.ShotNudge))
		res.Hit.Damage(w, w.cfg.ShotDamage)
	}
	res.End = end

	w.emit(Event{Kind: EventShot, Agent: Label(shooter), Pos: a.Pos, NumVal: geom.Distance(a.Pos, end)})
	w.spawnProjectile(a.Pos, end, a.Heading)
	return res
}

// --- Projectile ---

// Projectile is the visual trace of a shot. Hit detection has already
// happened by the time it exists.
type Projectile struct {
	Origin   geom.Point
	Pos      geom.Point
	Target   geom.Point
	Heading  float64
	Speed    float64
	Age      int
	Lifetime int
	Size     float64
	Color    color.RGBA

	done bool
}

// Done reports whether the projectile has expired.
func (p *Projectile) Done() bool { return p.done }

// Update advances the projectile and expires it once it is within epsilon of
// its target or older than its lifetime.
func (p *Projectile) Update(w *World) {
	p.Pos = p.Pos.Add(geom.MoveDir(p.Heading, p.Speed))
	if geom.Distance(p.Pos, p.Target) < w.cfg.ProjectileEpsilon || p.Age > p.Lifetime {
		p.done = true
	}
	p.Age++
}

// --- Explosive ---

// Explosive is a destructible hazard that detonates when its health runs out.
type Explosive struct {
	Agent
	Power        float64
	EffectRadius float64
	Duration     int

	Exploding bool
	Age       int // ticks since the blast started

	detonated bool // area effect already applied
	baseColor color.RGBA
}

func newExplosive(id int, pos geom.Point, spec ExplosiveSpec) *Explosive {
	return &Explosive{
		Agent: Agent{
			ID:        id,
			Pos:       pos,
			TargetPos: pos,
			Radius:    spec.Radius,
			Color:     spec.Color,
			Health:    spec.Health,
			Mortal:    true,
		},
		Power:        spec.Power,
		EffectRadius: spec.EffectRadius,
		Duration:     spec.Duration,
		baseColor:    spec.Color,
	}
}

func (x *Explosive) Kind() Kind { return KindExplosive }

// Progress is the blast animation progress in [0,1].
func (x *Explosive) Progress() float64 {
	if !x.Exploding || x.Duration <= 0 {
		return 0
	}
	return math.Min(1, float64(x.Age)/float64(x.Duration))
}

// BlastRadius is the drawn radius: the body size growing to Power over the
// blast. The collision radius is unaffected.
func (x *Explosive) BlastRadius() float64 {
	if !x.Exploding {
		return x.Radius
	}
	return geom.Lerp(x.Radius, x.Power, x.Progress())
}

// Update drifts the explosive and advances the blast animation, removing the
// body when the animation ends.
func (x *Explosive) Update(w *World) {
	x.smooth(w.cfg.HeavyMoveRate)
	if !x.Exploding {
		return
	}
	x.Age++
	x.Color = fade(x.baseColor, x.Progress())
	if x.Age >= x.Duration {
		w.remove(x)
	}
}

// Damage lowers health and detonates when it drops below 1.
func (x *Explosive) Damage(w *World, amount int) {
	if !x.Alive() {
		return
	}
	x.Health -= amount
	w.emit(Event{Kind: EventHit, Agent: Label(x), Pos: x.Pos, NumVal: float64(amount)})
	if x.Health < 1 && !x.detonated {
		x.Explode(w)
	}
}

// Explode starts the blast and applies the area effect once. Every other
// live body closer than EffectRadius is knocked away from the blast by Power.
// Other explosives are set exploding directly without touching their health;
// everything else takes Power/10 damage.
func (x *Explosive) Explode(w *World) {
	x.Exploding = true
	if x.detonated {
		return
	}
	x.detonated = true
	w.stats.Detonations++
	w.emit(Event{Kind: EventDetonate, Agent: Label(x), Pos: x.Pos, NumVal: x.Power})

	for _, e := range w.entities {
		b := e.Base()
		if e == Entity(x) || !b.Alive() {
			continue
		}
		if geom.Distance(x.Pos, b.Pos) >= x.EffectRadius {
			continue
		}
		w.nudge(e, geom.MoveDir(geom.FacingTo(x.Pos, b.Pos), x.Power))
		if other, ok := e.(*Explosive); ok {
			if !other.Exploding {
				w.stats.Chains++
				w.emit(Event{Kind: EventChain, Agent: Label(other), Pos: other.Pos, Value: Label(x)})
			}
			other.Exploding = true
			continue
		}
		e.Damage(w, int(x.Power)/10)
	}
}
