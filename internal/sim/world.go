package sim

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// nudge is a pending displacement of a body's target position. Peer
// mutations (knockback, world shift, pull) are queued during the tick and
// applied together after every body has updated.
type nudge struct {
	e     Entity
	delta geom.Point
}

// Camera keeps the player at the screen centre.
type Camera struct {
	Width, Height int
	Offset        geom.Point // world -> screen translation
}

func (c *Camera) follow(p *Player) {
	if p == nil {
		return
	}
	c.Offset = geom.Pt(float64(c.Width/2)-p.Pos.X, float64(c.Height/2)-p.Pos.Y)
}

// Stats are running counters over the lifetime of the world.
type Stats struct {
	Shots       int
	Hits        int
	Kills       int
	Detonations int
	Chains      int
	Spawns      int
}

// World owns every live body and projectile and advances them one tick at a
// time. It is not safe for concurrent use.
type World struct {
	cfg Config
	rng *rand.Rand

	entities    []Entity // insertion order is update order
	projectiles []*Projectile
	Player      *Player

	frame      int // wraps at cfg.FrameWrap; drives periodic AI decisions
	tick       int // never wraps
	nextID     int
	enemyTally int

	nudges []nudge
	events []Event
	stats  Stats
	camera Camera
	log    *SimLog
}

// NewWorld validates cfg and returns a populated world.
func NewWorld(cfg Config) (*World, error) {
	w, err := NewEmptyWorld(cfg)
	if err != nil {
		return nil, err
	}
	w.Populate()
	return w, nil
}

// NewEmptyWorld validates cfg and returns a world with no bodies.
func NewEmptyWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	return &World{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- game only
		camera: Camera{Width: cfg.Width, Height: cfg.Height},
	}, nil
}

// SetLog attaches a SimLog that receives every event. Pass nil to detach.
func (w *World) SetLog(l *SimLog) { w.log = l }

// Config returns the world's configuration.
func (w *World) Config() Config { return w.cfg }

// Frame is the wrapped frame counter.
func (w *World) Frame() int { return w.frame }

// SetFrame positions the frame counter, e.g. just before a re-decision
// boundary in tests.
func (w *World) SetFrame(f int) { w.frame = f % w.cfg.FrameWrap }

// TickCount is the number of ticks run since construction.
func (w *World) TickCount() int { return w.tick }

// EnemyTally is the number of live enemies as tracked for reinforcement.
func (w *World) EnemyTally() int { return w.enemyTally }

// Stats returns the running counters.
func (w *World) Stats() Stats { return w.stats }

// Events returns the events produced by the last Tick. The slice is reused
// by the next Tick.
func (w *World) Events() []Event { return w.events }

// CameraOffset is the display translation that keeps the player centred.
func (w *World) CameraOffset() geom.Point { return w.camera.Offset }

// Entities returns the live bodies in update order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if e.Base().Alive() {
			out = append(out, e)
		}
	}
	return out
}

// Populate builds the stock arena: enemies, the player at the centre, rocks
// and explosives at random positions.
func (w *World) Populate() {
	for i := 0; i < w.cfg.InitialEnemies; i++ {
		w.AddEnemy(w.randomPos(), w.cfg.Enemy)
	}
	w.AddPlayer(geom.Pt(float64(w.cfg.Width/2), float64(w.cfg.Height/2)))
	for i := 0; i < w.cfg.Rocks; i++ {
		w.AddRock(w.randomPos())
	}
	for i := 0; i < w.cfg.Explosives; i++ {
		w.AddExplosive(w.randomPos())
	}
	w.camera.follow(w.Player)
}

// Reset clears both collections and rebuilds the arena.
func (w *World) Reset() {
	w.entities = w.entities[:0]
	w.projectiles = w.projectiles[:0]
	w.nudges = w.nudges[:0]
	w.Player = nil
	w.enemyTally = 0
	w.frame = 0
	w.Populate()
	w.emit(Event{Kind: EventReset, Agent: "--"})
}

func (w *World) randomPos() geom.Point {
	return geom.Pt(float64(w.rng.Intn(w.cfg.Width+1)), float64(w.rng.Intn(w.cfg.Height+1)))
}

func (w *World) add(e Entity) {
	w.entities = append(w.entities, e)
	w.stats.Spawns++
	w.emit(Event{Kind: EventSpawn, Agent: Label(e), Pos: e.Base().Pos, Value: e.Kind().String()})
}

func (w *World) id() int {
	w.nextID++
	return w.nextID
}

// AddEnemy spawns an enemy anchored at pos.
func (w *World) AddEnemy(pos geom.Point, spec EnemySpec) *Enemy {
	e := newEnemy(w.id(), pos, spec)
	w.enemyTally++
	w.add(e)
	return e
}

// AddPlayer places the player. Only one player exists; a second call
// replaces the reference used by the AI.
func (w *World) AddPlayer(pos geom.Point) *Player {
	p := newPlayer(w.id(), pos, w.cfg.Player)
	w.Player = p
	w.add(p)
	return p
}

// AddRock places an inert obstacle.
func (w *World) AddRock(pos geom.Point) *Rock {
	r := &Rock{Agent: Agent{
		ID:        w.id(),
		Pos:       pos,
		TargetPos: pos,
		Radius:    w.cfg.Rock.Radius,
		Color:     w.cfg.Rock.Color,
	}}
	w.add(r)
	return r
}

// AddExplosive places a hazard.
func (w *World) AddExplosive(pos geom.Point) *Explosive {
	x := newExplosive(w.id(), pos, w.cfg.Explosive)
	w.add(x)
	return x
}

func (w *World) spawnProjectile(from, to geom.Point, heading float64) {
	w.projectiles = append(w.projectiles, &Projectile{
		Origin:   from,
		Pos:      from,
		Target:   to,
		Heading:  heading,
		Speed:    w.cfg.ProjectileSpeed,
		Lifetime: w.cfg.ProjectileLifetime,
		Size:     w.cfg.ProjectileSize,
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
}

// remove tombstones e. The slot stays in place until compact runs after the
// tick, so iteration over the live set never skips or repeats a body.
func (w *World) remove(e Entity) {
	b := e.Base()
	if b.removed {
		return
	}
	b.removed = true
	switch e.Kind() {
	case KindEnemy:
		w.enemyTally--
		w.stats.Kills++
		w.emit(Event{Kind: EventKill, Agent: Label(e), Pos: b.Pos})
	case KindExplosive:
		w.emit(Event{Kind: EventDespawn, Agent: Label(e), Pos: b.Pos})
	default:
		w.emit(Event{Kind: EventKill, Agent: Label(e), Pos: b.Pos})
	}
}

func (w *World) nudge(e Entity, delta geom.Point) {
	w.nudges = append(w.nudges, nudge{e: e, delta: delta})
}

func (w *World) applyNudges() {
	for _, n := range w.nudges {
		b := n.e.Base()
		if !b.Alive() {
			continue
		}
		b.TargetPos = b.TargetPos.Add(n.delta)
	}
	w.nudges = w.nudges[:0]
}

// compact sweeps tombstoned bodies and expired projectiles, keeping order.
func (w *World) compact() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Base().Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept

	live := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.done {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = live
}

func (w *World) emit(ev Event) {
	ev.Tick = w.tick
	w.events = append(w.events, ev)
	if w.log != nil {
		w.log.Record(ev)
	}
}

// Tick advances the world by one step:
//  1. refill the enemy tally with one reinforcement if short
//  2. update every live body in insertion order
//  3. update every projectile
//  4. apply the player's input
//  5. apply queued peer nudges, sweep removed bodies, follow with the camera
//  6. advance the wrapped frame counter
func (w *World) Tick(in Input) {
	w.events = w.events[:0]

	if w.enemyTally < w.cfg.TargetEnemies {
		w.AddEnemy(w.randomPos(), w.cfg.Reinforcement)
	}

	n := len(w.entities)
	for i := 0; i < n; i++ {
		e := w.entities[i]
		if !e.Base().Alive() {
			continue
		}
		e.Update(w)
	}

	for _, p := range w.projectiles {
		if !p.done {
			p.Update(w)
		}
	}

	if w.Player != nil && w.Player.Alive() {
		w.Player.control(w, in)
	}

	w.applyNudges()
	w.compact()
	w.camera.follow(w.Player)

	w.frame = (w.frame + 1) % w.cfg.FrameWrap
	w.tick++
}
