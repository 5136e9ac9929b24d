package sim

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// Kind is the closed set of simulated body types.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindRock
	KindExplosive
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindRock:
		return "rock"
	case KindExplosive:
		return "explosive"
	default:
		return "unknown"
	}
}

// Agent is the attribute set shared by every simulated body.
//
// Pos and Heading are never written directly by game logic; logic moves
// TargetPos and TargetHeading and the per-tick smoothing step converges
// toward them.
type Agent struct {
	ID            int
	Pos           geom.Point
	TargetPos     geom.Point
	Heading       float64 // degrees
	TargetHeading float64
	Radius        float64
	Color         color.RGBA
	Health        int
	Mortal        bool // false for bodies without health

	removed bool // tombstone; swept between ticks
}

// Base returns the shared attributes. Every kind embeds Agent, so this is
// promoted onto all of them.
func (a *Agent) Base() *Agent { return a }

// Alive reports whether the body is still in the live set.
func (a *Agent) Alive() bool { return !a.removed }

// smooth moves Pos a fraction rate of the remaining way to TargetPos.
func (a *Agent) smooth(rate float64) {
	a.Pos = geom.LerpPoint(a.Pos, a.TargetPos, rate)
}

// turn moves Heading a fraction rate of the shortest arc to TargetHeading.
func (a *Agent) turn(rate float64) {
	a.Heading = geom.LerpAngle(a.Heading, a.TargetHeading, rate)
}

// Entity is the per-kind behaviour contract the World dispatches on.
type Entity interface {
	Base() *Agent
	Kind() Kind
	Update(w *World)
	Damage(w *World, amount int)
}

// Label is the short name used in logs, e.g. "E3" or "X12".
func Label(e Entity) string {
	id := e.Base().ID
	switch e.Kind() {
	case KindPlayer:
		return "P"
	case KindEnemy:
		return fmt.Sprintf("E%d", id)
	case KindRock:
		return fmt.Sprintf("R%d", id)
	case KindExplosive:
		return fmt.Sprintf("X%d", id)
	default:
		return fmt.Sprintf("?%d", id)
	}
}

// --- Rock ---

// Rock is an inert, immortal obstacle. It blocks shots and can be pushed.
type Rock struct {
	Agent
}

func (r *Rock) Kind() Kind { return KindRock }

// Update drifts the rock toward its target at the heavy-body rate.
func (r *Rock) Update(w *World) {
	r.smooth(w.cfg.HeavyMoveRate)
}

// Damage is ignored.
func (r *Rock) Damage(*World, int) {}
