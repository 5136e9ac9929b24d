package sim

import (
	"image/color"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// AgentView is a read-only copy of one live body for drawing.
type AgentView struct {
	ID      int
	Kind    Kind
	Label   string
	Pos     geom.Point
	Heading float64
	Radius  float64 // drawn radius; grows during a blast
	Color   color.RGBA
	Health  int
	Mortal  bool

	Exploding bool
	Vision    Vision // zero for bodies without a cone
	State     string // enemy controller branch
	Anchor    geom.Point
	WalkRange float64
}

// ProjectileView is a read-only copy of one active projectile.
type ProjectileView struct {
	Pos    geom.Point
	Target geom.Point
	Size   float64
	Color  color.RGBA
}

// Agents snapshots the live bodies in update order.
func (w *World) Agents() []AgentView {
	out := make([]AgentView, 0, len(w.entities))
	for _, e := range w.entities {
		a := e.Base()
		if !a.Alive() {
			continue
		}
		v := AgentView{
			ID:      a.ID,
			Kind:    e.Kind(),
			Label:   Label(e),
			Pos:     a.Pos,
			Heading: a.Heading,
			Radius:  a.Radius,
			Color:   a.Color,
			Health:  a.Health,
			Mortal:  a.Mortal,
		}
		switch t := e.(type) {
		case *Enemy:
			v.Vision = t.Vision
			v.State = t.State.String()
			v.Anchor = t.Anchor
			v.WalkRange = t.WalkRange
		case *Player:
			v.Vision = t.Vision
		case *Explosive:
			v.Exploding = t.Exploding
			v.Radius = t.BlastRadius()
		}
		out = append(out, v)
	}
	return out
}

// Projectiles snapshots the active projectiles.
func (w *World) Projectiles() []ProjectileView {
	out := make([]ProjectileView, 0, len(w.projectiles))
	for _, p := range w.projectiles {
		if p.done {
			continue
		}
		out = append(out, ProjectileView{Pos: p.Pos, Target: p.Target, Size: p.Size, Color: p.Color})
	}
	return out
}

// alertHighlight is how far an alert enemy is lifted toward white.
const alertHighlight = 60

// DisplayColor is the colour a front end draws the body with. Alert enemies
// are brightened so pursuit reads at a glance.
func (v AgentView) DisplayColor() color.RGBA {
	if v.Kind == KindEnemy && v.State == EnemyAlert.String() {
		return AddBrightness(v.Color, alertHighlight)
	}
	return v.Color
}
