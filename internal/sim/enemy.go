package sim

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// walkPointAttempts caps the rejection sampling in newWalkPoint.
const walkPointAttempts = 64

// EnemyState is the branch the controller took on its last update.
type EnemyState int

const (
	EnemyIdle   EnemyState = iota // holding, waiting for the next re-decision
	EnemyAlert                    // player seen or recently damaged: pursue
	EnemyWalk                     // turning toward / walking to a waypoint
	EnemyReturn                   // strayed past walk range, heading home
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyAlert:
		return "alert"
	case EnemyWalk:
		return "walk"
	case EnemyReturn:
		return "return"
	default:
		return "unknown"
	}
}

// Enemy is an AI-driven hostile agent patrolling around an anchor point.
type Enemy struct {
	Agent
	Vision Vision
	Speed  float64

	Anchor          geom.Point
	WalkPoint       geom.Point
	HasWalkPoint    bool
	StopRange       float64
	WalkRange       float64
	MinWalkDistance float64

	// Damaged forces pursuit until the enemy closes to StopRange.
	Damaged bool

	State EnemyState
}

func newEnemy(id int, pos geom.Point, spec EnemySpec) *Enemy {
	return &Enemy{
		Agent: Agent{
			ID:        id,
			Pos:       pos,
			TargetPos: pos,
			Radius:    spec.Radius,
			Color:     spec.Color,
			Health:    spec.Health,
			Mortal:    true,
		},
		Vision:          Vision{Angle: spec.VisionAngle, Range: spec.DetectRange},
		Speed:           spec.Speed,
		Anchor:          pos,
		StopRange:       spec.StopRange,
		WalkRange:       spec.WalkRange,
		MinWalkDistance: spec.MinWalkDistance,
		Damaged:         spec.Alert,
	}
}

func (e *Enemy) Kind() Kind { return KindEnemy }

// CanSee reports whether p is inside the enemy's vision cone.
func (e *Enemy) CanSee(p geom.Point) bool {
	return InVision(e.Pos, e.Heading, e.Vision, p)
}

// SetWalkPoint gives the enemy a patrol destination.
func (e *Enemy) SetWalkPoint(p geom.Point) {
	e.WalkPoint = p
	e.HasWalkPoint = true
}

// Update runs one tick of the decision loop and then the two-speed smoothing:
// a slow turn toward TargetHeading and a faster glide toward TargetPos.
func (e *Enemy) Update(w *World) {
	prev := e.State

	player := w.Player
	seesPlayer := player != nil && player.Alive() && e.CanSee(player.Pos)

	// --- Decision loop (priority ordered, first match wins) ---
	switch {
	case player != nil && player.Alive() && (seesPlayer || e.Damaged):
		e.State = EnemyAlert
		e.TargetHeading = geom.FacingTo(e.Pos, player.Pos)
		if geom.Distance(player.Pos, e.Pos) > e.StopRange {
			e.TargetPos = e.TargetPos.Add(geom.MoveDir(e.TargetHeading, e.Speed))
		} else {
			e.Damaged = false
		}

	case e.HasWalkPoint:
		e.State = EnemyWalk
		e.TargetHeading = geom.FacingTo(e.Pos, e.WalkPoint)
		// Stop and turn before walking.
		if math.Abs(geom.AngleDiff(e.Heading, e.TargetHeading)) < w.cfg.WaypointTolerance {
			step := math.Min(e.Speed/2, geom.Distance(e.TargetPos, e.WalkPoint))
			e.TargetPos = e.TargetPos.Add(geom.MoveDir(e.TargetHeading, step))
			if geom.Distance(e.Pos, e.WalkPoint) < w.cfg.WaypointArrival {
				e.HasWalkPoint = false
				w.emit(Event{Kind: EventArrive, Agent: Label(e), Pos: e.WalkPoint})
			}
		}

	case geom.Distance(e.Pos, e.Anchor) > e.WalkRange:
		e.State = EnemyReturn
		e.SetWalkPoint(e.Anchor)

	case w.frame%w.cfg.DecisionPeriod == 0:
		e.State = EnemyIdle
		e.redecide(w)

	default:
		e.State = EnemyIdle
	}

	if e.State != prev {
		w.emit(Event{Kind: EventState, Agent: Label(e), Pos: e.Pos, Value: prev.String() + " → " + e.State.String()})
	}

	e.turn(w.cfg.TurnRate)
	e.smooth(w.cfg.MoveRate)
}

// redecide is the idle coin flip: pick a new waypoint or glance aside.
func (e *Enemy) redecide(w *World) {
	if w.rng.Intn(2) == 1 {
		e.SetWalkPoint(e.newWalkPoint(w.rng))
		w.emit(Event{Kind: EventPatrol, Agent: Label(e), Pos: e.WalkPoint, NumVal: geom.Distance(e.Anchor, e.WalkPoint)})
		return
	}
	e.TargetHeading = math.Round(e.Heading) + float64(randInt(w.rng, -90, 90))
	w.emit(Event{Kind: EventGlance, Agent: Label(e), Pos: e.Pos, NumVal: e.TargetHeading})
}

// newWalkPoint samples whole-unit offsets inside a disc of radius WalkRange/2
// around the anchor and returns the first candidate farther than
// MinWalkDistance from the enemy. If none qualifies within the attempt budget
// the farthest in-disc candidate seen is used.
func (e *Enemy) newWalkPoint(rng *rand.Rand) geom.Point {
	half := int(e.WalkRange) / 2
	from := e.Pos.Round()
	best := e.Anchor
	bestDist := geom.Distance(from, best)
	for i := 0; i < walkPointAttempts; i++ {
		dx := randInt(rng, -half, half)
		dy := randInt(rng, -half, half)
		if dx*dx+dy*dy > half*half {
			continue
		}
		c := e.Anchor.Add(geom.Pt(float64(dx), float64(dy)))
		d := geom.Distance(from, c)
		if d > e.MinWalkDistance {
			return c
		}
		if d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Damage applies a hit. The enemy turns alert and is removed once health
// drops below 1.
func (e *Enemy) Damage(w *World, amount int) {
	if !e.Alive() {
		return
	}
	e.Damaged = true
	e.Health -= amount
	w.emit(Event{Kind: EventHit, Agent: Label(e), Pos: e.Pos, NumVal: float64(amount)})
	if e.Health < 1 {
		w.remove(e)
	}
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
