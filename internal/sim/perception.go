package sim

import (
	"math"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// Vision is a range-limited view cone.
type Vision struct {
	Angle float64 // full cone width in degrees
	Range float64
}

// InVision reports whether target lies inside the cone of an observer at pos
// facing heading. A coincident target is never visible, nor is one beyond
// Range. If rounding pushes the cosine outside [-1,1] the target is treated
// as not visible.
func InVision(pos geom.Point, heading float64, v Vision, target geom.Point) bool {
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || dist > v.Range {
		return false
	}

	nx := dx / dist
	ny := dy / dist
	r := geom.DegToRad(heading)
	dot := math.Cos(r)*nx + math.Sin(r)*ny
	if dot < -1 || dot > 1 {
		return false
	}

	angle := geom.RadToDeg(math.Acos(dot))
	return angle <= v.Angle/2
}
