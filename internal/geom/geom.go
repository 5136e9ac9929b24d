// Package geom holds the stateless 2D geometry used by the simulation:
// angle conversion, interpolation, bearings and segment intersection tests.
//
// Angles are in degrees throughout. Screen space is assumed: +x right, +y down,
// so a heading of 90 points down the screen.
package geom

import "math"

// Point is a 2D position or displacement.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p*k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Round rounds both coordinates to the nearest integer.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

// Lerp interpolates between start and end. t is not clamped, values outside
// [0,1] extrapolate.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

// LerpPoint interpolates each coordinate with Lerp.
func LerpPoint(start, end Point, t float64) Point {
	return Point{X: Lerp(start.X, end.X, t), Y: Lerp(start.Y, end.Y, t)}
}

// Distance is the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BearingTo returns the angle p1 has to turn to face p2, measured with
// atan(dx/dy) and corrected by 180 when p1 lies below p2 on screen.
// When dy is zero the result is 0; that value is kept for compatibility and
// is not a true bearing.
func BearingTo(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	if dy == 0 {
		return 0
	}
	angle := RadToDeg(math.Atan(dx / dy))
	if p1.Y > p2.Y {
		return angle + 180
	}
	return angle
}

// FacingTo converts BearingTo into a movement heading usable with MoveDir.
func FacingTo(p1, p2 Point) float64 {
	return 90 - BearingTo(p1, p2)
}

// MoveDir returns the displacement of length speed along heading.
func MoveDir(heading, speed float64) Point {
	r := DegToRad(heading)
	return Point{X: math.Cos(r) * speed, Y: math.Sin(r) * speed}
}

// WrapDegrees maps any angle into [0,360).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// AngleDiff returns the signed shortest turn from `from` to `to`, in (-180,180].
func AngleDiff(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// LerpAngle moves heading a fraction t of the shortest arc toward target and
// wraps the result into [0,360).
func LerpAngle(heading, target, t float64) float64 {
	return WrapDegrees(heading + t*AngleDiff(heading, target))
}
