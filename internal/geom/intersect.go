package geom

import "math"

// LineCircleIntersection returns the first point, in segment parameter order,
// where the segment start->end meets the circle. The smaller root is checked
// before the larger one, so the result is the point nearest to start along the
// segment. ok is false when the circle misses the infinite line or both roots
// fall outside [0,1].
func LineCircleIntersection(start, end, center Point, radius float64) (Point, bool) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	fx := start.X - center.X
	fy := start.Y - center.Y

	a := dx*dx + dy*dy
	if a == 0 {
		// Degenerate segment: no parameterisation exists.
		return Point{}, false
	}
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Point{}, false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	if t1 >= 0 && t1 <= 1 {
		return Point{X: start.X + t1*dx, Y: start.Y + t1*dy}, true
	}
	if t2 >= 0 && t2 <= 1 {
		return Point{X: start.X + t2*dx, Y: start.Y + t2*dy}, true
	}
	return Point{}, false
}

// LineLineIntersection reports whether segments p1-p2 and p3-p4 cross.
// Parallel and coincident segments report false.
func LineLineIntersection(p1, p2, p3, p4 Point) bool {
	den := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if den == 0 {
		return false
	}
	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / den
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / den
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// RectEdges returns the four edges of the rectangle at pos with the given
// size, in the order top, left, right, bottom.
func RectEdges(pos, size Point) [4][2]Point {
	x, y, w, h := pos.X, pos.Y, size.X, size.Y
	return [4][2]Point{
		{{X: x, Y: y}, {X: x + w, Y: y}},
		{{X: x, Y: y}, {X: x, Y: y + h}},
		{{X: x + w, Y: y}, {X: x + w, Y: y + h}},
		{{X: x, Y: y + h}, {X: x + w, Y: y + h}},
	}
}

// LineRectIntersection reports whether the segment crosses any edge of the
// rectangle. A segment lying wholly inside the rectangle does not count.
func LineRectIntersection(start, end, rectPos, rectSize Point) bool {
	for _, e := range RectEdges(rectPos, rectSize) {
		if LineLineIntersection(start, end, e[0], e[1]) {
			return true
		}
	}
	return false
}

// AABBOverlap is the strict box overlap test: boxes that only share an edge
// do not overlap.
func AABBOverlap(pos1, size1, pos2, size2 Point) bool {
	return pos1.X < pos2.X+size2.X &&
		pos1.X+size1.X > pos2.X &&
		pos1.Y < pos2.Y+size2.Y &&
		pos1.Y+size1.Y > pos2.Y
}
