package geom

// The touch predicates are loose edge-proximity checks used for widget
// hit-testing. They are deliberately asymmetric and, unlike AABBOverlap,
// inclusive at the boundaries. Callers depend on both behaviours.

// TouchedUp reports whether y1 lies further down than y2 by more than height1.
func TouchedUp(y1, height1, y2 float64) bool {
	return y1 > y2+height1
}

// TouchedDown reports whether the bottom of box 1 is above the bottom of box 2.
func TouchedDown(y1, height1, y2, height2 float64) bool {
	return y1+height1 < y2+height2
}

// TouchedLeft reports whether x1-width1 falls strictly inside box 2's span.
func TouchedLeft(x1, width1, x2, width2 float64) bool {
	l := x1 - width1
	return x2 < l && l < x2+width2
}

// TouchedRight reports whether x1+width1 falls strictly inside box 2's span.
func TouchedRight(x1, width1, x2, width2 float64) bool {
	r := x1 + width1
	return x2 < r && r < x2+width2
}

// Touched reports whether box 2's origin lies inside box 1, or the two boxes
// overlap with shared edges counting as contact.
func Touched(x1, width1, x2, width2, y1, height1, y2, height2 float64) bool {
	if x1 <= x2 && x2 <= x1+width1 && y1 <= y2 && y2 <= y1+height1 {
		return true
	}
	return x1 <= x2+width2 && x1+width1 >= x2 && y1 <= y2+height2 && y1+height1 >= y2
}
