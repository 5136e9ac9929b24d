package geom

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func TestDegRad_RoundTrip(t *testing.T) {
	if math.Abs(DegToRad(180)-math.Pi) > eps {
		t.Fatalf("180° should be π, got %.6f", DegToRad(180))
	}
	if math.Abs(RadToDeg(math.Pi/2)-90) > eps {
		t.Fatalf("π/2 should be 90°, got %.6f", RadToDeg(math.Pi/2))
	}
	for _, d := range []float64{-720, -45, 0, 13.5, 359} {
		if math.Abs(RadToDeg(DegToRad(d))-d) > 1e-9 {
			t.Fatalf("round trip of %.2f drifted", d)
		}
	}
}

func TestLerp_Endpoints(t *testing.T) {
	if Lerp(3, 11, 0) != 3 {
		t.Fatal("lerp at t=0 should return start")
	}
	if Lerp(3, 11, 1) != 11 {
		t.Fatal("lerp at t=1 should return end")
	}
}

func TestLerp_Extrapolates(t *testing.T) {
	if got := Lerp(0, 10, 1.5); got != 15 {
		t.Fatalf("t=1.5 should extrapolate to 15, got %.2f", got)
	}
	if got := Lerp(0, 10, -0.5); got != -5 {
		t.Fatalf("t=-0.5 should extrapolate to -5, got %.2f", got)
	}
}

func TestLerp_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		v := Lerp(-4, 9, float64(i)/100)
		if v < prev {
			t.Fatalf("lerp not monotonic at step %d: %.4f < %.4f", i, v, prev)
		}
		prev = v
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Fatalf("expected 5, got %.4f", d)
	}
	if Distance(Pt(7, -2), Pt(7, -2)) != 0 {
		t.Fatal("distance to self should be 0")
	}
}

func TestBearingTo_Cases(t *testing.T) {
	// Target straight below on screen: atan(0) = 0.
	if b := BearingTo(Pt(0, 0), Pt(0, 10)); b != 0 {
		t.Fatalf("bearing to point below should be 0, got %.4f", b)
	}
	// Target straight above: p1.y > p2.y adds 180.
	if b := BearingTo(Pt(0, 0), Pt(0, -10)); b != 180 {
		t.Fatalf("bearing to point above should be 180, got %.4f", b)
	}
	if b := BearingTo(Pt(0, 0), Pt(10, 10)); math.Abs(b-45) > eps {
		t.Fatalf("bearing to (10,10) should be 45, got %.4f", b)
	}
}

func TestBearingTo_HorizontalFallsBackToZero(t *testing.T) {
	if b := BearingTo(Pt(0, 5), Pt(100, 5)); b != 0 {
		t.Fatalf("dy == 0 must return 0, got %.4f", b)
	}
	if b := BearingTo(Pt(0, 5), Pt(-100, 5)); b != 0 {
		t.Fatalf("dy == 0 must return 0, got %.4f", b)
	}
}

func TestFacingTo_PointsAtTarget(t *testing.T) {
	from := Pt(10, 10)
	for _, to := range []Point{Pt(40, 50), Pt(-30, 70), Pt(-5, -60), Pt(80, -3)} {
		step := MoveDir(FacingTo(from, to), 1)
		dir := to.Sub(from).Scale(1 / Distance(from, to))
		if math.Abs(step.X-dir.X) > 1e-9 || math.Abs(step.Y-dir.Y) > 1e-9 {
			t.Fatalf("facing from %v to %v gave direction %v, want %v", from, to, step, dir)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, 370: 10, -10: 350, -720: 0, 359.5: 359.5}
	for in, want := range cases {
		if got := WrapDegrees(in); math.Abs(got-want) > eps {
			t.Fatalf("WrapDegrees(%.1f) = %.4f, want %.4f", in, got, want)
		}
	}
}

func TestLerpAngle_TakesShortArc(t *testing.T) {
	got := LerpAngle(350, 10, 0.5)
	if math.Abs(got-0) > 1e-9 && math.Abs(got-360) > 1e-9 {
		t.Fatalf("halfway from 350 to 10 should be 0, got %.4f", got)
	}
	got = LerpAngle(10, -10, 0.5)
	if math.Abs(got-0) > 1e-9 {
		t.Fatalf("halfway from 10 to -10 should be 0, got %.4f", got)
	}
}

func TestLerpAngle_Converges(t *testing.T) {
	h := 0.0
	for i := 0; i < 1000; i++ {
		h = LerpAngle(h, 270, 0.05)
		if h < 0 || h >= 360 {
			t.Fatalf("heading left [0,360): %.4f", h)
		}
	}
	if math.Abs(AngleDiff(h, 270)) > 1e-6 {
		t.Fatalf("heading should converge to 270, got %.4f", h)
	}
}

func TestLineCircle_Miss(t *testing.T) {
	if _, ok := LineCircleIntersection(Pt(0, 0), Pt(100, 0), Pt(50, 30), 10); ok {
		t.Fatal("circle clear of the line should not intersect")
	}
}

func TestLineCircle_FirstInParameterOrder(t *testing.T) {
	p, ok := LineCircleIntersection(Pt(0, 0), Pt(100, 0), Pt(50, 0), 10)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(p.X-40) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Fatalf("expected entry point (40,0), got %v", p)
	}
}

func TestLineCircle_StartInsideReturnsExit(t *testing.T) {
	// t1 < 0 because the segment starts inside the circle; t2 is the exit.
	p, ok := LineCircleIntersection(Pt(50, 0), Pt(100, 0), Pt(50, 0), 10)
	if !ok {
		t.Fatal("expected exit hit")
	}
	if math.Abs(p.X-60) > 1e-9 {
		t.Fatalf("expected exit point x=60, got %.4f", p.X)
	}
}

func TestLineCircle_SegmentTooShort(t *testing.T) {
	if _, ok := LineCircleIntersection(Pt(0, 0), Pt(20, 0), Pt(50, 0), 10); ok {
		t.Fatal("segment ending before the circle should not intersect")
	}
}

func TestLineCircle_ZeroLengthSegment(t *testing.T) {
	if _, ok := LineCircleIntersection(Pt(5, 5), Pt(5, 5), Pt(5, 5), 10); ok {
		t.Fatal("zero-length segment should report no intersection")
	}
}

func TestLineCircle_PropertyOnCircleAndSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test only
	for i := 0; i < 2000; i++ {
		s := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		e := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		c := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		r := 1 + rng.Float64()*60
		p, ok := LineCircleIntersection(s, e, c, r)
		if !ok {
			continue
		}
		if math.Abs(Distance(p, c)-r) > 1e-6 {
			t.Fatalf("hit %v is %.6f from centre, radius %.6f", p, Distance(p, c), r)
		}
		segLen := Distance(s, e)
		if Distance(s, p) > segLen+1e-6 || Distance(e, p) > segLen+1e-6 {
			t.Fatalf("hit %v lies outside segment %v-%v", p, s, e)
		}
	}
}

func TestLineLine_Crossing(t *testing.T) {
	if !LineLineIntersection(Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0)) {
		t.Fatal("diagonals should cross")
	}
}

func TestLineLine_Disjoint(t *testing.T) {
	if LineLineIntersection(Pt(0, 0), Pt(1, 1), Pt(5, 0), Pt(6, -3)) {
		t.Fatal("far apart segments should not cross")
	}
}

func TestLineLine_ParallelAndCoincident(t *testing.T) {
	if LineLineIntersection(Pt(0, 0), Pt(10, 0), Pt(0, 5), Pt(10, 5)) {
		t.Fatal("parallel segments must report false")
	}
	if LineLineIntersection(Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(15, 0)) {
		t.Fatal("coincident segments must report false")
	}
}

func TestLineLine_TouchingEndpoint(t *testing.T) {
	if !LineLineIntersection(Pt(0, 0), Pt(10, 0), Pt(10, -5), Pt(10, 5)) {
		t.Fatal("endpoint touching an edge is inclusive")
	}
}

func TestLineRect_Crossing(t *testing.T) {
	if !LineRectIntersection(Pt(-10, 5), Pt(30, 5), Pt(0, 0), Pt(20, 10)) {
		t.Fatal("segment through the box should intersect")
	}
}

func TestLineRect_InsideDoesNotCount(t *testing.T) {
	if LineRectIntersection(Pt(2, 2), Pt(8, 8), Pt(0, 0), Pt(20, 20)) {
		t.Fatal("segment fully inside crosses no edge")
	}
}

func TestLineRect_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) // #nosec G404 -- test only
	for i := 0; i < 2000; i++ {
		s := Pt(rng.Float64()*100, rng.Float64()*100)
		e := Pt(rng.Float64()*100, rng.Float64()*100)
		pos := Pt(rng.Float64()*80, rng.Float64()*80)
		size := Pt(1+rng.Float64()*40, 1+rng.Float64()*40)

		brute := false
		x, y, w, h := pos.X, pos.Y, size.X, size.Y
		edges := [][2]Point{
			{Pt(x, y), Pt(x+w, y)},
			{Pt(x, y), Pt(x, y+h)},
			{Pt(x+w, y), Pt(x+w, y+h)},
			{Pt(x, y+h), Pt(x+w, y+h)},
		}
		for _, edge := range edges {
			if LineLineIntersection(s, e, edge[0], edge[1]) {
				brute = true
			}
		}
		if got := LineRectIntersection(s, e, pos, size); got != brute {
			t.Fatalf("segment %v-%v box %v+%v: got %v want %v", s, e, pos, size, got, brute)
		}
	}
}

func TestAABBOverlap_Strict(t *testing.T) {
	if !AABBOverlap(Pt(0, 0), Pt(10, 10), Pt(5, 5), Pt(10, 10)) {
		t.Fatal("overlapping boxes should overlap")
	}
	if AABBOverlap(Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(10, 10)) {
		t.Fatal("boxes sharing an edge must not overlap")
	}
	if AABBOverlap(Pt(0, 0), Pt(10, 10), Pt(30, 30), Pt(5, 5)) {
		t.Fatal("separated boxes must not overlap")
	}
}
