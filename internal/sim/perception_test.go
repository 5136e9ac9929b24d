package sim

import (
	"testing"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

var testVision = Vision{Angle: 180, Range: 300}

func TestInVision_DirectlyAhead(t *testing.T) {
	if !InVision(geom.Pt(0, 0), 0, testVision, geom.Pt(100, 0)) {
		t.Fatal("target directly in front should be visible")
	}
}

func TestInVision_Behind(t *testing.T) {
	if InVision(geom.Pt(0, 0), 0, testVision, geom.Pt(-100, 0)) {
		t.Fatal("target directly behind should not be visible with a 180° cone")
	}
}

func TestInVision_Self(t *testing.T) {
	p := geom.Pt(42, -7)
	if InVision(p, 0, testVision, p) {
		t.Fatal("an observer must never see its own position")
	}
	if InVision(p, 0, Vision{Angle: 360, Range: 1e9}, p) {
		t.Fatal("zero distance is never visible, even with a full cone")
	}
}

func TestInVision_BeyondRange(t *testing.T) {
	if InVision(geom.Pt(0, 0), 0, testVision, geom.Pt(300.5, 0)) {
		t.Fatal("target beyond detect range should not be visible")
	}
	if !InVision(geom.Pt(0, 0), 0, testVision, geom.Pt(300, 0)) {
		t.Fatal("target exactly at detect range is inside")
	}
}

func TestInVision_HeadingDown(t *testing.T) {
	// Heading 90 faces +y (down the screen).
	if !InVision(geom.Pt(0, 0), 90, Vision{Angle: 60, Range: 300}, geom.Pt(0, 100)) {
		t.Fatal("target below should be visible when facing down")
	}
	if InVision(geom.Pt(0, 0), 90, Vision{Angle: 60, Range: 300}, geom.Pt(100, 0)) {
		t.Fatal("target 90° off a 60° cone should not be visible")
	}
}

func TestInVision_FullCone(t *testing.T) {
	if !InVision(geom.Pt(0, 0), 0, Vision{Angle: 360, Range: 1200}, geom.Pt(-100, 1)) {
		t.Fatal("a 360° cone should see almost directly behind")
	}
}

func TestInVision_ConeEdge(t *testing.T) {
	v := Vision{Angle: 90, Range: 500}
	inside := geom.MoveDir(44.9, 100)
	outside := geom.MoveDir(45.1, 100)
	if !InVision(geom.Pt(0, 0), 0, v, inside) {
		t.Fatal("target just inside the half-angle should be visible")
	}
	if InVision(geom.Pt(0, 0), 0, v, outside) {
		t.Fatal("target just outside the half-angle should not be visible")
	}
}
