package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

func TestEnemyState_String(t *testing.T) {
	if EnemyAlert.String() != "alert" || EnemyReturn.String() != "return" {
		t.Fatal("unexpected state names")
	}
	if EnemyState(99).String() != "unknown" {
		t.Fatal("out of range state should be unknown")
	}
}

func TestEnemy_AlertBeatsWaypoint(t *testing.T) {
	ts := NewTestSim(WithPlayer(1000, 1000), WithEnemy(0, 0))
	ts.World.SetFrame(1)
	en := ts.Enemies()[0]
	en.SetWalkPoint(geom.Pt(30, 30))
	en.Damaged = true

	ts.Step(Input{})

	if en.State != EnemyAlert {
		t.Fatalf("expected alert to win over walk, got %s", en.State)
	}
	if !en.HasWalkPoint {
		t.Fatal("alert must not consume the pending walk point")
	}
	if en.TargetPos.X <= 0 || en.TargetPos.Y <= 0 {
		t.Fatalf("pursuit should advance toward the player, target=%v", en.TargetPos)
	}
}

func TestEnemy_SeesPlayerInCone(t *testing.T) {
	ts := NewTestSim(WithPlayer(200, 10), WithEnemy(0, 0))
	en := ts.Enemies()[0]
	ts.World.SetFrame(1)
	ts.Step(Input{})
	if en.State != EnemyAlert {
		t.Fatalf("player ahead within range should trigger alert, got %s", en.State)
	}
	if !ts.SimLog.HasEntry("ai", "state_change", "idle → alert") {
		t.Fatalf("expected state change to be logged:\n%s", ts.SimLog.Format())
	}
}

func TestEnemy_StopRangeClearsDamaged(t *testing.T) {
	ts := NewTestSim(WithPlayer(50, 10), WithEnemy(0, 0))
	en := ts.Enemies()[0]
	en.Damaged = true
	before := en.TargetPos
	ts.World.SetFrame(1)
	ts.Step(Input{})
	if en.Damaged {
		t.Fatal("inside stop range the damaged flag should clear")
	}
	if en.TargetPos != before {
		t.Fatalf("inside stop range the enemy should hold, target moved to %v", en.TargetPos)
	}
}

func TestEnemy_ForcedReturnToAnchor(t *testing.T) {
	ts := NewTestSim(WithPlayer(1500, 880), WithEnemy(0, 0))
	en := ts.Enemies()[0]
	en.Pos = geom.Pt(300, 10)
	en.TargetPos = en.Pos
	ts.World.SetFrame(1)

	ts.Step(Input{})
	if en.State != EnemyReturn {
		t.Fatalf("expected return state, got %s", en.State)
	}
	if !en.HasWalkPoint || en.WalkPoint != en.Anchor {
		t.Fatalf("walk point should be the anchor, got %v (set=%v)", en.WalkPoint, en.HasWalkPoint)
	}

	ts.RunTicks(2000)
	if d := geom.Distance(en.Pos, en.Anchor); d > en.WalkRange {
		t.Fatalf("enemy should be back inside walk range, %.1f from anchor", d)
	}
}

func TestEnemy_PatrolScenario(t *testing.T) {
	ts := NewTestSim(WithSeed(3), WithPlayer(1000, 1000), WithEnemy(0, 0))
	en := ts.Enemies()[0]
	// Each re-decision is a coin flip between a walk point and a glance, so
	// acquiring one within two decision boundaries (ticks 0 and 600) holds
	// for this seed, not for every seed.
	acquired := false
	for i := 0; i < 601 && !acquired; i++ {
		ts.Step(Input{})
		if en.State == EnemyAlert {
			t.Fatalf("tick %d: enemy should never see a player 1400 units away", i)
		}
		acquired = en.HasWalkPoint
	}
	if !acquired {
		t.Fatalf("enemy picked no walk point within 601 ticks:\n%s", ts.SimLog.Format())
	}
	if d := geom.Distance(en.WalkPoint, en.Anchor); d > en.WalkRange/2 {
		t.Fatalf("walk point %.1f from anchor, want <= %.1f", d, en.WalkRange/2)
	}
	e, ok := ts.SimLog.LastOf("ai", "new_walk_point")
	if !ok {
		t.Fatal("expected new_walk_point log entry")
	}
	cfg := ts.World.Config()
	if frame := e.Tick % cfg.FrameWrap; frame%cfg.DecisionPeriod != 0 {
		t.Fatalf("walk point chosen off a decision boundary at tick %d", e.Tick)
	}
}

func TestEnemy_RedecidesOnlyOnDecisionFrames(t *testing.T) {
	ts := NewTestSim(WithPlayer(1000, 1000), WithEnemy(0, 0))
	decisions := func() int {
		return ts.SimLog.CountCategory("ai", "glance") + ts.SimLog.CountCategory("ai", "new_walk_point")
	}

	ts.World.SetFrame(1)
	ts.RunTicks(599)
	if n := decisions(); n != 0 {
		t.Fatalf("no re-decision expected off the boundary, got %d:\n%s", n, ts.SimLog.Format())
	}
	if ts.World.Frame() != 600 {
		t.Fatalf("expected frame 600, got %d", ts.World.Frame())
	}
	ts.Step(Input{})
	if n := decisions(); n != 1 {
		t.Fatalf("expected exactly one re-decision at frame 600, got %d:\n%s", n, ts.SimLog.Format())
	}
}

func TestEnemy_NewWalkPointBounds(t *testing.T) {
	en := newEnemy(1, geom.Pt(200, 200), DefaultConfig().Enemy)
	rng := rand.New(rand.NewSource(5)) // #nosec G404 -- test only
	for i := 0; i < 500; i++ {
		p := en.newWalkPoint(rng)
		if d := geom.Distance(p, en.Anchor); d > en.WalkRange/2 {
			t.Fatalf("candidate %v is %.1f from anchor", p, d)
		}
		if d := geom.Distance(p, en.Pos); d <= en.MinWalkDistance {
			t.Fatalf("candidate %v too close to enemy (%.1f)", p, d)
		}
	}
}

func TestEnemy_WalksToWaypointAndClearsIt(t *testing.T) {
	ts := NewTestSim(WithPlayer(1500, 880), WithEnemy(100, 100))
	en := ts.Enemies()[0]
	en.SetWalkPoint(geom.Pt(130, 140))
	ts.World.SetFrame(1)
	for i := 0; i < 590 && en.HasWalkPoint; i++ {
		ts.Step(Input{})
	}
	if en.HasWalkPoint {
		t.Fatalf("enemy should reach its waypoint, still at %v", en.Pos)
	}
	if d := geom.Distance(en.Pos, geom.Pt(130, 140)); d >= 2 {
		t.Fatalf("waypoint cleared %.2f away, want < 2", d)
	}
	if !ts.SimLog.HasEntry("ai", "arrive", "") {
		t.Fatal("expected arrive entry")
	}
}

func TestEnemy_TurnsBeforeWalking(t *testing.T) {
	ts := NewTestSim(WithPlayer(1500, 880), WithEnemy(100, 100))
	en := ts.Enemies()[0]
	// Waypoint behind the enemy: it must turn in place first.
	en.SetWalkPoint(geom.Pt(60, 130))
	ts.World.SetFrame(1)
	ts.Step(Input{})
	if en.TargetPos != en.Anchor {
		t.Fatalf("enemy walked before turning, target=%v", en.TargetPos)
	}
}

func TestEnemy_TwoSpeedSmoothing(t *testing.T) {
	ts := NewTestSim(WithEnemy(0, 0))
	en := ts.Enemies()[0]
	en.TargetHeading = 90
	en.TargetPos = geom.Pt(10, 0)
	ts.World.SetFrame(1)
	ts.Step(Input{})
	if math.Abs(en.Heading-4.5) > 1e-9 {
		t.Fatalf("heading should move 5%% of the way, got %.4f", en.Heading)
	}
	if math.Abs(en.Pos.X-2) > 1e-9 {
		t.Fatalf("position should move 20%% of the way, got %.4f", en.Pos.X)
	}
}

func TestEnemy_HeadingStaysWrapped(t *testing.T) {
	ts := NewTestSim(WithEnemy(0, 0))
	en := ts.Enemies()[0]
	en.Heading = 350
	en.TargetHeading = 400
	ts.World.SetFrame(1)
	for i := 0; i < 200; i++ {
		ts.Step(Input{})
		if en.Heading < 0 || en.Heading >= 360 {
			t.Fatalf("heading left [0,360): %.4f", en.Heading)
		}
		ts.World.SetFrame(1)
	}
	if math.Abs(geom.AngleDiff(en.Heading, 40)) > 0.1 {
		t.Fatalf("heading should settle at 40, got %.4f", en.Heading)
	}
}

func TestEnemy_DamageKills(t *testing.T) {
	ts := NewTestSim(WithEnemy(0, 0))
	en := ts.Enemies()[0]
	if ts.World.EnemyTally() != 1 {
		t.Fatalf("expected tally 1, got %d", ts.World.EnemyTally())
	}
	en.Damage(ts.World, 5)
	if en.Alive() {
		t.Fatal("enemy with health < 1 should be removed")
	}
	if ts.World.EnemyTally() != 0 {
		t.Fatalf("tally should drop to 0, got %d", ts.World.EnemyTally())
	}
	en.Damage(ts.World, 5)
	if ts.World.EnemyTally() != 0 {
		t.Fatal("damaging a removed enemy must not decrement the tally twice")
	}
	ts.Step(Input{})
	if len(ts.Enemies()) != 0 {
		t.Fatal("dead enemy should be swept after the tick")
	}
}

func TestEnemy_DamageSetsAlert(t *testing.T) {
	spec := DefaultConfig().Enemy
	spec.Health = 20
	ts := NewTestSim(WithEnemySpec(0, 0, spec))
	en := ts.Enemies()[0]
	en.Damage(ts.World, 5)
	if !en.Damaged || en.Health != 15 {
		t.Fatalf("expected damaged flag and health 15, got %v/%d", en.Damaged, en.Health)
	}
}
