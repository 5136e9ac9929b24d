package sim

import (
	"fmt"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// TestSim is a headless harness used by tests and the batch report. It
// wraps a World with deterministic seeding, a SimLog and a held input.
type TestSim struct {
	World  *World
	SimLog *SimLog
	Input  Input // applied on every RunTicks step

	cfg      Config
	populate bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // arena, seed, config, verbose: applied before the world exists
	simOptBody                       // bodies: applied in option order once the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithArena sets the arena (and screen) dimensions.
func WithArena(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Width = w
		ts.cfg.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
	}}
}

// WithVerbose also logs every shot and hit.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTargetEnemies turns on reinforcement up to n enemies.
func WithTargetEnemies(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.TargetEnemies = n
	}}
}

// WithConfig edits the configuration directly.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.cfg)
	}}
}

// WithStockArena populates the world the way the game does.
func WithStockArena() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.populate = true
	}}
}

// WithPlayer places the player at (x,y).
func WithPlayer(x, y float64) SimOption {
	return SimOption{simOptBody, func(ts *TestSim) {
		ts.World.AddPlayer(geom.Pt(x, y))
	}}
}

// WithEnemy adds a patrolling enemy anchored at (x,y).
func WithEnemy(x, y float64) SimOption {
	return SimOption{simOptBody, func(ts *TestSim) {
		ts.World.AddEnemy(geom.Pt(x, y), ts.cfg.Enemy)
	}}
}

// WithEnemySpec adds an enemy built from an explicit spec.
func WithEnemySpec(x, y float64, spec EnemySpec) SimOption {
	return SimOption{simOptBody, func(ts *TestSim) {
		ts.World.AddEnemy(geom.Pt(x, y), spec)
	}}
}

// WithRock adds a rock at (x,y).
func WithRock(x, y float64) SimOption {
	return SimOption{simOptBody, func(ts *TestSim) {
		ts.World.AddRock(geom.Pt(x, y))
	}}
}

// WithExplosive adds an explosive at (x,y).
func WithExplosive(x, y float64) SimOption {
	return SimOption{simOptBody, func(ts *TestSim) {
		ts.World.AddExplosive(geom.Pt(x, y))
	}}
}

// NewTestSim constructs a TestSim in two passes: infrastructure options,
// then bodies in the order given. Reinforcement is off unless
// WithTargetEnemies or WithStockArena is used. It panics on an invalid
// configuration.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := DefaultConfig()
	cfg.InitialEnemies = 0
	cfg.TargetEnemies = 0
	cfg.Rocks = 0
	cfg.Explosives = 0
	ts := &TestSim{
		cfg:    cfg,
		SimLog: NewSimLog(false),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if ts.populate {
		stock := DefaultConfig()
		ts.cfg.InitialEnemies = stock.InitialEnemies
		ts.cfg.TargetEnemies = max(ts.cfg.TargetEnemies, stock.TargetEnemies)
		ts.cfg.Rocks = stock.Rocks
		ts.cfg.Explosives = stock.Explosives
	}

	w, err := NewEmptyWorld(ts.cfg)
	if err != nil {
		panic(fmt.Sprintf("test sim: %v", err))
	}
	ts.World = w
	w.SetLog(ts.SimLog)
	if ts.populate {
		w.Populate()
	}
	for _, o := range opts {
		if o.kind == simOptBody {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances n ticks with the held Input.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.World.Tick(ts.Input)
	}
}

// Step advances one tick with the given input.
func (ts *TestSim) Step(in Input) {
	ts.World.Tick(in)
}

// Enemies returns the live enemies in update order.
func (ts *TestSim) Enemies() []*Enemy {
	var out []*Enemy
	for _, e := range ts.World.Entities() {
		if en, ok := e.(*Enemy); ok {
			out = append(out, en)
		}
	}
	return out
}

// Explosives returns the live explosives in update order.
func (ts *TestSim) Explosives() []*Explosive {
	var out []*Explosive
	for _, e := range ts.World.Entities() {
		if x, ok := e.(*Explosive); ok {
			out = append(out, x)
		}
	}
	return out
}

// Summary is the world summary for t.Log output.
func (ts *TestSim) Summary() string {
	return Summary(ts.World)
}
