package sim

import (
	"errors"
	"fmt"
	"image/color"
)

// EnemySpec describes how an enemy is built at spawn.
type EnemySpec struct {
	Radius          float64
	Color           color.RGBA
	Speed           float64 // units per tick while pursuing; patrol walks at half
	Health          int
	VisionAngle     float64 // full cone width, degrees
	DetectRange     float64
	StopRange       float64 // pursuit halts inside this distance
	WalkRange       float64 // max patrol radius around the anchor
	MinWalkDistance float64 // patrol candidates closer than this to the enemy are rejected
	Alert           bool    // spawn with the damaged flag already set
}

// PlayerSpec describes the single player body.
type PlayerSpec struct {
	Radius       float64
	Color        color.RGBA
	Speed        float64
	VisionAngle  float64 // aim cone display only
	DetectRange  float64
	FireCooldown int     // ticks between bursts
	BurstSize    int     // shots per burst
	BurstSpread  float64 // each shot is offset by a random whole degree in [-spread, spread]
	AimRate      float64 // heading smoothing fraction toward the cursor
	PullStrength float64 // telekinesis pull per tick
}

// ExplosiveSpec describes a destructible hazard.
type ExplosiveSpec struct {
	Radius       float64
	Color        color.RGBA
	Health       int
	Power        float64 // knockback magnitude and visual blast radius
	Duration     int     // ticks the blast animation lasts
	EffectRadius float64 // bodies closer than this are affected
}

// RockSpec describes an inert obstacle.
type RockSpec struct {
	Radius float64
	Color  color.RGBA
}

// Config holds every tunable of a World.
type Config struct {
	Width  int // arena and screen size; the player is held at the centre
	Height int
	Seed   int64

	InitialEnemies int
	TargetEnemies  int // reinforcements keep the enemy tally at this count
	Rocks          int
	Explosives     int

	Enemy         EnemySpec // initial patrolling enemies
	Reinforcement EnemySpec // enemies spawned to refill the tally
	Player        PlayerSpec
	Rock          RockSpec
	Explosive     ExplosiveSpec

	ShotRange          float64
	ShotDamage         int
	ShotNudge          float64
	ProjectileSpeed    float64
	ProjectileLifetime int
	ProjectileEpsilon  float64
	ProjectileSize     float64

	DecisionPeriod int // idle re-decision fires when frame%DecisionPeriod == 0
	FrameWrap      int // frame counter period

	TurnRate      float64 // enemy heading smoothing per tick
	MoveRate      float64 // agent position smoothing per tick
	HeavyMoveRate float64 // rocks and explosives

	WaypointTolerance float64 // degrees of turn error allowed before walking
	WaypointArrival   float64 // distance at which a waypoint counts as reached
}

// DefaultConfig returns the stock arena: four patrolling enemies, five rocks
// and twenty explosives around a player at the centre.
func DefaultConfig() Config {
	return Config{
		Width:  1600,
		Height: 900,
		Seed:   1,

		InitialEnemies: 4,
		TargetEnemies:  4,
		Rocks:          5,
		Explosives:     20,

		Enemy: EnemySpec{
			Radius:          20,
			Color:           color.RGBA{R: 255, A: 255},
			Speed:           5,
			Health:          1,
			VisionAngle:     180,
			DetectRange:     300,
			StopRange:       100,
			WalkRange:       100,
			MinWalkDistance: 35,
		},
		Reinforcement: EnemySpec{
			Radius:          20,
			Color:           color.RGBA{G: 255, A: 255},
			Speed:           5,
			Health:          1,
			VisionAngle:     360,
			DetectRange:     1200,
			StopRange:       50,
			WalkRange:       100,
			MinWalkDistance: 35,
			Alert:           true,
		},
		Player: PlayerSpec{
			Radius:       20,
			Color:        color.RGBA{B: 255, A: 255},
			Speed:        5,
			VisionAngle:  180,
			DetectRange:  300,
			FireCooldown: 20,
			BurstSize:    10,
			BurstSpread:  180,
			AimRate:      0.5,
			PullStrength: 10,
		},
		Rock: RockSpec{
			Radius: 20,
			Color:  color.RGBA{R: 50, G: 50, B: 50, A: 255},
		},
		Explosive: ExplosiveSpec{
			Radius:       20,
			Color:        color.RGBA{R: 255, A: 255},
			Health:       10,
			Power:        100,
			Duration:     30,
			EffectRadius: 200,
		},

		ShotRange:          1000,
		ShotDamage:         5,
		ShotNudge:          1,
		ProjectileSpeed:    20,
		ProjectileLifetime: 60,
		ProjectileEpsilon:  10,
		ProjectileSize:     1,

		DecisionPeriod: 600,
		FrameWrap:      1000,

		TurnRate:      0.05,
		MoveRate:      0.2,
		HeavyMoveRate: 0.02,

		WaypointTolerance: 2,
		WaypointArrival:   2,
	}
}

var errNonPositive = errors.New("must be positive")

// Validate returns the first invalid field, if any.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"Width", float64(c.Width)},
		{"Height", float64(c.Height)},
		{"DecisionPeriod", float64(c.DecisionPeriod)},
		{"FrameWrap", float64(c.FrameWrap)},
		{"ShotRange", c.ShotRange},
		{"ProjectileSpeed", c.ProjectileSpeed},
		{"Explosive.Duration", float64(c.Explosive.Duration)},
		{"Player.BurstSize", float64(c.Player.BurstSize)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config %s=%v: %w", p.name, p.v, errNonPositive)
		}
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"TurnRate", c.TurnRate},
		{"MoveRate", c.MoveRate},
		{"HeavyMoveRate", c.HeavyMoveRate},
		{"Player.AimRate", c.Player.AimRate},
	}
	for _, r := range rates {
		if r.v <= 0 || r.v > 1 {
			return fmt.Errorf("config %s=%v: smoothing rate must be in (0,1]", r.name, r.v)
		}
	}
	if c.InitialEnemies < 0 || c.TargetEnemies < 0 || c.Rocks < 0 || c.Explosives < 0 {
		return errors.New("config: entity counts must not be negative")
	}
	return nil
}
