package main

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Garsondee/Root-Wars/internal/geom"
	"github.com/Garsondee/Root-Wars/internal/sim"
)

// Scripted player: sweep the aim around the centre while holding fire,
// pull an explosive in periodically and take a few steps forward.
const (
	aimRadius     = 250
	aimPeriod     = 360 // ticks for a full sweep
	pullEvery     = 300
	pullTicks     = 40
	strideEvery   = 120
	strideTicks   = 20
	strideHoldOff = 60 // stride begins this many ticks into each cycle
)

type runStats struct {
	runIndex int
	seed     int64

	firstShotTick      int
	firstAlertTick     int
	firstKillTick      int
	firstDetonateTick  int
	firstChainTick     int
	firstReinforceTick int

	stats        sim.Stats
	stateChanges int
	alerts       int
	walkPoints   int
	glances      int
	pulls        int
	killed       map[string]struct{}
	survivors    int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scripted bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&scripted, "scripted", true, "drive the player with the scripted sweep (false = idle player)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Arena Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d scripted=%v\n\n", runs, ticks, seedBase, seedStep, scripted)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runArena(i+1, seed, ticks, scripted)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runArena(runIndex int, seed int64, ticks int, scripted bool) runStats {
	ts := sim.NewTestSim(sim.WithStockArena(), sim.WithSeed(seed))
	cfg := ts.World.Config()
	for t := 0; t < ticks; t++ {
		in := sim.Input{}
		if scripted {
			in = scriptInput(t, cfg.Width, cfg.Height)
		}
		ts.Step(in)
	}

	entries := ts.SimLog.Entries()
	killed := map[string]struct{}{}
	for _, e := range entries {
		if e.Category == "combat" && e.Key == "kill" {
			killed[e.Agent] = struct{}{}
		}
	}

	return runStats{
		runIndex:           runIndex,
		seed:               seed,
		firstShotTick:      firstTick(entries, "input", "burst", ""),
		firstAlertTick:     firstTick(entries, "ai", "state_change", "→ alert"),
		firstKillTick:      firstTick(entries, "combat", "kill", ""),
		firstDetonateTick:  firstTick(entries, "explosion", "detonate", ""),
		firstChainTick:     firstTick(entries, "explosion", "chain", ""),
		firstReinforceTick: firstReinforcement(entries),
		stats:              ts.World.Stats(),
		stateChanges:       ts.SimLog.CountCategory("ai", "state_change"),
		alerts:             countContaining(entries, "ai", "state_change", "→ alert"),
		walkPoints:         ts.SimLog.CountCategory("ai", "new_walk_point"),
		glances:            ts.SimLog.CountCategory("ai", "glance"),
		pulls:              ts.SimLog.CountCategory("input", "pull"),
		killed:             killed,
		survivors:          len(ts.Enemies()),
	}
}

// scriptInput is the scripted player's input for tick t on a w×h screen.
func scriptInput(t, w, h int) sim.Input {
	theta := 2 * math.Pi * float64(t%aimPeriod) / aimPeriod
	centre := geom.Pt(float64(w/2), float64(h/2))
	in := sim.Input{
		Mouse:   centre.Add(geom.Pt(math.Cos(theta)*aimRadius, math.Sin(theta)*aimRadius)),
		Buttons: sim.ButtonLeft,
	}
	if t%pullEvery < pullTicks {
		in.Buttons |= sim.ButtonRight
	}
	if c := t % strideEvery; c >= strideHoldOff && c < strideHoldOff+strideTicks {
		in.Keys |= sim.KeyForward
	}
	return in
}

func firstTick(entries []sim.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// firstReinforcement is the first enemy spawn after tick 0; the stock
// arena spawns its initial enemies before any tick runs.
func firstReinforcement(entries []sim.SimLogEntry) int {
	for _, e := range entries {
		if e.Category == "spawn" && e.Value == "enemy" && e.Tick > 0 {
			return e.Tick
		}
	}
	return -1
}

func countContaining(entries []sim.SimLogEntry, category, key, contains string) int {
	n := 0
	for _, e := range entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, contains) {
			n++
		}
	}
	return n
}

func hitRate(st sim.Stats) float64 {
	if st.Shots == 0 {
		return 0
	}
	return float64(st.Hits) / float64(st.Shots) * 100
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_burst=%d first_alert=%d first_kill=%d first_detonate=%d first_chain=%d first_reinforce=%d\n",
		rs.firstShotTick, rs.firstAlertTick, rs.firstKillTick, rs.firstDetonateTick, rs.firstChainTick, rs.firstReinforceTick)
	fmt.Printf("combat: shots=%d hits=%d (%.1f%%) kills=%d survivors=%d\n",
		rs.stats.Shots, rs.stats.Hits, hitRate(rs.stats), rs.stats.Kills, rs.survivors)
	fmt.Printf("explosions: detonations=%d chains=%d pulls=%d\n",
		rs.stats.Detonations, rs.stats.Chains, rs.pulls)
	fmt.Printf("ai: state_change=%d alerts=%d new_walk_point=%d glance=%d spawns=%d\n",
		rs.stateChanges, rs.alerts, rs.walkPoints, rs.glances, rs.stats.Spawns)
	fmt.Printf("killed_labels: %s\n", joinSet(rs.killed))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalShots := 0
	totalHits := 0
	totalKills := 0
	totalDetonations := 0
	totalChains := 0
	totalAlerts := 0
	totalWalk := 0

	alertTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	detonateTicks := make([]int, 0, len(all))
	chainTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalShots += rs.stats.Shots
		totalHits += rs.stats.Hits
		totalKills += rs.stats.Kills
		totalDetonations += rs.stats.Detonations
		totalChains += rs.stats.Chains
		totalAlerts += rs.alerts
		totalWalk += rs.walkPoints
		if rs.firstAlertTick >= 0 {
			alertTicks = append(alertTicks, rs.firstAlertTick)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.firstDetonateTick >= 0 {
			detonateTicks = append(detonateTicks, rs.firstDetonateTick)
		}
		if rs.firstChainTick >= 0 {
			chainTicks = append(chainTicks, rs.firstChainTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: shots=%.1f hits=%.1f kills=%.1f detonations=%.1f chains=%.1f alerts=%.1f new_walk_point=%.1f\n",
		avg(totalShots, len(all)), avg(totalHits, len(all)), avg(totalKills, len(all)),
		avg(totalDetonations, len(all)), avg(totalChains, len(all)), avg(totalAlerts, len(all)), avg(totalWalk, len(all)))
	fmt.Printf("overall_hit_rate=%.1f%%\n", hitRate(sim.Stats{Shots: totalShots, Hits: totalHits}))
	fmt.Printf("phase_marker_avg_ticks: first_alert=%s first_kill=%s first_detonate=%s first_chain=%s\n",
		avgTickString(alertTicks), avgTickString(killTicks), avgTickString(detonateTicks), avgTickString(chainTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
