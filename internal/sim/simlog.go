package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event.
type SimLogEntry struct {
	Tick     int
	Agent    string  // label e.g. "E3", "X7", "P", or "--" for world events
	Category string  // spawn, combat, explosion, ai, input, world
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	X, Y     float64 // where it happened
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] E3   ai        state_change     idle → alert
func (e SimLogEntry) String() string {
	v := e.Value
	if v == "" && e.NumVal != 0 {
		v = fmt.Sprintf("%.1f", e.NumVal)
	}
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Agent, e.Category, e.Key, v)
}

// SimLog collects structured events. Unlike the on-screen feed it is
// unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. Without verbose, per-tick shot and hit rows are
// dropped and only coarser events are kept.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Record appends an event.
func (sl *SimLog) Record(ev Event) {
	if !sl.verbose && (ev.Kind == EventShot || ev.Kind == EventHit || ev.Kind == EventPull) {
		return
	}
	sl.Add(ev.Tick, ev.Agent, ev.Kind.Category(), ev.Kind.String(), ev.Value, ev.NumVal)
	last := &sl.entries[len(sl.entries)-1]
	last.X, last.Y = ev.Pos.X, ev.Pos.Y
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, agent, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Agent:    agent,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterAgent returns entries for a specific label.
func (sl *SimLog) FilterAgent(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Agent == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	return formatEntries(sl.entries)
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	return formatEntries(sl.FilterTickRange(fromTick, toTick))
}

func formatEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the world.
func Summary(w *World) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d (frame %d) ---\n", w.TickCount(), w.Frame())

	counts := map[Kind]int{}
	states := map[string]int{}
	exploding := 0
	for _, a := range w.Agents() {
		counts[a.Kind]++
		if a.Kind == KindEnemy {
			states[a.State]++
		}
		if a.Exploding {
			exploding++
		}
	}
	fmt.Fprintf(&sb, "Live: enemies=%d  rocks=%d  explosives=%d (exploding %d)  projectiles=%d\n",
		counts[KindEnemy], counts[KindRock], counts[KindExplosive], exploding, len(w.Projectiles()))

	sb.WriteString("Enemy states: ")
	for _, s := range []EnemyState{EnemyIdle, EnemyAlert, EnemyWalk, EnemyReturn} {
		if n := states[s.String()]; n > 0 {
			fmt.Fprintf(&sb, "%s=%d  ", s, n)
		}
	}
	sb.WriteByte('\n')

	st := w.Stats()
	ratio := 0.0
	if st.Shots > 0 {
		ratio = float64(st.Hits) / float64(st.Shots)
	}
	fmt.Fprintf(&sb, "Shots=%d  hits=%d (%.0f%%)  kills=%d  detonations=%d  chains=%d  spawns=%d\n",
		st.Shots, st.Hits, ratio*100, st.Kills, st.Detonations, st.Chains, st.Spawns)
	return sb.String()
}
