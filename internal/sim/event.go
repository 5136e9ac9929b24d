package sim

import (
	"fmt"

	"github.com/Garsondee/Root-Wars/internal/geom"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventSpawn    EventKind = iota // body added to the live set
	EventShot                      // hitscan fired
	EventHit                       // body took damage
	EventKill                      // mortal body removed by damage
	EventDetonate                  // explosive area effect applied
	EventChain                     // explosive set off by a neighbour
	EventDespawn                   // blast animation finished
	EventState                     // enemy controller changed branch
	EventPatrol                    // enemy picked a new waypoint
	EventGlance                    // enemy nudged its heading while idle
	EventArrive                    // enemy reached its waypoint
	EventBurst                     // player fired a burst
	EventPull                      // player pulled an explosive
	EventReset                     // world rebuilt
)

var eventNames = [...]struct{ category, key string }{
	EventSpawn:    {"spawn", "spawn"},
	EventShot:     {"combat", "shot"},
	EventHit:      {"combat", "hit"},
	EventKill:     {"combat", "kill"},
	EventDetonate: {"explosion", "detonate"},
	EventChain:    {"explosion", "chain"},
	EventDespawn:  {"explosion", "despawn"},
	EventState:    {"ai", "state_change"},
	EventPatrol:   {"ai", "new_walk_point"},
	EventGlance:   {"ai", "glance"},
	EventArrive:   {"ai", "arrive"},
	EventBurst:    {"input", "burst"},
	EventPull:     {"input", "pull"},
	EventReset:    {"world", "reset"},
}

// Category is the coarse grouping used by SimLog filters.
func (k EventKind) Category() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k].category
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k].key
}

// Event is a single structured occurrence, stamped with the tick it happened on.
type Event struct {
	Tick   int
	Kind   EventKind
	Agent  string // label, or "--" for world events
	Pos    geom.Point
	Value  string
	NumVal float64
}

// Describe renders a short human-readable line for on-screen feeds.
func (e Event) Describe() string {
	switch e.Kind {
	case EventState:
		return e.Value
	case EventChain:
		return "set off by " + e.Value
	case EventPatrol:
		return fmt.Sprintf("walk to (%.0f,%.0f)", e.Pos.X, e.Pos.Y)
	case EventKill:
		return "down"
	case EventDetonate:
		return "BOOM"
	case EventBurst:
		return fmt.Sprintf("burst x%.0f", e.NumVal)
	default:
		if e.NumVal != 0 {
			return fmt.Sprintf("%s %.0f", e.Kind, e.NumVal)
		}
		return e.Kind.String()
	}
}
