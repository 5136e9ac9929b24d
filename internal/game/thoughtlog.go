package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Root-Wars/internal/sim"
)

const (
	logPanelWidth = 300
	logMaxEntries = 60
	logLineHeight = 11
)

// feedColors tints the marker dot by event category.
var feedColors = map[string]color.RGBA{
	"spawn":     {R: 90, G: 200, B: 90, A: 255},
	"combat":    {R: 220, G: 80, B: 70, A: 255},
	"explosion": {R: 255, G: 160, B: 40, A: 255},
	"ai":        {R: 90, G: 140, B: 230, A: 255},
	"input":     {R: 200, G: 200, B: 200, A: 255},
	"world":     {R: 200, G: 90, B: 200, A: 255},
}

// ThoughtEntry is a single line in the event feed.
type ThoughtEntry struct {
	Tick     int
	Label    string // e.g. "E3", "X12"
	Category string
	Message  string
}

// ThoughtLog is a ring buffer of recent events rendered as a side panel.
type ThoughtLog struct {
	entries []ThoughtEntry
	head    int
	count   int
}

// NewThoughtLog creates a feed with a fixed capacity.
func NewThoughtLog() *ThoughtLog {
	return &ThoughtLog{
		entries: make([]ThoughtEntry, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (tl *ThoughtLog) Add(tick int, label, category, msg string) {
	tl.entries[tl.head] = ThoughtEntry{
		Tick:     tick,
		Label:    label,
		Category: category,
		Message:  msg,
	}
	tl.head = (tl.head + 1) % logMaxEntries
	if tl.count < logMaxEntries {
		tl.count++
	}
}

// Observe adds the events worth showing from one tick. Shots, hits and spawns
// are too frequent for the panel.
func (tl *ThoughtLog) Observe(events []sim.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventShot, sim.EventHit, sim.EventSpawn, sim.EventPull:
			continue
		}
		tl.Add(ev.Tick, ev.Agent, ev.Kind.Category(), ev.Describe())
	}
}

// Clear empties the feed.
func (tl *ThoughtLog) Clear() {
	tl.head = 0
	tl.count = 0
}

// Recent returns entries in chronological order (oldest first).
func (tl *ThoughtLog) Recent() []ThoughtEntry {
	result := make([]ThoughtEntry, tl.count)
	for i := 0; i < tl.count; i++ {
		idx := (tl.head - tl.count + i + logMaxEntries) % logMaxEntries
		result[i] = tl.entries[idx]
	}
	return result
}

// Draw renders the feed panel at panelX.
func (tl *ThoughtLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 20, G: 24, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 50, G: 60, B: 90, A: 200}, false)

	entries := tl.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}

	visible := entries[startIdx:]
	recent := 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 34, B: 48, A: 160}, false)
		}
		dot, ok := feedColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, dot, false)

		line := fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
