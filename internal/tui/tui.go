// Package tui renders the arena in a terminal with tcell. Terminals report
// key presses rather than held keys, so each press latches its control for a
// few ticks and auto-repeat keeps it held.
package tui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Root-Wars/internal/audio"
	"github.com/Garsondee/Root-Wars/internal/geom"
	"github.com/Garsondee/Root-Wars/internal/sim"
)

const (
	frameInterval = 16 * time.Millisecond
	holdTicks     = 8    // ticks a key press stays held
	aimStep       = 10.0 // degrees per arrow press
	aimDistance   = 200  // screen units from centre to the virtual cursor
)

// control is one latched input.
type control int

const (
	ctlForward control = iota
	ctlBack
	ctlLeft
	ctlRight
	ctlFire
	ctlPull
	ctlCount
)

// App drives a World from a tcell screen.
type App struct {
	screen tcell.Screen
	world  *sim.World
	sound  *audio.SoundManager

	held   [ctlCount]int // ticks left per control
	aim    float64       // virtual cursor bearing, degrees
	paused bool
}

// New opens the terminal and builds a world from cfg. sound may be nil.
func New(cfg sim.Config, sound *audio.SoundManager) (*App, error) {
	world, err := sim.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: init screen: %w", err)
	}
	return NewWithScreen(screen, world, sound), nil
}

// NewWithScreen wraps an already initialised screen.
func NewWithScreen(screen tcell.Screen, world *sim.World, sound *audio.SoundManager) *App {
	return &App{screen: screen, world: world, sound: sound}
}

// Close restores the terminal.
func (a *App) Close() {
	a.screen.Fini()
}

// Run ticks and draws at ~60 FPS until the user quits.
func (a *App) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(a.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.step()
			a.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalised or done
// is closed.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one terminal event; false means quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.aim = geom.WrapDegrees(a.aim - aimStep)
		case tcell.KeyRight:
			a.aim = geom.WrapDegrees(a.aim + aimStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				a.held[ctlForward] = holdTicks
			case 's':
				a.held[ctlBack] = holdTicks
			case 'a':
				a.held[ctlLeft] = holdTicks
			case 'd':
				a.held[ctlRight] = holdTicks
			case ' ':
				a.held[ctlFire] = holdTicks
			case 'e':
				a.held[ctlPull] = holdTicks
			case 'r':
				a.world.Reset()
			case 'p':
				a.paused = !a.paused
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// input builds this tick's snapshot from the latches and counts them down.
func (a *App) input() sim.Input {
	cfg := a.world.Config()
	centre := geom.Pt(float64(cfg.Width/2), float64(cfg.Height/2))
	in := sim.Input{Mouse: centre.Add(geom.MoveDir(a.aim, aimDistance))}

	keys := [...]sim.Keys{ctlForward: sim.KeyForward, ctlBack: sim.KeyBack, ctlLeft: sim.KeyLeft, ctlRight: sim.KeyRight}
	for c, k := range keys {
		if a.held[c] > 0 {
			in.Keys |= k
		}
	}
	if a.held[ctlFire] > 0 {
		in.Buttons |= sim.ButtonLeft
	}
	if a.held[ctlPull] > 0 {
		in.Buttons |= sim.ButtonRight
	}
	for i := range a.held {
		if a.held[i] > 0 {
			a.held[i]--
		}
	}
	return in
}

func (a *App) step() {
	if a.paused {
		return
	}
	a.world.Tick(a.input())
	if a.sound != nil {
		a.sound.PlayEvents(a.world.Events())
	}
}

// toCell maps a screen-space point to a terminal cell.
func toCell(p geom.Point, w, h, cols, rows int) (int, int, bool) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor(p.X * float64(cols) / float64(w)))
	y := int(math.Floor(p.Y * float64(rows) / float64(h)))
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// glyph is the rune an agent is drawn with.
func glyph(v sim.AgentView) rune {
	switch v.Kind {
	case sim.KindPlayer:
		return '@'
	case sim.KindEnemy:
		if v.State == sim.EnemyAlert.String() {
			return 'E'
		}
		return 'e'
	case sim.KindRock:
		return '#'
	case sim.KindExplosive:
		if v.Exploding {
			return '*'
		}
		return 'x'
	default:
		return '?'
	}
}

func (a *App) draw() {
	a.screen.Clear()
	cols, rows := a.screen.Size()
	cfg := a.world.Config()
	off := a.world.CameraOffset()
	// Row 0 is the status line.
	fieldRows := rows - 1

	put := func(p geom.Point, r rune, st tcell.Style) {
		if x, y, ok := toCell(p.Add(off), cfg.Width, cfg.Height, cols, fieldRows); ok {
			a.screen.SetContent(x, y+1, r, nil, st)
		}
	}

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, p := range a.world.Projectiles() {
		put(p.Pos, '·', dim)
	}
	for _, v := range a.world.Agents() {
		st := tcell.StyleDefault.Foreground(rgb(v.DisplayColor()))
		if v.Kind == sim.KindExplosive && v.Exploding {
			// Blast ring at the current radius.
			for deg := 0.0; deg < 360; deg += 15 {
				put(v.Pos.Add(geom.MoveDir(deg, v.Radius)), '+', tcell.StyleDefault.Foreground(tcell.ColorOrange))
			}
		}
		put(v.Pos, glyph(v), st)
	}
	if a.world.Player != nil {
		cursor := a.world.Player.Pos.Add(geom.MoveDir(a.aim, aimDistance))
		put(cursor, '+', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	}

	a.drawStatus(cols)
	a.screen.Show()
}

func (a *App) drawStatus(cols int) {
	st := a.world.Stats()
	line := fmt.Sprintf(" T=%d enemies=%d kills=%d shots=%d hits=%d booms=%d  wasd move  ←/→ aim  space fire  e pull  r reset  p pause  q quit",
		a.world.TickCount(), a.world.EnemyTally(), st.Kills, st.Shots, st.Hits, st.Detonations)
	if a.paused {
		line = " [PAUSED]" + line
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		a.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		a.screen.SetContent(x, 0, ' ', nil, style)
	}
}
