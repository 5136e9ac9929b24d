package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Root-Wars/internal/audio"
	"github.com/Garsondee/Root-Wars/internal/geom"
	"github.com/Garsondee/Root-Wars/internal/sim"
)

// hudScale is the integer upscale factor applied to the key legend.
const hudScale = 2

// Game is the ebiten front end: it samples input, ticks the world once per
// frame and draws the arena with the event feed beside it.
type Game struct {
	world      *sim.World
	simLog     *sim.SimLog
	thoughtLog *ThoughtLog
	sound      *audio.SoundManager // nil when muted

	arenaW, arenaH int // playfield; the feed panel sits to the right
	width, height  int

	showVision bool
	showHUD    bool
	paused     bool
	prevKeys   map[ebiten.Key]bool

	status      string // transient HUD message, e.g. clipboard result
	statusTicks int

	hudBuf    *ebiten.Image // legend rendered at 1x, blitted at hudScale
	visionBuf *ebiten.Image // cone fans before tinting
}

// New builds a stock world from cfg. sound may be nil.
func New(cfg sim.Config, sound *audio.SoundManager) (*Game, error) {
	w, err := sim.NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g := &Game{
		world:      w,
		simLog:     sim.NewSimLog(false),
		thoughtLog: NewThoughtLog(),
		sound:      sound,
		arenaW:     cfg.Width,
		arenaH:     cfg.Height,
		width:      cfg.Width + logPanelWidth,
		height:     cfg.Height,
		showVision: true,
		showHUD:    true,
		prevKeys:   make(map[ebiten.Key]bool),
	}
	w.SetLog(g.simLog)
	return g, nil
}

// WindowSize is the full window including the feed panel.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.handleInput()
	if g.statusTicks > 0 {
		g.statusTicks--
	}
	if g.paused {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	in := buildInput(ebiten.IsKeyPressed, mx, my,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	)
	g.tick(in)
	return nil
}

// tick advances the world and fans its events out to the feed and speaker.
func (g *Game) tick(in sim.Input) {
	g.world.Tick(in)
	events := g.world.Events()
	g.thoughtLog.Observe(events)
	if g.sound != nil {
		g.sound.PlayEvents(events)
	}
}

// buildInput converts raw device state into a sim input snapshot.
func buildInput(pressed func(ebiten.Key) bool, mx, my int, left, middle, right bool) sim.Input {
	in := sim.Input{Mouse: geom.Pt(float64(mx), float64(my))}
	if pressed(ebiten.KeyW) {
		in.Keys |= sim.KeyForward
	}
	if pressed(ebiten.KeyS) {
		in.Keys |= sim.KeyBack
	}
	if pressed(ebiten.KeyA) {
		in.Keys |= sim.KeyLeft
	}
	if pressed(ebiten.KeyD) {
		in.Keys |= sim.KeyRight
	}
	if left {
		in.Buttons |= sim.ButtonLeft
	}
	if middle {
		in.Buttons |= sim.ButtonMiddle
	}
	if right {
		in.Buttons |= sim.ButtonRight
	}
	return in
}

// justPressed edge-detects a key against the previous frame.
func (g *Game) justPressed(k ebiten.Key, current map[ebiten.Key]bool) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !g.prevKeys[k]
}

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	// R: rebuild the arena.
	if g.justPressed(ebiten.KeyR, currentKeys) {
		g.reset()
	}
	// V: toggle vision cones.
	if g.justPressed(ebiten.KeyV, currentKeys) {
		g.showVision = !g.showVision
	}
	// H: toggle HUD key legend.
	if g.justPressed(ebiten.KeyH, currentKeys) {
		g.showHUD = !g.showHUD
	}
	// P: pause/resume.
	if g.justPressed(ebiten.KeyP, currentKeys) {
		g.paused = !g.paused
	}
	// C: copy a report of the run to the clipboard.
	if g.justPressed(ebiten.KeyC, currentKeys) {
		if err := g.copyReport(); err != nil {
			g.setStatus(err.Error())
		} else {
			g.setStatus("report copied to clipboard")
		}
	}
	// M: mute/unmute.
	if g.justPressed(ebiten.KeyM, currentKeys) && g.sound != nil {
		if g.sound.Volume() > 0 {
			g.sound.SetVolume(0)
		} else {
			g.sound.SetVolume(1)
		}
	}

	g.prevKeys = currentKeys
}

func (g *Game) reset() {
	g.world.Reset()
	g.thoughtLog.Clear()
	g.thoughtLog.Add(g.world.TickCount(), "--", "world", "arena reset")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = 180
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	g.drawArena(screen)
	g.thoughtLog.Draw(screen, g.arenaW, g.height)
	g.drawStats(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
