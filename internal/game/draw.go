package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Root-Wars/internal/geom"
	"github.com/Garsondee/Root-Wars/internal/sim"
)

const (
	gridSpacing = 80
	coneSteps   = 24
	traceLength = 14  // drawn length of a projectile streak
	anchorDim   = 140 // walk-range ring is the body colour darkened by this
	anchorAlpha = 90
)

var (
	gridColor    = color.RGBA{R: 26, G: 28, B: 36, A: 255}
	alertTint    = color.RGBA{R: 255, G: 90, B: 70, A: 255}
	calmTint     = color.RGBA{R: 255, G: 230, B: 140, A: 255}
	blastRing    = color.RGBA{R: 255, G: 170, B: 60, A: 200}
	traceColor   = color.RGBA{R: 255, G: 250, B: 200, A: 230}
	headingColor = color.RGBA{R: 230, G: 230, B: 255, A: 255}
)

// worldToScreen applies the camera offset.
func (g *Game) worldToScreen(p geom.Point) (float32, float32) {
	off := g.world.CameraOffset()
	return float32(p.X + off.X), float32(p.Y + off.Y)
}

func (g *Game) drawArena(screen *ebiten.Image) {
	off := g.world.CameraOffset()
	g.drawGrid(screen, off)

	agents := g.world.Agents()
	if g.showVision {
		g.drawVisionCones(screen, agents)
	}

	for _, a := range agents {
		x, y := g.worldToScreen(a.Pos)
		switch a.Kind {
		case sim.KindEnemy:
			ax, ay := g.worldToScreen(a.Anchor)
			vector.StrokeCircle(screen, ax, ay, float32(a.WalkRange), 1, anchorRing(a), true)
			vector.FillCircle(screen, x, y, float32(a.Radius), a.DisplayColor(), true)
			g.drawHeading(screen, a)
			ebitenutil.DebugPrintAt(screen, a.Label, int(x)-6, int(y)-int(a.Radius)-16)
		case sim.KindExplosive:
			vector.FillCircle(screen, x, y, float32(a.Radius), a.Color, true)
			if a.Exploding {
				vector.StrokeCircle(screen, x, y, float32(a.Radius), 2, blastRing, true)
			}
		case sim.KindRock:
			vector.FillCircle(screen, x, y, float32(a.Radius), a.Color, true)
			vector.StrokeCircle(screen, x, y, float32(a.Radius), 1, color.RGBA{R: 90, G: 90, B: 90, A: 255}, true)
		case sim.KindPlayer:
			vector.FillCircle(screen, x, y, float32(a.Radius), a.Color, true)
			g.drawHeading(screen, a)
		}
	}

	for _, p := range g.world.Projectiles() {
		g.drawTrace(screen, p)
	}

	mx, my := ebiten.CursorPosition()
	if mx < g.arenaW {
		cx, cy := float32(mx), float32(my)
		vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, headingColor, false)
		vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, headingColor, false)
	}
}

// anchorRing is the colour of an enemy's walk-range circle.
func anchorRing(a sim.AgentView) color.RGBA {
	c := sim.SubBrightness(a.Color, anchorDim)
	c.A = anchorAlpha
	return c
}

// drawGrid scrolls a background grid with the camera so movement reads.
func (g *Game) drawGrid(screen *ebiten.Image, off geom.Point) {
	sx := float32(int(off.X) % gridSpacing)
	sy := float32(int(off.Y) % gridSpacing)
	w, h := float32(g.arenaW), float32(g.arenaH)
	for x := sx - gridSpacing; x <= w; x += gridSpacing {
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for y := sy - gridSpacing; y <= h; y += gridSpacing {
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}
}

func (g *Game) drawHeading(screen *ebiten.Image, a sim.AgentView) {
	x, y := g.worldToScreen(a.Pos)
	tip := a.Pos.Add(geom.MoveDir(a.Heading, a.Radius+8))
	tx, ty := g.worldToScreen(tip)
	vector.StrokeLine(screen, x, y, tx, ty, 2, headingColor, true)
}

func (g *Game) drawTrace(screen *ebiten.Image, p sim.ProjectileView) {
	x, y := g.worldToScreen(p.Pos)
	d := geom.Distance(p.Pos, p.Target)
	if d == 0 {
		return
	}
	back := p.Pos.Sub(p.Target)
	if d > traceLength {
		back = back.Scale(traceLength / d)
	}
	bx, by := g.worldToScreen(p.Pos.Add(back))
	vector.StrokeLine(screen, bx, by, x, y, float32(p.Size)+1, traceColor, true)
}

// drawVisionCones draws solid white fans into an offscreen buffer and
// composites them with a tint at low opacity, calm and alert enemies in
// separate passes. Overlapping cones do not blow out.
func (g *Game) drawVisionCones(screen *ebiten.Image, agents []sim.AgentView) {
	if g.visionBuf == nil {
		g.visionBuf = ebiten.NewImage(g.arenaW, g.arenaH)
	}
	for _, alert := range []bool{false, true} {
		buf := g.visionBuf
		buf.Clear()
		drawn := false
		for _, a := range agents {
			if a.Kind != sim.KindEnemy || (a.State == sim.EnemyAlert.String()) != alert {
				continue
			}
			g.fillCone(buf, a)
			drawn = true
		}
		if !drawn {
			continue
		}
		opts := &ebiten.DrawImageOptions{}
		if alert {
			opts.ColorScale.ScaleWithColor(alertTint)
		} else {
			opts.ColorScale.ScaleWithColor(calmTint)
		}
		opts.ColorScale.ScaleAlpha(0.12)
		screen.DrawImage(buf, opts)
	}
}

func (g *Game) fillCone(buf *ebiten.Image, a sim.AgentView) {
	half := a.Vision.Angle / 2
	x, y := g.worldToScreen(a.Pos)

	var path vector.Path
	path.MoveTo(x, y)
	for i := 0; i <= coneSteps; i++ {
		deg := a.Heading - half + a.Vision.Angle*float64(i)/coneSteps
		px, py := g.worldToScreen(a.Pos.Add(geom.MoveDir(deg, a.Vision.Range)))
		path.LineTo(px, py)
	}
	path.Close()
	vector.FillPath(buf, &path, &vector.FillOptions{}, &vector.DrawPathOptions{AntiAlias: true})
}

// drawStats prints the running counters along the top of the arena.
func (g *Game) drawStats(screen *ebiten.Image) {
	st := g.world.Stats()
	line := fmt.Sprintf("T=%d  enemies=%d  kills=%d  shots=%d  hits=%d  booms=%d  chains=%d",
		g.world.TickCount(), g.world.EnemyTally(), st.Kills, st.Shots, st.Hits, st.Detonations, st.Chains)
	if g.paused {
		line = "[PAUSED]  " + line
	}
	text.Draw(screen, line, basicfont.Face7x13, 10, 20, color.White)
	if g.statusTicks > 0 {
		text.Draw(screen, g.status, basicfont.Face7x13, 10, 38, color.RGBA{R: 255, G: 220, B: 120, A: 255})
	}
}

// drawHUD renders the key legend at 1x into hudBuf, then blits it scaled.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"WASD move   mouse aim",
		"LMB fire    RMB pull explosive",
		"R reset  P pause  V cones",
		"C copy report  M mute  H hide",
	}

	const lineH = 12
	const charW = 6
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	if g.hudBuf == nil {
		g.hudBuf = ebiten.NewImage(g.arenaW/hudScale, g.arenaH/hudScale)
	}
	bx := float32(4)
	by := float32(g.arenaH/hudScale) - boxH - 4

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH, color.RGBA{R: 6, G: 8, B: 14, A: 210}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 70, B: 110, A: 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, int(bx)+padX, int(by)+padY+i*lineH)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}
