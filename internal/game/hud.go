package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Covert-Cue/internal/cue"
)

const (
	logPanelWidth = 320
	logLineHeight = 14
	feedMaxLines  = 40
)

// drawGazeOverlay paints the viewer, the gaze ray, and the foveal
// threshold cone (two rays at ±threshold around the forward direction).
// Everything inside the cone is a candidate for suppression once the
// smoothed angle settles.
func (g *Game) drawGazeOverlay(screen *ebiten.Image) {
	vx, vy := g.worldToScreen(g.viewer.Pos)
	vector.DrawFilledCircle(screen, float32(vx), float32(vy), 5, color.RGBA{R: 240, G: 240, B: 240, A: 255}, true)

	rayLen := 30.0 // world units
	tip := g.viewer.Pos.Add(g.viewer.Forward.Scale(rayLen))
	tx, ty := g.worldToScreen(tip)
	vector.StrokeLine(screen, float32(vx), float32(vy), float32(tx), float32(ty), 1.5,
		color.RGBA{R: 230, G: 230, B: 120, A: 200}, true)

	if !g.showOverlay {
		return
	}
	for _, sign := range []float64{-1, 1} {
		dir := rotateY(g.viewer.Forward, sign*g.cfg.ThresholdDeg)
		ex, ey := g.worldToScreen(g.viewer.Pos.Add(dir.Scale(rayLen)))
		vector.StrokeLine(screen, float32(vx), float32(vy), float32(ex), float32(ey), 1,
			color.RGBA{R: 120, G: 200, B: 230, A: 130}, true)
	}
}

// drawObjectReadouts labels each object with its state and smoothed angle.
func (g *Game) drawObjectReadouts(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for _, obj := range g.objects {
		sx, sy := g.worldToScreen(obj.Pos)
		y := int(sy + obj.DrawRadius*g.worldScale + 14)

		line := obj.Label
		if avg, ok := obj.Controller.SmoothedAngle(); ok {
			line = fmt.Sprintf("%s %.0f° %s", obj.Label, avg, obj.Controller.State())
		}
		col := color.RGBA{R: 150, G: 220, B: 150, A: 255}
		if obj.Controller.State() == cue.CueSuppressed {
			col = color.RGBA{R: 220, G: 150, B: 150, A: 255}
		}
		text.Draw(screen, line, face, int(sx)-len(line)*7/2, y, col)
	}
}

// drawEventFeed renders the tail of the cue log in the right-hand panel.
func (g *Game) drawEventFeed(screen *ebiten.Image) {
	panelX := g.offX + g.gameWidth + g.offX
	vector.DrawFilledRect(screen, float32(panelX), 0, logPanelWidth, float32(g.height),
		color.RGBA{R: 16, G: 18, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "cue events", panelX+8, 6)

	entries := g.cueLog.Entries()
	start := 0
	if len(entries) > feedMaxLines {
		start = len(entries) - feedMaxLines
	}
	y := 24
	for _, e := range entries[start:] {
		ebitenutil.DebugPrintAt(screen, e.String(), panelX+8, y)
		y += logLineHeight
	}
}

// drawHUD renders the key legend and global cue status.
func (g *Game) drawHUD(screen *ebiten.Image) {
	status := "enabled"
	if !g.cueEnabled {
		status = "disabled (frozen)"
	}
	lines := []string{
		fmt.Sprintf("cue: %s   threshold: %.0f°   window: %d   pulse: %.2fs",
			status, g.cfg.ThresholdDeg, g.cfg.WindowCapacity, g.cfg.PulsePeriod),
		fmt.Sprintf("gaze yaw: %+.1f°", g.viewer.YawDeg()),
		"",
		"mouse: look   WASD: move   E: toggle cue   O: threshold cone   H: hud   C: copy report",
	}
	y := g.height - len(lines)*logLineHeight - 6
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, g.offX+4, y)
		y += logLineHeight
	}
}
