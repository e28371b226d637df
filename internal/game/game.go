package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Covert-Cue/internal/cue"
)

// borderWidth is the pixel gap between the window edge and the playfield.
const borderWidth = 24

// worldScalePx is how many pixels one world unit occupies on screen.
const worldScalePx = 24.0

// Game is the interactive demo: a top-down plane of cued objects, a
// mouse-driven simulated gaze, and the cue engine running once per frame
// strictly before the draw pass.
type Game struct {
	width      int
	height     int
	gameWidth  int // playfield width (log panel takes the rest)
	gameHeight int // playfield height (inside border)
	offX       int
	offY       int
	worldScale float64

	cfg     cue.Config
	cueLog  *cue.Log
	viewer  *Viewer
	objects []*CueObject

	cueShader *ebiten.Shader

	start       time.Time
	cueEnabled  bool
	showHUD     bool
	showOverlay bool
	prevKeys    map[ebiten.Key]bool
}

// New builds the demo. Scene construction fails loudly if any controller
// cannot be wired (bad config, missing gaze source) — the cue is
// meaningless without its inputs.
func New() (*Game, error) {
	battleW := 1280
	battleH := 800
	g := &Game{
		width:       borderWidth + battleW + borderWidth + logPanelWidth,
		height:      borderWidth + battleH + borderWidth,
		gameWidth:   battleW,
		gameHeight:  battleH,
		offX:        borderWidth,
		offY:        borderWidth,
		worldScale:  worldScalePx,
		cfg:         cue.DefaultConfig(),
		cueLog:      cue.NewLog(false),
		start:       time.Now(),
		cueEnabled:  true,
		showHUD:     true,
		showOverlay: true,
		prevKeys:    make(map[ebiten.Key]bool),
	}
	g.viewer = NewViewer(g, cue.Vec3{})
	if err := g.initScene(); err != nil {
		return nil, fmt.Errorf("scene init: %w", err)
	}
	if err := g.initShader(); err != nil {
		return nil, fmt.Errorf("shader init: %w", err)
	}
	return g, nil
}

// Update runs one frame: input, gaze refresh, then every controller, in
// that order, so the draw pass observes this frame's parameters.
func (g *Game) Update() error {
	g.handleInput()
	g.viewer.Refresh()

	t := time.Since(g.start).Seconds()
	for _, obj := range g.objects {
		obj.Controller.SetCenter(obj.Pos)
		obj.Controller.Update(t)
	}
	return nil
}

// handleInput processes edge-triggered key toggles.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// E: master toggle. Disabled controllers freeze their last parameters.
	if pressed(ebiten.KeyE) {
		g.cueEnabled = !g.cueEnabled
		for _, obj := range g.objects {
			obj.Controller.SetEnabled(g.cueEnabled)
		}
	}
	// O: threshold cone overlay.
	if pressed(ebiten.KeyO) {
		g.showOverlay = !g.showOverlay
	}
	// H: HUD legend.
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// C: copy debug report to the clipboard.
	if pressed(ebiten.KeyC) {
		g.copyDebugReport()
	}

	g.prevKeys = currentKeys
}

// Draw renders the plane, the cued objects through the cue shader, the
// gaze overlay and the HUD. Controllers have already run this frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})
	g.drawGrid(screen)

	for _, obj := range g.objects {
		g.drawCueObject(screen, obj)
	}
	g.drawObjectReadouts(screen)
	g.drawGazeOverlay(screen)
	g.drawEventFeed(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}

	// Playfield border frame.
	ox := float32(g.offX)
	oy := float32(g.offY)
	vector.StrokeRect(screen, ox-1, oy-1, float32(g.gameWidth)+2, float32(g.gameHeight)+2, 2.0,
		color.RGBA{R: 65, G: 90, B: 65, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.1fs", time.Since(g.start).Seconds()), g.offX+6, g.offY+6)
}

// drawGrid paints faint ground lines every 5 world units.
func (g *Game) drawGrid(screen *ebiten.Image) {
	col := color.RGBA{R: 26, G: 30, B: 26, A: 255}
	step := 5.0 * g.worldScale
	for x := float64(g.offX); x <= float64(g.offX+g.gameWidth); x += step {
		vector.StrokeLine(screen, float32(x), float32(g.offY), float32(x), float32(g.offY+g.gameHeight), 1, col, false)
	}
	for y := float64(g.offY); y <= float64(g.offY+g.gameHeight); y += step {
		vector.StrokeLine(screen, float32(g.offX), float32(y), float32(g.offX+g.gameWidth), float32(y), 1, col, false)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// worldToScreen maps a ground-plane point to playfield pixels. World +X is
// screen right, world +Z is screen up; the world origin sits at the
// playfield's bottom centre.
func (g *Game) worldToScreen(p cue.Vec3) (float64, float64) {
	sx := float64(g.offX) + float64(g.gameWidth)/2 + p.X*g.worldScale
	sy := float64(g.offY) + float64(g.gameHeight) - p.Z*g.worldScale
	return sx, sy
}

// screenToWorld inverts worldToScreen onto the Y=0 plane.
func (g *Game) screenToWorld(sx, sy float64) cue.Vec3 {
	return cue.Vec3{
		X: (sx - float64(g.offX) - float64(g.gameWidth)/2) / g.worldScale,
		Z: (float64(g.offY) + float64(g.gameHeight) - sy) / g.worldScale,
	}
}

// rotateY rotates a direction around the world Y axis by deg degrees.
func rotateY(v cue.Vec3, deg float64) cue.Vec3 {
	r := deg * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	return cue.Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
