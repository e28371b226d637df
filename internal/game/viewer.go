package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Covert-Cue/internal/cue"
)

// viewerMoveSpeed is the viewer walk speed in world units per tick.
const viewerMoveSpeed = 0.08

// Viewer is the demo's simulated gaze source: a point on the XZ ground
// plane whose forward direction tracks the mouse cursor. It stands in for
// the eye tracker the engine would consume in production; the controllers
// only ever see the GazeSource interface.
type Viewer struct {
	Pos     cue.Vec3 // world position on the ground plane
	Forward cue.Vec3 // unit direction, refreshed every frame before updates

	g *Game
}

// NewViewer places the viewer at a world position looking toward +Z.
func NewViewer(g *Game, pos cue.Vec3) *Viewer {
	return &Viewer{Pos: pos, Forward: cue.Vec3{Z: 1}, g: g}
}

// Gaze implements cue.GazeSource.
func (v *Viewer) Gaze() cue.GazeSample {
	return cue.GazeSample{Origin: v.Pos, Forward: v.Forward}
}

// Refresh reads input and recomputes position and forward direction. It
// must run before any controller update so every controller sees this
// frame's gaze. A cursor sitting exactly on the viewer keeps the previous
// direction rather than degenerating to a zero vector.
func (v *Viewer) Refresh() {
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Pos.Z += viewerMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Pos.Z -= viewerMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.Pos.X -= viewerMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.Pos.X += viewerMoveSpeed
	}

	mx, my := ebiten.CursorPosition()
	target := v.g.screenToWorld(float64(mx), float64(my))
	dir, ok := target.Sub(v.Pos).Normalize()
	if ok {
		v.Forward = dir
	}
}

// YawDeg returns the forward direction's heading on the ground plane in
// degrees, for the HUD.
func (v *Viewer) YawDeg() float64 {
	return math.Atan2(v.Forward.X, v.Forward.Z) * 180 / math.Pi
}
