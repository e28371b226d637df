package game

import (
	"image/color"

	"github.com/Garsondee/Covert-Cue/internal/cue"
)

// CueObject is one cued entity in the demo scene: a shaded disc on the
// ground plane with a covert cue painted over its surface. It doubles as
// the render parameter sink for its own controller, so the per-frame
// hand-off is just a struct write.
type CueObject struct {
	Label      string
	Pos        cue.Vec3
	DrawRadius float64 // visual footprint in world units, independent of the cue radius
	BaseColor  color.RGBA

	Controller *cue.Controller

	// Parameters delivered by the controller this frame; read by the
	// draw pass, untouched while the cue is frozen (controller disabled).
	params cue.FalloffParams
}

// SetCueParams implements cue.ParamSink.
func (o *CueObject) SetCueParams(p cue.FalloffParams) {
	o.params = p
}

// Params returns the most recently delivered falloff parameters.
func (o *CueObject) Params() cue.FalloffParams { return o.params }

// sceneObjectDef is one entry of the demo scene layout.
type sceneObjectDef struct {
	label      string
	x, z       float64
	drawRadius float64
	col        color.RGBA
}

// The demo scene: a spread of dim panels across the plane, dark enough
// that the additive boost reads clearly.
var sceneDefs = []sceneObjectDef{
	{"orb1", -9, 13, 2.0, color.RGBA{R: 70, G: 60, B: 95, A: 255}},
	{"orb2", -3, 17, 2.2, color.RGBA{R: 55, G: 85, B: 70, A: 255}},
	{"orb3", 4, 14, 1.8, color.RGBA{R: 95, G: 70, B: 55, A: 255}},
	{"orb4", 10, 18, 2.4, color.RGBA{R: 60, G: 70, B: 95, A: 255}},
	{"orb5", 0, 8, 1.6, color.RGBA{R: 80, G: 80, B: 60, A: 255}},
}

// initScene builds the cued objects and wires a controller to each. The
// gaze source is injected explicitly; no object reaches for a global.
func (g *Game) initScene() error {
	for _, def := range sceneDefs {
		obj := &CueObject{
			Label:      def.label,
			Pos:        cue.Vec3{X: def.x, Z: def.z},
			DrawRadius: def.drawRadius,
			BaseColor:  def.col,
		}
		ctrl, err := cue.NewController(def.label, g.cfg, g.viewer, obj, g.cueLog)
		if err != nil {
			return err
		}
		ctrl.SetCenter(obj.Pos)
		obj.Controller = ctrl
		g.objects = append(g.objects, obj)
	}
	return nil
}
