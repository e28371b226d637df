package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Covert-Cue/internal/cue"
)

// cueShaderSrc is the Kage fragment program for a cued object: a shaded
// disc impostor with the radial cue term added after shading. It is a
// screen-space port of the normative CPU math in internal/cue/falloff.go —
// the falloff formula and the additive compositing must stay in lockstep
// with FalloffParams.Shade.
const cueShaderSrc = `
//kage:unit pixels

package main

var Center vec2      // object center, destination pixels
var ObjectRadius float // visible disc radius, pixels
var CueRadius float    // cue falloff radius, pixels; 0 while suppressed
var Modulation float   // pulse value in [0, 1]
var Boost float        // max additive per-channel boost
var BaseColor vec4     // object albedo

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	d := distance(dstPos.xy, Center)
	if d > ObjectRadius {
		return vec4(0)
	}

	// Standard shading first: sphere-impostor lambert from the disc depth.
	r := d / ObjectRadius
	nz := sqrt(max(1.0-r*r, 0.0))
	lit := BaseColor.rgb * (0.35 + 0.65*nz)

	// Additive covert cue term. CueRadius 0 means suppressed: falloff is
	// forced to 0 and the division is never taken.
	falloff := 0.0
	if CueRadius > 0 {
		falloff = clamp((CueRadius-d)/CueRadius, 0.0, 1.0)
	}
	b := Boost * falloff * Modulation
	clr := min(lit+vec3(b), vec3(1.0))

	// Soft one-pixel silhouette edge.
	alpha := clamp(ObjectRadius-d, 0.0, 1.0)
	return vec4(clr*alpha, alpha)
}
`

// initShader compiles the cue shader once at startup.
func (g *Game) initShader() error {
	s, err := ebiten.NewShader([]byte(cueShaderSrc))
	if err != nil {
		return err
	}
	g.cueShader = s
	return nil
}

// drawCueObject renders one object through the cue shader using the
// parameters its controller delivered this frame.
func (g *Game) drawCueObject(screen *ebiten.Image, obj *CueObject) {
	cx, cy := g.worldToScreen(obj.Pos)
	objPx := obj.DrawRadius * g.worldScale
	p := obj.Params()
	cuePx := p.Radius * g.worldScale

	side := int(objPx*2) + 2
	opts := &ebiten.DrawRectShaderOptions{}
	opts.GeoM.Translate(cx-float64(side)/2, cy-float64(side)/2)
	opts.Uniforms = map[string]any{
		"Center":       []float32{float32(cx), float32(cy)},
		"ObjectRadius": float32(objPx),
		"CueRadius":    float32(cuePx),
		"Modulation":   float32(p.Modulation),
		"Boost":        float32(cue.BoostGain),
		"BaseColor": []float32{
			float32(obj.BaseColor.R) / 255,
			float32(obj.BaseColor.G) / 255,
			float32(obj.BaseColor.B) / 255,
			1,
		},
	}
	screen.DrawRectShader(side, side, g.cueShader, opts)
}
