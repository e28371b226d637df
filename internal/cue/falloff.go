package cue

// BoostGain is the maximum per-channel additive brightness boost (~9.5%).
// It is added to the lit color, never multiplied, so the cue is most visible
// on dark surfaces and fades out naturally near the channel ceiling.
const BoostGain = 0.095

// FalloffParams is the per-frame contract between the controller and the
// render pass: everything a fragment needs to evaluate the radial cue.
// Recomputed every frame, valid only for that frame's draw call.
type FalloffParams struct {
	Center     Vec3    // world-space center of the cue
	Radius     float64 // world units; 0 while suppressed
	Modulation float64 // pulse value in [0, 1]
}

// Falloff returns the normalized radial attenuation for a fragment at the
// given distance from the center: 1 at the center, linearly down to 0 at
// the radius, 0 beyond. Radius 0 means suppressed — every distance is past
// the edge, and the division is never evaluated, so no NaN/Inf can escape.
func (p FalloffParams) Falloff(distance float64) float64 {
	if p.Radius <= 0 {
		return 0
	}
	// The upper clamp is unreachable for distance >= 0 but kept defensively.
	return clamp01((p.Radius - distance) / p.Radius)
}

// Boost returns the additive per-channel brightness term for a fragment at
// world position pos. Falloff and modulation multiply, so either being zero
// fully disables the cue.
func (p FalloffParams) Boost(pos Vec3) float64 {
	return BoostGain * p.Falloff(pos.Sub(p.Center).Length()) * p.Modulation
}

// RGB is a linear color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Shade applies the cue boost to an already fully lit base color for the
// fragment at pos. The boost is uniform across channels; channels saturate
// at 1.
func (p FalloffParams) Shade(base RGB, pos Vec3) RGB {
	b := p.Boost(pos)
	return RGB{
		R: clamp01(base.R + b),
		G: clamp01(base.G + b),
		B: clamp01(base.B + b),
	}
}
