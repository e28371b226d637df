package cue

import (
	"math"
	"sort"
)

// Keyframe is one point of a pulse response curve: at phase seconds into the
// cycle the modulation is Value.
type Keyframe struct {
	Phase float64 // seconds, within [0, period]
	Value float64 // modulation, within [0, 1]
}

// Curve maps a phase in [0, period] to a modulation scalar in [0, 1] by
// linear interpolation between keyframes. The shape is free; only the
// domain and range are constrained.
type Curve struct {
	keys []Keyframe
}

// NewCurve builds a curve from keyframes. Keys are sorted by phase and
// values clamped to [0, 1]; at least one keyframe is required (a single
// keyframe yields a constant curve).
func NewCurve(keys ...Keyframe) Curve {
	ks := make([]Keyframe, len(keys))
	copy(ks, keys)
	sort.Slice(ks, func(i, j int) bool { return ks[i].Phase < ks[j].Phase })
	for i := range ks {
		ks[i].Value = clamp01(ks[i].Value)
	}
	return Curve{keys: ks}
}

// Eval returns the interpolated value at the given phase. Phases before the
// first or after the last keyframe clamp to the end values.
func (c Curve) Eval(phase float64) float64 {
	if len(c.keys) == 0 {
		return 0
	}
	if phase <= c.keys[0].Phase {
		return c.keys[0].Value
	}
	last := c.keys[len(c.keys)-1]
	if phase >= last.Phase {
		return last.Value
	}
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Phase > phase }) - 1
	a, b := c.keys[i], c.keys[i+1]
	span := b.Phase - a.Phase
	if span <= 0 {
		return b.Value
	}
	t := (phase - a.Phase) / span
	return a.Value + (b.Value-a.Value)*t
}

// TriangleCurve is the default shipped pulse shape: 0 at the cycle ends,
// peaking at 1 exactly at period/2.
func TriangleCurve(period float64) Curve {
	return NewCurve(
		Keyframe{Phase: 0, Value: 0},
		Keyframe{Phase: period / 2, Value: 1},
		Keyframe{Phase: period, Value: 0},
	)
}

// SmoothPulseCurve is a softer alternative: a smoothstep rise to 1 at
// period/2 and a mirrored fall, sampled into keyframes.
func SmoothPulseCurve(period float64) Curve {
	const steps = 16
	keys := make([]Keyframe, 0, steps+1)
	for i := 0; i <= steps; i++ {
		phase := period * float64(i) / steps
		// Triangle ramp 0→1→0, then smoothstep it.
		t := 1 - math.Abs(2*phase/period-1)
		keys = append(keys, Keyframe{Phase: phase, Value: t * t * (3 - 2*t)})
	}
	return NewCurve(keys...)
}

// PulseGenerator turns elapsed time into a repeating [0,1] modulation
// scalar. The phase is derived from the clock with a modulo, not counted
// per frame, so playback speed is identical across frame rates.
type PulseGenerator struct {
	period float64
	curve  Curve
}

// NewPulseGenerator creates a generator with the given cycle period in
// seconds and response curve. period must be > 0 (validated upstream).
func NewPulseGenerator(period float64, curve Curve) *PulseGenerator {
	return &PulseGenerator{period: period, curve: curve}
}

// Phase maps elapsed seconds into [0, period).
func (p *PulseGenerator) Phase(t float64) float64 {
	return math.Mod(t, p.period)
}

// Modulation evaluates the response curve at the current phase, clamped
// to [0, 1].
func (p *PulseGenerator) Modulation(t float64) float64 {
	return clamp01(p.curve.Eval(p.Phase(t)))
}

// Period returns the cycle period in seconds.
func (p *PulseGenerator) Period() float64 { return p.period }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
