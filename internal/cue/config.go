package cue

import "fmt"

// Tuning defaults. The threshold approximates the foveal cone; the radius
// range (2–3 world units) was settled empirically.
const (
	DefaultThresholdDeg   = 15.0
	DefaultWindowCapacity = 5
	DefaultPulsePeriod    = 0.2 // seconds
	DefaultBaseRadius     = 2.5 // world units
)

// Config is the per-object tuning surface. It is read at controller
// construction and never consulted again; runtime state lives in the
// controller itself.
type Config struct {
	ThresholdDeg   float64 // smoothed angle at or under this ⇒ foveal ⇒ suppressed
	WindowCapacity int     // smoothing window size in frames
	PulsePeriod    float64 // pulse cycle length in seconds
	Curve          Curve   // pulse response curve over [0, PulsePeriod]
	BaseRadius     float64 // falloff radius while the cue is active, world units
	Enabled        bool    // master toggle; off ⇒ the controller does nothing
}

// DefaultConfig returns the shipped tuning: 15° threshold, 5-frame window,
// 0.2 s triangular pulse, 2.5-unit radius, enabled.
func DefaultConfig() Config {
	return Config{
		ThresholdDeg:   DefaultThresholdDeg,
		WindowCapacity: DefaultWindowCapacity,
		PulsePeriod:    DefaultPulsePeriod,
		Curve:          TriangleCurve(DefaultPulsePeriod),
		BaseRadius:     DefaultBaseRadius,
		Enabled:        true,
	}
}

// Validate reports the first configuration error, or nil.
func (c Config) Validate() error {
	if c.WindowCapacity <= 0 {
		return fmt.Errorf("cue config: window capacity must be > 0, got %d", c.WindowCapacity)
	}
	if c.PulsePeriod <= 0 {
		return fmt.Errorf("cue config: pulse period must be > 0, got %g", c.PulsePeriod)
	}
	if c.BaseRadius < 0 {
		return fmt.Errorf("cue config: base radius must be >= 0, got %g", c.BaseRadius)
	}
	if c.ThresholdDeg < 0 || c.ThresholdDeg > 180 {
		return fmt.Errorf("cue config: threshold must be within [0, 180] degrees, got %g", c.ThresholdDeg)
	}
	return nil
}
