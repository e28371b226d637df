package cue

import (
	"fmt"
)

// State is the cue gate for one object.
type State int

const (
	// CueActive: the smoothed gaze angle is peripheral, the cue runs at
	// its full base radius.
	CueActive State = iota
	// CueSuppressed: the viewer is (on average) looking at the object,
	// the radius is hard-cut to zero.
	CueSuppressed
)

func (s State) String() string {
	switch s {
	case CueActive:
		return "active"
	case CueSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// ParamSink receives one object's falloff parameters each frame. The demo
// binds it to a shader uniform hand-off; tests bind it to a recorder.
type ParamSink interface {
	SetCueParams(p FalloffParams)
}

// ParamSinkFunc adapts a plain function to the ParamSink interface.
type ParamSinkFunc func(p FalloffParams)

// SetCueParams calls f.
func (f ParamSinkFunc) SetCueParams(p FalloffParams) { f(p) }

// Controller drives the covert cue for a single object: per frame it reads
// the gaze, smooths the gaze-to-object angle, gates the radius on the foveal
// threshold, evaluates the pulse, and hands the three resulting parameters
// to the object's render sink. One controller per cued object; controllers
// never share state.
type Controller struct {
	label    string
	cfg      Config
	gaze     GazeSource
	sink     ParamSink
	log      *Log
	smoother *AngleSmoother
	pulse    *PulseGenerator

	center  Vec3
	state   State
	params  FalloffParams
	lastAvg float64
	haveAvg bool
	frame   int

	warnedNoSink bool
}

// NewController builds the controller for one cued object. A nil gaze
// source is a configuration error: without a gaze direction the
// foveal/peripheral decision is meaningless, so this fails loudly instead
// of substituting a default. A nil sink is tolerated (the object may have
// no drawable surface yet); delivery is skipped with a logged warning.
func NewController(label string, cfg Config, gaze GazeSource, sink ParamSink, log *Log) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("controller %q: %w", label, err)
	}
	if gaze == nil {
		return nil, fmt.Errorf("controller %q: no gaze source configured", label)
	}
	return &Controller{
		label:    label,
		cfg:      cfg,
		gaze:     gaze,
		sink:     sink,
		log:      log,
		smoother: NewAngleSmoother(cfg.WindowCapacity),
		pulse:    NewPulseGenerator(cfg.PulsePeriod, cfg.Curve),
		state:    CueActive, // fail open until the window says otherwise
	}, nil
}

// SetCenter updates the object's world position (typically its transform,
// refreshed before Update each frame).
func (c *Controller) SetCenter(p Vec3) { c.center = p }

// SetEnabled flips the master toggle. While disabled, Update is a no-op and
// the sink keeps whatever parameters were last delivered.
func (c *Controller) SetEnabled(on bool) { c.cfg.Enabled = on }

// Enabled reports the master toggle.
func (c *Controller) Enabled() bool { return c.cfg.Enabled }

// SetSink replaces the render parameter sink (e.g. once the object's
// drawable surface exists).
func (c *Controller) SetSink(sink ParamSink) {
	c.sink = sink
	c.warnedNoSink = false
}

// Update runs one frame of the cue state machine at elapsed time t seconds.
// It must run on the main update pass, strictly before the frame's draw
// submission, so the render pass observes this frame's parameters.
func (c *Controller) Update(t float64) {
	if !c.cfg.Enabled {
		return
	}
	c.frame++

	sample := c.gaze.Gaze()
	angle := AngleBetweenDeg(c.center.Sub(sample.Origin), sample.Forward)
	c.smoother.Push(angle)

	avg, ok := c.smoother.Average()
	c.lastAvg, c.haveAvg = avg, ok
	c.log.AddVerbose(c.frame, c.label, "angle", "sample",
		fmt.Sprintf("raw=%.1f° avg=%.1f°", angle, avg), avg)

	// Strict <=, no hysteresis band: all de-bouncing lives in the window.
	// The empty-window sentinel resolves to peripheral, never suppressed.
	next := CueActive
	if ok && avg <= c.cfg.ThresholdDeg {
		next = CueSuppressed
	}
	if !ok {
		c.log.Add(c.frame, c.label, "warn", "empty_window",
			"no angle samples yet, treating as peripheral", peripheralSentinelDeg)
	}
	if next != c.state {
		key := "activate"
		if next == CueSuppressed {
			key = "suppress"
		}
		c.log.Add(c.frame, c.label, "state", key, fmt.Sprintf("avg=%.1f°", avg), avg)
		c.state = next
	}

	radius := 0.0
	if c.state == CueActive {
		radius = c.cfg.BaseRadius
	}
	c.params = FalloffParams{
		Center:     c.center,
		Radius:     radius, // hard cut: always 0 or BaseRadius, never between
		Modulation: c.pulse.Modulation(t),
	}

	if c.sink == nil {
		if !c.warnedNoSink {
			c.log.Add(c.frame, c.label, "warn", "no_sink",
				"object has no render parameter sink, skipping delivery", 0)
			c.warnedNoSink = true
		}
		return
	}
	c.sink.SetCueParams(c.params)
}

// State returns the current gate state.
func (c *Controller) State() State { return c.state }

// Params returns the parameters computed by the most recent Update.
func (c *Controller) Params() FalloffParams { return c.params }

// SmoothedAngle returns the running average from the last Update; ok is
// false when the window had no samples.
func (c *Controller) SmoothedAngle() (float64, bool) { return c.lastAvg, c.haveAvg }

// Label returns the object label used in logs and reports.
func (c *Controller) Label() string { return c.label }

// Config returns the controller's tuning.
func (c *Controller) Config() Config { return c.cfg }
