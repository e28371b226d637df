package cue

import (
	"fmt"
	"math/rand"
)

// ParamRecorder is a ParamSink that remembers every delivery. Used by tests
// and the headless tool in place of a real render surface.
type ParamRecorder struct {
	Last      FalloffParams
	Delivered int
}

// SetCueParams records the delivery.
func (r *ParamRecorder) SetCueParams(p FalloffParams) {
	r.Last = p
	r.Delivered++
}

// SimObject is one cued object inside a TestSim.
type SimObject struct {
	Label      string
	Position   Vec3
	Controller *Controller
	Recorder   *ParamRecorder
	Tracker    *Tracker
}

// GazeScript produces the gaze sample for a given frame. The rng is seeded
// per sim, so scripted noise is deterministic.
type GazeScript func(frame int, rng *rand.Rand) GazeSample

// TestSim is a headless harness: it steps scripted gaze frames through real
// controllers at a fixed timestep, with no rendering dependency. It mirrors
// the windowed update loop and supports deterministic seeding and
// structured logging.
type TestSim struct {
	Gaze    *FixedGaze
	Objects []*SimObject
	Log     *Log
	Frame   int

	cfg    Config
	dt     float64
	time   float64
	script GazeScript
	rng    *rand.Rand

	seed    int64
	verbose bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed, dt, gaze — applied first
	simOptObject                      // add objects — applied once infra exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim) error
}

// WithConfig sets the cue tuning shared by all objects added afterwards.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.cfg = cfg
		return nil
	}}
}

// WithSeed sets the RNG seed for deterministic scripted noise.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.seed = seed
		return nil
	}}
}

// WithDT sets the fixed timestep in seconds (default 1/60).
func WithDT(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		if dt <= 0 {
			return fmt.Errorf("sim: dt must be > 0, got %g", dt)
		}
		ts.dt = dt
		return nil
	}}
}

// WithVerboseLog turns on per-frame angle/pulse log entries.
func WithVerboseLog() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.verbose = true
		return nil
	}}
}

// WithGaze sets a constant gaze for the whole run.
func WithGaze(origin, forward Vec3) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.Gaze.Set(origin, forward)
		return nil
	}}
}

// WithGazeScript drives the gaze per frame; it overrides WithGaze from the
// first stepped frame on.
func WithGazeScript(script GazeScript) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) error {
		ts.script = script
		return nil
	}}
}

// WithObject adds a cued object at a fixed world position.
func WithObject(label string, pos Vec3) SimOption {
	return SimOption{simOptObject, func(ts *TestSim) error {
		rec := &ParamRecorder{}
		ctrl, err := NewController(label, ts.cfg, ts.Gaze, rec, ts.Log)
		if err != nil {
			return err
		}
		ctrl.SetCenter(pos)
		ts.Objects = append(ts.Objects, &SimObject{
			Label:      label,
			Position:   pos,
			Controller: ctrl,
			Recorder:   rec,
			Tracker:    NewTracker(label),
		})
		return nil
	}}
}

// NewTestSim builds a harness. Infra options apply before object options
// regardless of argument order, mirroring the two construction passes.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		Gaze: &FixedGaze{Sample: GazeSample{Forward: Vec3{Z: 1}}},
		cfg:  DefaultConfig(),
		dt:   1.0 / 60.0,
		seed: 1,
	}
	for _, pass := range []simOptionKind{simOptInfra, simOptObject} {
		if pass == simOptObject {
			// Log and rng exist before any controller is built.
			ts.Log = NewLog(ts.verbose)
			ts.rng = rand.New(rand.NewSource(ts.seed))
		}
		for _, opt := range opts {
			if opt.kind != pass {
				continue
			}
			if err := opt.fn(ts); err != nil {
				return nil, err
			}
		}
	}
	return ts, nil
}

// Step advances the sim by one frame: refresh the gaze, update every
// controller, record stats, advance the clock.
func (ts *TestSim) Step() {
	if ts.script != nil {
		s := ts.script(ts.Frame, ts.rng)
		ts.Gaze.Set(s.Origin, s.Forward)
	}
	for _, obj := range ts.Objects {
		obj.Controller.SetCenter(obj.Position)
		obj.Controller.Update(ts.time)
		obj.Tracker.Record(obj.Controller)
	}
	ts.Frame++
	ts.time += ts.dt
}

// Run steps the sim for n frames.
func (ts *TestSim) Run(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// Time returns the sim clock in seconds.
func (ts *TestSim) Time() float64 { return ts.time }

// Trackers returns the per-object trackers in object order.
func (ts *TestSim) Trackers() []*Tracker {
	out := make([]*Tracker, len(ts.Objects))
	for i, obj := range ts.Objects {
		out[i] = obj.Tracker
	}
	return out
}

// Object returns the object with the given label, or nil.
func (ts *TestSim) Object(label string) *SimObject {
	for _, obj := range ts.Objects {
		if obj.Label == label {
			return obj
		}
	}
	return nil
}
