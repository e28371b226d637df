package cue

import (
	"math"
	"math/rand"
	"testing"
)

func TestScenario_FixatedObject_CueFullySuppressed(t *testing.T) {
	// Object at the origin, viewer at (0,0,-10) looking straight at it:
	// angle 0° every frame. After the window fills the average is 0°, the
	// state is suppressed, and the render pass leaves pixels untouched.
	ts, err := NewTestSim(
		WithGaze(Vec3{Z: -10}, Vec3{Z: 1}),
		WithObject("orb", Vec3{}),
	)
	if err != nil {
		t.Fatalf("sim construction failed: %v", err)
	}
	ts.Run(5)

	obj := ts.Object("orb")
	avg, ok := obj.Controller.SmoothedAngle()
	if !ok || math.Abs(avg) > 1e-9 {
		t.Fatalf("expected average 0°, got %.6f (ok=%v)", avg, ok)
	}
	if obj.Controller.State() != CueSuppressed {
		t.Fatalf("expected suppressed state, got %v", obj.Controller.State())
	}
	if obj.Recorder.Last.Radius != 0 {
		t.Fatalf("suppressed radius must be 0, got %.6f", obj.Recorder.Last.Radius)
	}

	base := RGB{R: 0.2, G: 0.4, B: 0.6}
	if got := obj.Recorder.Last.Shade(base, Vec3{}); got != base {
		t.Fatalf("suppressed cue must leave the lit color unchanged, got %+v", got)
	}
}

func TestScenario_PeripheralObject_FullRadiusAndPeakBoost(t *testing.T) {
	// Same placement but the gaze is rotated 90° away, so the object sits
	// deep in the periphery. With dt=0.02 the sixth update runs at
	// t=0.1s, the peak of the default 0.2s triangular pulse.
	cfg := DefaultConfig()
	cfg.BaseRadius = 2.0
	ts, err := NewTestSim(
		WithConfig(cfg),
		WithDT(0.02),
		WithGaze(Vec3{Z: -10}, Vec3{X: 1}),
		WithObject("orb", Vec3{}),
	)
	if err != nil {
		t.Fatalf("sim construction failed: %v", err)
	}
	ts.Run(6)

	obj := ts.Object("orb")
	avg, _ := obj.Controller.SmoothedAngle()
	if math.Abs(avg-90) > 1e-6 {
		t.Fatalf("expected average ~90°, got %.6f", avg)
	}
	if obj.Controller.State() != CueActive {
		t.Fatalf("expected active state, got %v", obj.Controller.State())
	}
	p := obj.Recorder.Last
	if p.Radius != 2.0 {
		t.Fatalf("active radius must equal base radius 2.0, got %.6f", p.Radius)
	}
	if math.Abs(p.Modulation-1) > 1e-9 {
		t.Fatalf("expected peak modulation at t=0.1, got %.6f", p.Modulation)
	}

	// A fragment exactly at the center receives the full additive boost.
	base := RGB{R: 0.2, G: 0.4, B: 0.6}
	got := p.Shade(base, Vec3{})
	if math.Abs(got.R-(base.R+BoostGain)) > 1e-9 {
		t.Fatalf("center fragment should gain %.4f, got channel delta %.6f", BoostGain, got.R-base.R)
	}
}

func TestScenario_MixedWindow_SingleSpikeDoesNotActivate(t *testing.T) {
	// Raw angles 20,10,10,10,10 average to 12°, under the 15° threshold:
	// one peripheral-looking frame is smoothed away.
	angles := []float64{20, 10, 10, 10, 10}
	script := func(frame int, _ *rand.Rand) GazeSample {
		a := angles[frame%len(angles)] * math.Pi / 180
		return GazeSample{Forward: Vec3{X: math.Sin(a), Z: math.Cos(a)}}
	}
	ts, err := NewTestSim(
		WithGazeScript(script),
		WithObject("orb", Vec3{Z: 1}),
	)
	if err != nil {
		t.Fatalf("sim construction failed: %v", err)
	}
	ts.Run(5)

	obj := ts.Object("orb")
	avg, _ := obj.Controller.SmoothedAngle()
	if math.Abs(avg-12) > 1e-6 {
		t.Fatalf("expected average 12°, got %.6f", avg)
	}
	if obj.Controller.State() != CueSuppressed {
		t.Fatalf("expected suppressed despite the 20° spike, got %v", obj.Controller.State())
	}
}

func TestScenario_GazeSweep_EachObjectSuppressedInTurn(t *testing.T) {
	// Two objects to the left and right; the gaze fixates the left one
	// for 60 frames, then the right one. Each object must be suppressed
	// exactly while fixated and active otherwise (after window lag).
	left := Vec3{X: -5, Z: 10}
	right := Vec3{X: 5, Z: 10}
	script := func(frame int, _ *rand.Rand) GazeSample {
		target := left
		if frame >= 60 {
			target = right
		}
		return GazeSample{Forward: target} // Set normalizes
	}
	ts, err := NewTestSim(
		WithGazeScript(script),
		WithObject("left", left),
		WithObject("right", right),
	)
	if err != nil {
		t.Fatalf("sim construction failed: %v", err)
	}

	ts.Run(60)
	if st := ts.Object("left").Controller.State(); st != CueSuppressed {
		t.Fatalf("left should be suppressed while fixated, got %v", st)
	}
	if st := ts.Object("right").Controller.State(); st != CueActive {
		t.Fatalf("right should be active while left is fixated, got %v", st)
	}

	ts.Run(60)
	if st := ts.Object("left").Controller.State(); st != CueActive {
		t.Fatalf("left should reactivate after the gaze moves away, got %v", st)
	}
	if st := ts.Object("right").Controller.State(); st != CueSuppressed {
		t.Fatalf("right should be suppressed once fixated, got %v", st)
	}

	// Exactly one transition per object across the whole run.
	if n := ts.Object("left").Tracker.Transitions; n != 1 {
		t.Fatalf("left should transition once, got %d", n)
	}
	if n := ts.Object("right").Tracker.Transitions; n != 1 {
		t.Fatalf("right should transition once, got %d", n)
	}
}

func TestScenario_NoisyFixation_WindowPreventsChatter(t *testing.T) {
	// Fixation with ±4° of seeded jitter stays well under the threshold
	// on average; the smoothed decision must never flip.
	script := func(_ int, rng *rand.Rand) GazeSample {
		a := (rng.Float64()*8 - 4) * math.Pi / 180
		return GazeSample{Forward: Vec3{X: math.Sin(a), Z: math.Cos(a)}}
	}
	ts, err := NewTestSim(
		WithSeed(7),
		WithGazeScript(script),
		WithObject("orb", Vec3{Z: 1}),
	)
	if err != nil {
		t.Fatalf("sim construction failed: %v", err)
	}
	ts.Run(600)

	obj := ts.Object("orb")
	if st := obj.Controller.State(); st != CueSuppressed {
		t.Fatalf("noisy fixation should stay suppressed, got %v", st)
	}
	if n := obj.Tracker.Transitions; n != 0 {
		t.Fatalf("noisy fixation should never flip the decision, got %d transitions", n)
	}
}
