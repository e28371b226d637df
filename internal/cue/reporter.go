package cue

import (
	"fmt"
	"math"
	"strings"
)

// Tracker accumulates per-object cue statistics over a run. Record is
// called once per frame after the object's controller updates.
type Tracker struct {
	Label string

	Frames           int
	FramesActive     int
	FramesSuppressed int
	Transitions      int

	AngleSum float64
	AngleMin float64
	AngleMax float64

	// Modulation observed while the cue was active (the only time the
	// viewer can perceive it).
	ModSumActive float64

	prev     State
	havePrev bool
}

// NewTracker creates a tracker for one labelled object.
func NewTracker(label string) *Tracker {
	return &Tracker{Label: label, AngleMin: math.Inf(1), AngleMax: math.Inf(-1)}
}

// Record samples the controller's post-update state for this frame.
func (t *Tracker) Record(c *Controller) {
	t.Frames++
	st := c.State()
	if st == CueActive {
		t.FramesActive++
		t.ModSumActive += c.Params().Modulation
	} else {
		t.FramesSuppressed++
	}
	if t.havePrev && st != t.prev {
		t.Transitions++
	}
	t.prev, t.havePrev = st, true

	if avg, ok := c.SmoothedAngle(); ok {
		t.AngleSum += avg
		if avg < t.AngleMin {
			t.AngleMin = avg
		}
		if avg > t.AngleMax {
			t.AngleMax = avg
		}
	}
}

// SuppressedRatio returns the fraction of frames spent suppressed.
func (t *Tracker) SuppressedRatio() float64 {
	if t.Frames == 0 {
		return 0
	}
	return float64(t.FramesSuppressed) / float64(t.Frames)
}

// MeanAngle returns the mean smoothed angle across the run, in degrees.
func (t *Tracker) MeanAngle() float64 {
	if t.Frames == 0 {
		return 0
	}
	return t.AngleSum / float64(t.Frames)
}

// MeanModulationActive returns the mean pulse modulation over active frames.
func (t *Tracker) MeanModulationActive() float64 {
	if t.FramesActive == 0 {
		return 0
	}
	return t.ModSumActive / float64(t.FramesActive)
}

// FormatReport renders a fixed-width table of all trackers, one row per
// object, in the order given.
func FormatReport(trackers []*Tracker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %7s %7s %7s %6s %9s %9s %9s %8s\n",
		"object", "frames", "active", "suppr", "trans", "avg_ang", "min_ang", "max_ang", "mod_act")
	for _, t := range trackers {
		minA, maxA := t.AngleMin, t.AngleMax
		if t.Frames == 0 {
			minA, maxA = 0, 0
		}
		fmt.Fprintf(&b, "%-8s %7d %7d %7d %6d %8.1f° %8.1f° %8.1f° %8.3f\n",
			t.Label, t.Frames, t.FramesActive, t.FramesSuppressed, t.Transitions,
			t.MeanAngle(), minA, maxA, t.MeanModulationActive())
	}
	return b.String()
}
