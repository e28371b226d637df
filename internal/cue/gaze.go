package cue

// GazeSample is one frame's gaze reading: a world-space origin and a unit
// forward direction. Produced fresh each frame; never retained across frames.
type GazeSample struct {
	Origin  Vec3
	Forward Vec3 // unit length; the source must never hand out a zero vector
}

// GazeSource supplies the viewer's gaze once per frame, refreshed before any
// controller runs. The engine does not care whether the reading comes from a
// camera-forward simulation or real eye-tracking hardware.
type GazeSource interface {
	Gaze() GazeSample
}

// FixedGaze is a GazeSource that always returns the same sample. Used by
// tests and the headless tool; scripted scenarios swap the sample between
// frames.
type FixedGaze struct {
	Sample GazeSample
}

// Gaze returns the stored sample.
func (f *FixedGaze) Gaze() GazeSample { return f.Sample }

// Set replaces the stored sample, normalizing the forward direction.
// A zero-length forward is left untouched so the previous valid direction
// survives a bad script entry.
func (f *FixedGaze) Set(origin, forward Vec3) {
	n, ok := forward.Normalize()
	if !ok {
		f.Sample.Origin = origin
		return
	}
	f.Sample = GazeSample{Origin: origin, Forward: n}
}
