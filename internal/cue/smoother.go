package cue

// peripheralSentinelDeg is returned by Average when no samples exist yet.
// 180 can never be under any sane threshold, so an empty window always
// resolves to "peripheral" and the cue fails open rather than suppressing.
const peripheralSentinelDeg = 180.0

// AngleSmoother keeps a fixed-capacity sliding window of recent gaze-angle
// samples and a running sum, so the average of the last N frames costs O(1)
// per frame instead of re-summing the window.
type AngleSmoother struct {
	samples []float64
	head    int // next write position
	count   int
	sum     float64
}

// NewAngleSmoother creates a smoother holding up to capacity samples.
// capacity must be > 0 (the Config validator enforces this upstream).
func NewAngleSmoother(capacity int) *AngleSmoother {
	return &AngleSmoother{samples: make([]float64, capacity)}
}

// Push appends a new angle sample in degrees. Once the window is full the
// single oldest sample is evicted (strict FIFO, never a full clear) and its
// value removed from the running sum.
func (s *AngleSmoother) Push(angleDeg float64) {
	if s.count == len(s.samples) {
		s.sum -= s.samples[s.head]
	} else {
		s.count++
	}
	s.samples[s.head] = angleDeg
	s.sum += angleDeg
	s.head = (s.head + 1) % len(s.samples)
}

// Average returns the mean of the samples currently in the window. Before
// the first Push it returns (peripheralSentinelDeg, false); the caller is
// expected to log the missing data and treat the object as peripheral.
func (s *AngleSmoother) Average() (float64, bool) {
	if s.count == 0 {
		return peripheralSentinelDeg, false
	}
	return s.sum / float64(s.count), true
}

// Len returns how many samples the window currently holds.
func (s *AngleSmoother) Len() int { return s.count }

// Cap returns the window capacity.
func (s *AngleSmoother) Cap() int { return len(s.samples) }

// Reset drops all samples, returning the smoother to its initial state.
func (s *AngleSmoother) Reset() {
	s.head = 0
	s.count = 0
	s.sum = 0
}
