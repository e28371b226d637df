package cue

import (
	"math"
	"testing"
)

func TestAngleSmoother_Empty_Sentinel(t *testing.T) {
	s := NewAngleSmoother(5)
	avg, ok := s.Average()
	if ok {
		t.Fatal("empty window must report ok=false")
	}
	if avg != peripheralSentinelDeg {
		t.Fatalf("empty window sentinel should be %.0f, got %.3f", peripheralSentinelDeg, avg)
	}
}

func TestAngleSmoother_PartialWindow(t *testing.T) {
	s := NewAngleSmoother(5)
	s.Push(10)
	s.Push(20)
	avg, ok := s.Average()
	if !ok {
		t.Fatal("window with samples must report ok=true")
	}
	if math.Abs(avg-15) > 1e-12 {
		t.Fatalf("expected average 15, got %.6f", avg)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", s.Len())
	}
}

func TestAngleSmoother_FIFOEviction(t *testing.T) {
	// Push more samples than fit; the average must be the mean of exactly
	// the most recent capacity values, proving the oldest were evicted
	// one at a time and the running sum tracked them.
	s := NewAngleSmoother(3)
	for _, v := range []float64{100, 1, 2, 3, 4, 5} {
		s.Push(v)
	}
	avg, _ := s.Average()
	if math.Abs(avg-4) > 1e-12 { // mean of [3, 4, 5]
		t.Fatalf("expected average 4 over last 3 samples, got %.6f", avg)
	}
	if s.Len() != 3 {
		t.Fatalf("window should hold exactly capacity samples, got %d", s.Len())
	}
}

func TestAngleSmoother_MixedWindow_SmoothsOnePeripheralFrame(t *testing.T) {
	// One 20° frame amid four 10° frames averages to 12°: a single
	// peripheral-looking spike does not flip the decision.
	s := NewAngleSmoother(5)
	for _, v := range []float64{20, 10, 10, 10, 10} {
		s.Push(v)
	}
	avg, _ := s.Average()
	if math.Abs(avg-12) > 1e-12 {
		t.Fatalf("expected average 12, got %.6f", avg)
	}
}

func TestAngleSmoother_SumStaysExact_LongRun(t *testing.T) {
	s := NewAngleSmoother(5)
	for i := 0; i < 10000; i++ {
		s.Push(float64(i % 37))
	}
	// Recompute the expected mean of the last 5 pushes directly.
	want := 0.0
	for i := 9995; i < 10000; i++ {
		want += float64(i % 37)
	}
	want /= 5
	avg, _ := s.Average()
	if math.Abs(avg-want) > 1e-6 {
		t.Fatalf("running sum drifted: expected %.6f, got %.6f", want, avg)
	}
}

func TestAngleSmoother_Reset(t *testing.T) {
	s := NewAngleSmoother(4)
	s.Push(30)
	s.Push(40)
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("reset should empty the window, got %d samples", s.Len())
	}
	if _, ok := s.Average(); ok {
		t.Fatal("average after reset must report ok=false")
	}
	s.Push(8)
	avg, _ := s.Average()
	if avg != 8 {
		t.Fatalf("post-reset average should be 8, got %.6f", avg)
	}
}
