package cue

import (
	"math"
	"testing"
)

func TestAngleBetweenDeg_Parallel(t *testing.T) {
	a := Vec3{Z: 10}
	b := Vec3{Z: 1}
	if got := AngleBetweenDeg(a, b); math.Abs(got) > 1e-9 {
		t.Fatalf("parallel vectors should be 0°, got %.6f", got)
	}
}

func TestAngleBetweenDeg_Perpendicular(t *testing.T) {
	a := Vec3{X: 3}
	b := Vec3{Y: 7}
	if got := AngleBetweenDeg(a, b); math.Abs(got-90) > 1e-9 {
		t.Fatalf("perpendicular vectors should be 90°, got %.6f", got)
	}
}

func TestAngleBetweenDeg_Opposite(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := a.Scale(-4)
	if got := AngleBetweenDeg(a, b); math.Abs(got-180) > 1e-9 {
		t.Fatalf("opposite vectors should be 180°, got %.6f", got)
	}
}

func TestAngleBetweenDeg_NearParallel_NoNaN(t *testing.T) {
	// Rounding can push the raw cosine slightly above 1; the clamp must
	// keep acos defined.
	a := Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	b := a.Scale(1e9)
	got := AngleBetweenDeg(a, b)
	if math.IsNaN(got) {
		t.Fatal("near-parallel vectors produced NaN")
	}
	if got > 1e-3 {
		t.Fatalf("near-parallel vectors should be ~0°, got %.6f", got)
	}
}

func TestAngleBetweenDeg_ZeroVector(t *testing.T) {
	if got := AngleBetweenDeg(Vec3{}, Vec3{Z: 1}); got != 0 {
		t.Fatalf("degenerate zero vector should yield 0°, got %.6f", got)
	}
}

func TestNormalize_UnitLength(t *testing.T) {
	n, ok := (Vec3{X: 3, Y: 4, Z: 12}).Normalize()
	if !ok {
		t.Fatal("non-zero vector should normalize")
	}
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("normalized length should be 1, got %.12f", n.Length())
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	if _, ok := (Vec3{}).Normalize(); ok {
		t.Fatal("zero vector must not normalize")
	}
}
