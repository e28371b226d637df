package cue

import "math"

// Vec3 is a world-space point or direction.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns |v|.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. ok is false when v is
// (numerically) zero-length, in which case the zero vector is returned.
func (v Vec3) Normalize() (n Vec3, ok bool) {
	l := v.Length()
	if l < 1e-12 {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// AngleBetweenDeg returns the unsigned angle between a and b in degrees,
// in [0, 180]. The cosine is clamped before acos so that float rounding on
// parallel vectors cannot produce NaN. Zero-length input degenerates to 0.
func AngleBetweenDeg(a, b Vec3) float64 {
	la := a.Length()
	lb := b.Length()
	if la < 1e-12 || lb < 1e-12 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}
