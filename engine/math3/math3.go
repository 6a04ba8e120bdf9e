// package math3 is the engine's math core: fixed-size float32 vectors,
// matrices, quaternions, Euler angles, and the bounding/intersection
// primitives the scene graph, renderer, projector, and picker are built on.
//
// Conventions: matrices are column-major [16]float32 (GPU layout); pure
// operations are value-receiver methods returning a new value; in-place
// mutators are pointer-receiver methods, most of them prefixed Set. Division by zero in
// normalization and scalar division yields zero rather than Inf/NaN.
package math3

import (
	"github.com/chewxy/math32"
)

// Pi is the float32 circle constant.
const Pi = math32.Pi

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / math32.Pi)
}

// Inf returns positive infinity.
func Inf() float32 {
	return math32.Inf(1)
}

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	return math32.Abs(v)
}

// Sqrt returns the square root of v.
func Sqrt(v float32) float32 {
	return math32.Sqrt(v)
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// safeInv returns 1/v, or zero when v is zero.
func safeInv(v float32) float32 {
	if v == 0 {
		return 0
	}
	return 1 / v
}
