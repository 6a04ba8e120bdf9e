package math3

import "github.com/chewxy/math32"

// Vector4 is a 4-component float32 vector. Tangents are stored as Vector4
// with W carrying the handedness sign.
type Vector4 struct {
	X, Y, Z, W float32
}

// V4 constructs a Vector4 from its components.
func V4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Set assigns all four components in place.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X, v.Y, v.Z, v.W = x, y, z, w
}

// Add returns v + w.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w.
func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// MulScalar returns v scaled by s.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and w.
func (v Vector4) Dot(w Vector4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Length returns the length of v.
func (v Vector4) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// XYZ returns the first three components as a Vector3.
func (v Vector4) XYZ() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// ApplyMatrix4 returns v transformed by m.
func (v Vector4) ApplyMatrix4(m *Matrix4) Vector4 {
	e := &m.El
	return Vector4{
		e[0]*v.X + e[4]*v.Y + e[8]*v.Z + e[12]*v.W,
		e[1]*v.X + e[5]*v.Y + e[9]*v.Z + e[13]*v.W,
		e[2]*v.X + e[6]*v.Y + e[10]*v.Z + e[14]*v.W,
		e[3]*v.X + e[7]*v.Y + e[11]*v.Z + e[15]*v.W,
	}
}
