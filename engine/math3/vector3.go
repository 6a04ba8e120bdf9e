package math3

import "github.com/chewxy/math32"

// Vector3 is a 3-component float32 vector.
type Vector3 struct {
	X, Y, Z float32
}

// V3 constructs a Vector3 from its components.
func V3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Set assigns all three components in place.
func (v *Vector3) Set(x, y, z float32) {
	v.X, v.Y, v.Z = x, y, z
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the component-wise product of v and w.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// MulScalar returns v scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v divided by s, or the zero vector when s is zero.
func (v Vector3) DivScalar(s float32) Vector3 {
	return v.MulScalar(safeInv(s))
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSq returns the squared length of v.
func (v Vector3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of v.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// zero length.
func (v Vector3) Normalize() Vector3 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance between v and w.
func (v Vector3) DistanceTo(w Vector3) float32 {
	return v.Sub(w).Length()
}

// DistanceToSq returns the squared distance between v and w.
func (v Vector3) DistanceToSq(w Vector3) float32 {
	return v.Sub(w).LengthSq()
}

// Lerp returns the linear interpolation from v to w by factor t.
func (v Vector3) Lerp(w Vector3, t float32) Vector3 {
	return Vector3{
		v.X + (w.X-v.X)*t,
		v.Y + (w.Y-v.Y)*t,
		v.Z + (w.Z-v.Z)*t,
	}
}

// Min returns the component-wise minimum of v and w.
func (v Vector3) Min(w Vector3) Vector3 {
	return Vector3{Min(v.X, w.X), Min(v.Y, w.Y), Min(v.Z, w.Z)}
}

// Max returns the component-wise maximum of v and w.
func (v Vector3) Max(w Vector3) Vector3 {
	return Vector3{Max(v.X, w.X), Max(v.Y, w.Y), Max(v.Z, w.Z)}
}

// Equals reports whether v and w are exactly equal.
func (v Vector3) Equals(w Vector3) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// ApproxEqual reports whether every component of v is within eps of w.
func (v Vector3) ApproxEqual(w Vector3, eps float32) bool {
	return Abs(v.X-w.X) <= eps && Abs(v.Y-w.Y) <= eps && Abs(v.Z-w.Z) <= eps
}

// ApplyMatrix4 returns v transformed by m as a point (translation applied,
// no perspective divide).
func (v Vector3) ApplyMatrix4(m *Matrix4) Vector3 {
	e := &m.El
	return Vector3{
		e[0]*v.X + e[4]*v.Y + e[8]*v.Z + e[12],
		e[1]*v.X + e[5]*v.Y + e[9]*v.Z + e[13],
		e[2]*v.X + e[6]*v.Y + e[10]*v.Z + e[14],
	}
}

// ApplyProjection returns v transformed by the projection matrix m with
// perspective divide by w.
func (v Vector3) ApplyProjection(m *Matrix4) Vector3 {
	e := &m.El
	d := safeInv(e[3]*v.X + e[7]*v.Y + e[11]*v.Z + e[15])
	return Vector3{
		(e[0]*v.X + e[4]*v.Y + e[8]*v.Z + e[12]) * d,
		(e[1]*v.X + e[5]*v.Y + e[9]*v.Z + e[13]) * d,
		(e[2]*v.X + e[6]*v.Y + e[10]*v.Z + e[14]) * d,
	}
}

// TransformDirection returns v transformed by the rotation part of m only
// (no translation), normalized.
func (v Vector3) TransformDirection(m *Matrix4) Vector3 {
	e := &m.El
	return Vector3{
		e[0]*v.X + e[4]*v.Y + e[8]*v.Z,
		e[1]*v.X + e[5]*v.Y + e[9]*v.Z,
		e[2]*v.X + e[6]*v.Y + e[10]*v.Z,
	}.Normalize()
}

// ApplyMatrix3 returns v transformed by the 3x3 matrix m.
func (v Vector3) ApplyMatrix3(m *Matrix3) Vector3 {
	e := &m.El
	return Vector3{
		e[0]*v.X + e[3]*v.Y + e[6]*v.Z,
		e[1]*v.X + e[4]*v.Y + e[7]*v.Z,
		e[2]*v.X + e[5]*v.Y + e[8]*v.Z,
	}
}

// ApplyQuaternion returns v rotated by quaternion q.
func (v Vector3) ApplyQuaternion(q Quaternion) Vector3 {
	ix := q.W*v.X + q.Y*v.Z - q.Z*v.Y
	iy := q.W*v.Y + q.Z*v.X - q.X*v.Z
	iz := q.W*v.Z + q.X*v.Y - q.Y*v.X
	iw := -q.X*v.X - q.Y*v.Y - q.Z*v.Z
	return Vector3{
		ix*q.W + iw*-q.X + iy*-q.Z - iz*-q.Y,
		iy*q.W + iw*-q.Y + iz*-q.X - ix*-q.Z,
		iz*q.W + iw*-q.Z + ix*-q.Y - iy*-q.X,
	}
}

// ApplyEuler returns v rotated by the Euler angles e.
func (v Vector3) ApplyEuler(e Euler) Vector3 {
	var q Quaternion
	q.SetFromEuler(e)
	return v.ApplyQuaternion(q)
}

// ApplyAxisAngle returns v rotated by angle radians around axis.
func (v Vector3) ApplyAxisAngle(axis Vector3, angle float32) Vector3 {
	var q Quaternion
	q.SetFromAxisAngle(axis, angle)
	return v.ApplyQuaternion(q)
}

// SetFromMatrixPosition assigns the translation column of m to v.
func (v *Vector3) SetFromMatrixPosition(m *Matrix4) {
	v.X, v.Y, v.Z = m.El[12], m.El[13], m.El[14]
}

// SetFromMatrixColumn assigns column i of m to v.
func (v *Vector3) SetFromMatrixColumn(m *Matrix4, i int) {
	v.X, v.Y, v.Z = m.El[i*4], m.El[i*4+1], m.El[i*4+2]
}
