package math3

import "github.com/chewxy/math32"

// Quaternion is a rotation stored as (X, Y, Z, W).
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// Set assigns all four components in place.
func (q *Quaternion) Set(x, y, z, w float32) {
	q.X, q.Y, q.Z, q.W = x, y, z, w
}

// SetFromAxisAngle sets q to a rotation of angle radians around the
// normalized axis.
func (q *Quaternion) SetFromAxisAngle(axis Vector3, angle float32) {
	half := angle / 2
	s := math32.Sin(half)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = math32.Cos(half)
}

// SetFromEuler sets q from Euler angles, honoring the Euler's rotation
// order.
func (q *Quaternion) SetFromEuler(e Euler) {
	c1 := math32.Cos(e.X / 2)
	c2 := math32.Cos(e.Y / 2)
	c3 := math32.Cos(e.Z / 2)
	s1 := math32.Sin(e.X / 2)
	s2 := math32.Sin(e.Y / 2)
	s3 := math32.Sin(e.Z / 2)

	switch e.Order {
	case RotationOrderXYZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case RotationOrderYXZ:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case RotationOrderZXY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case RotationOrderZYX:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	case RotationOrderYZX:
		q.X = s1*c2*c3 + c1*s2*s3
		q.Y = c1*s2*c3 + s1*c2*s3
		q.Z = c1*c2*s3 - s1*s2*c3
		q.W = c1*c2*c3 - s1*s2*s3
	case RotationOrderXZY:
		q.X = s1*c2*c3 - c1*s2*s3
		q.Y = c1*s2*c3 - s1*c2*s3
		q.Z = c1*c2*s3 + s1*s2*c3
		q.W = c1*c2*c3 + s1*s2*s3
	}
}

// SetFromRotationMatrix sets q from the rotation part of m, which must be a
// pure (scale-free) rotation matrix.
func (q *Quaternion) SetFromRotationMatrix(m *Matrix4) {
	e := &m.El
	m11, m12, m13 := e[0], e[4], e[8]
	m21, m22, m23 := e[1], e[5], e[9]
	m31, m32, m33 := e[2], e[6], e[10]

	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / math32.Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s := 2 * math32.Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s := 2 * math32.Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s := 2 * math32.Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// MulQuaternions returns the product a * b (apply b first, then a).
func MulQuaternions(a, b Quaternion) Quaternion {
	return Quaternion{
		X: a.X*b.W + a.W*b.X + a.Y*b.Z - a.Z*b.Y,
		Y: a.Y*b.W + a.W*b.Y + a.Z*b.X - a.X*b.Z,
		Z: a.Z*b.W + a.W*b.Z + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Mul returns q * r.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return MulQuaternions(q, r)
}

// LengthSq returns the squared length of q.
func (q Quaternion) LengthSq() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of q.
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.LengthSq())
}

// Normalize returns q scaled to unit length. A zero quaternion normalizes
// to the identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return QuaternionIdentity()
	}
	inv := 1 / l
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Conjugate returns the conjugate of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Dot returns the dot product of q and r.
func (q Quaternion) Dot(r Quaternion) float32 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Slerp returns the spherical interpolation from q to r by factor t.
func (q Quaternion) Slerp(r Quaternion, t float32) Quaternion {
	cosHalfTheta := q.Dot(r)

	// Take the shorter arc.
	if cosHalfTheta < 0 {
		r = Quaternion{-r.X, -r.Y, -r.Z, -r.W}
		cosHalfTheta = -cosHalfTheta
	}
	if cosHalfTheta >= 1 {
		return q
	}

	halfTheta := math32.Acos(cosHalfTheta)
	sinHalfTheta := math32.Sqrt(1 - cosHalfTheta*cosHalfTheta)

	if Abs(sinHalfTheta) < 0.001 {
		return Quaternion{
			(q.X + r.X) * 0.5,
			(q.Y + r.Y) * 0.5,
			(q.Z + r.Z) * 0.5,
			(q.W + r.W) * 0.5,
		}
	}

	ra := math32.Sin((1-t)*halfTheta) / sinHalfTheta
	rb := math32.Sin(t*halfTheta) / sinHalfTheta
	return Quaternion{
		q.X*ra + r.X*rb,
		q.Y*ra + r.Y*rb,
		q.Z*ra + r.Z*rb,
		q.W*ra + r.W*rb,
	}
}

// ApproxEqual reports whether every component of q is within eps of r.
func (q Quaternion) ApproxEqual(r Quaternion, eps float32) bool {
	return Abs(q.X-r.X) <= eps && Abs(q.Y-r.Y) <= eps &&
		Abs(q.Z-r.Z) <= eps && Abs(q.W-r.W) <= eps
}
