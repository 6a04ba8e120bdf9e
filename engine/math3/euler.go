package math3

import "github.com/chewxy/math32"

// RotationOrder selects the axis order used when converting Euler angles to
// and from quaternions.
type RotationOrder int

// Supported rotation orders. XYZ is the default.
const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX
	RotationOrderYZX
	RotationOrderXZY
)

// String returns the axis-order name, e.g. "XYZ".
func (o RotationOrder) String() string {
	switch o {
	case RotationOrderXYZ:
		return "XYZ"
	case RotationOrderYXZ:
		return "YXZ"
	case RotationOrderZXY:
		return "ZXY"
	case RotationOrderZYX:
		return "ZYX"
	case RotationOrderYZX:
		return "YZX"
	case RotationOrderXZY:
		return "XZY"
	}
	return "unknown"
}

// Euler is a rotation expressed as angles (radians) around the X, Y, and Z
// axes, applied in Order. The scene graph keeps an Euler and a Quaternion in
// agreement; Euler itself is a plain value.
type Euler struct {
	X, Y, Z float32
	Order   RotationOrder
}

// Set assigns the three angles in place, keeping the current order.
func (e *Euler) Set(x, y, z float32) {
	e.X, e.Y, e.Z = x, y, z
}

// SetFromQuaternion sets e from quaternion q using rotation order.
func (e *Euler) SetFromQuaternion(q Quaternion, order RotationOrder) {
	sqx := q.X * q.X
	sqy := q.Y * q.Y
	sqz := q.Z * q.Z
	sqw := q.W * q.W

	e.Order = order
	switch order {
	case RotationOrderXYZ:
		e.X = math32.Atan2(2*(q.X*q.W-q.Y*q.Z), sqw-sqx-sqy+sqz)
		e.Y = math32.Asin(Clamp(2*(q.X*q.Z+q.Y*q.W), -1, 1))
		e.Z = math32.Atan2(2*(q.Z*q.W-q.X*q.Y), sqw+sqx-sqy-sqz)
	case RotationOrderYXZ:
		e.X = math32.Asin(Clamp(2*(q.X*q.W-q.Y*q.Z), -1, 1))
		e.Y = math32.Atan2(2*(q.X*q.Z+q.Y*q.W), sqw-sqx-sqy+sqz)
		e.Z = math32.Atan2(2*(q.X*q.Y+q.Z*q.W), sqw-sqx+sqy-sqz)
	case RotationOrderZXY:
		e.X = math32.Asin(Clamp(2*(q.X*q.W+q.Y*q.Z), -1, 1))
		e.Y = math32.Atan2(2*(q.Y*q.W-q.Z*q.X), sqw-sqx-sqy+sqz)
		e.Z = math32.Atan2(2*(q.Z*q.W-q.X*q.Y), sqw-sqx+sqy-sqz)
	case RotationOrderZYX:
		e.X = math32.Atan2(2*(q.X*q.W+q.Z*q.Y), sqw-sqx-sqy+sqz)
		e.Y = math32.Asin(Clamp(2*(q.Y*q.W-q.X*q.Z), -1, 1))
		e.Z = math32.Atan2(2*(q.X*q.Y+q.Z*q.W), sqw+sqx-sqy-sqz)
	case RotationOrderYZX:
		e.X = math32.Atan2(2*(q.X*q.W-q.Z*q.Y), sqw-sqx+sqy-sqz)
		e.Y = math32.Atan2(2*(q.Y*q.W-q.X*q.Z), sqw+sqx-sqy-sqz)
		e.Z = math32.Asin(Clamp(2*(q.X*q.Y+q.Z*q.W), -1, 1))
	case RotationOrderXZY:
		e.X = math32.Atan2(2*(q.X*q.W+q.Y*q.Z), sqw-sqx+sqy-sqz)
		e.Y = math32.Atan2(2*(q.X*q.Z+q.Y*q.W), sqw+sqx-sqy-sqz)
		e.Z = math32.Asin(Clamp(2*(q.Z*q.W-q.X*q.Y), -1, 1))
	}
}

// SetFromRotationMatrix sets e from the rotation part of m using rotation
// order XYZ. m must be a pure rotation matrix.
func (e *Euler) SetFromRotationMatrix(m *Matrix4) {
	el := &m.El
	m11, m12, m13 := el[0], el[4], el[8]
	m22, m23 := el[5], el[9]
	m32, m33 := el[6], el[10]

	e.Order = RotationOrderXYZ
	e.Y = math32.Asin(Clamp(m13, -1, 1))
	if Abs(m13) < 0.99999 {
		e.X = math32.Atan2(-m23, m33)
		e.Z = math32.Atan2(-m12, m11)
	} else {
		e.X = math32.Atan2(m32, m22)
		e.Z = 0
	}
}

// ApproxEqual reports whether every angle of e is within eps of f and the
// orders match.
func (e Euler) ApproxEqual(f Euler, eps float32) bool {
	return e.Order == f.Order &&
		Abs(e.X-f.X) <= eps && Abs(e.Y-f.Y) <= eps && Abs(e.Z-f.Z) <= eps
}
