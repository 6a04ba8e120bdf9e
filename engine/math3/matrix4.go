package math3

import "github.com/chewxy/math32"

// Matrix4 is a 4x4 float32 matrix stored column-major (OpenGL convention),
// matching the layout expected by UniformMatrix4fv.
type Matrix4 struct {
	El [16]float32
}

// Identity4 returns the identity matrix.
func Identity4() Matrix4 {
	var m Matrix4
	m.SetIdentity()
	return m
}

// SetIdentity resets m to the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Set assigns all elements from row-major arguments (n11 is row 1 column 1),
// storing them column-major.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	e := &m.El
	e[0], e[4], e[8], e[12] = n11, n12, n13, n14
	e[1], e[5], e[9], e[13] = n21, n22, n23, n24
	e[2], e[6], e[10], e[14] = n31, n32, n33, n34
	e[3], e[7], e[11], e[15] = n41, n42, n43, n44
}

// Mul returns the product m * n.
func (m Matrix4) Mul(n Matrix4) Matrix4 {
	var out Matrix4
	out.MulMatrices(&m, &n)
	return out
}

// MulMatrices stores the product a * b into m. m may alias a or b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var buf [16]float32
	ae, be := &a.El, &b.El
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += ae[k*4+row] * be[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	m.El = buf
}

// MulScalar scales every element of m by s in place.
func (m *Matrix4) MulScalar(s float32) {
	for i := range m.El {
		m.El[i] *= s
	}
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	e := &m.El
	var out Matrix4
	out.Set(
		e[0], e[1], e[2], e[3],
		e[4], e[5], e[6], e[7],
		e[8], e[9], e[10], e[11],
		e[12], e[13], e[14], e[15],
	)
	return out
}

// Determinant returns the determinant of m.
func (m Matrix4) Determinant() float32 {
	e := &m.El
	s0 := e[0]*e[5] - e[4]*e[1]
	s1 := e[0]*e[6] - e[4]*e[2]
	s2 := e[0]*e[7] - e[4]*e[3]
	s3 := e[1]*e[6] - e[5]*e[2]
	s4 := e[1]*e[7] - e[5]*e[3]
	s5 := e[2]*e[7] - e[6]*e[3]

	c5 := e[10]*e[15] - e[14]*e[11]
	c4 := e[9]*e[15] - e[13]*e[11]
	c3 := e[9]*e[14] - e[13]*e[10]
	c2 := e[8]*e[15] - e[12]*e[11]
	c1 := e[8]*e[14] - e[12]*e[10]
	c0 := e[8]*e[13] - e[12]*e[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// SetInverseOf computes the inverse of src into m using the cofactor
// (Laplace expansion) method. If src is singular, m is left unchanged and
// false is returned. m may alias src.
func (m *Matrix4) SetInverseOf(src *Matrix4) bool {
	e := &src.El

	s0 := e[0]*e[5] - e[4]*e[1]
	s1 := e[0]*e[6] - e[4]*e[2]
	s2 := e[0]*e[7] - e[4]*e[3]
	s3 := e[1]*e[6] - e[5]*e[2]
	s4 := e[1]*e[7] - e[5]*e[3]
	s5 := e[2]*e[7] - e[6]*e[3]

	c5 := e[10]*e[15] - e[14]*e[11]
	c4 := e[9]*e[15] - e[13]*e[11]
	c3 := e[9]*e[14] - e[13]*e[10]
	c2 := e[8]*e[15] - e[12]*e[11]
	c1 := e[8]*e[14] - e[12]*e[10]
	c0 := e[8]*e[13] - e[12]*e[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}
	inv := 1 / det

	var out [16]float32
	out[0] = (e[5]*c5 - e[6]*c4 + e[7]*c3) * inv
	out[1] = (-e[1]*c5 + e[2]*c4 - e[3]*c3) * inv
	out[2] = (e[13]*s5 - e[14]*s4 + e[15]*s3) * inv
	out[3] = (-e[9]*s5 + e[10]*s4 - e[11]*s3) * inv

	out[4] = (-e[4]*c5 + e[6]*c2 - e[7]*c1) * inv
	out[5] = (e[0]*c5 - e[2]*c2 + e[3]*c1) * inv
	out[6] = (-e[12]*s5 + e[14]*s2 - e[15]*s1) * inv
	out[7] = (e[8]*s5 - e[10]*s2 + e[11]*s1) * inv

	out[8] = (e[4]*c4 - e[5]*c2 + e[7]*c0) * inv
	out[9] = (-e[0]*c4 + e[1]*c2 - e[3]*c0) * inv
	out[10] = (e[12]*s4 - e[13]*s2 + e[15]*s0) * inv
	out[11] = (-e[8]*s4 + e[9]*s2 - e[11]*s0) * inv

	out[12] = (-e[4]*c3 + e[5]*c1 - e[6]*c0) * inv
	out[13] = (e[0]*c3 - e[1]*c1 + e[2]*c0) * inv
	out[14] = (-e[12]*s3 + e[13]*s1 - e[14]*s0) * inv
	out[15] = (e[8]*s3 - e[9]*s1 + e[10]*s0) * inv

	m.El = out
	return true
}

// Inverse returns the inverse of m and whether m was invertible. A singular
// matrix returns the identity.
func (m Matrix4) Inverse() (Matrix4, bool) {
	out := Identity4()
	ok := out.SetInverseOf(&m)
	return out, ok
}

// Compose builds m from a translation, a rotation quaternion, and a scale.
func (m *Matrix4) Compose(position Vector3, q Quaternion, scale Vector3) {
	m.SetRotationFromQuaternion(q)
	m.Scale(scale)
	m.SetPosition(position)
}

// Decompose splits m into translation, rotation, and scale. The rotation is
// only meaningful when m is a TRS matrix.
func (m *Matrix4) Decompose() (position Vector3, q Quaternion, scale Vector3) {
	e := &m.El

	sx := V3(e[0], e[1], e[2]).Length()
	sy := V3(e[4], e[5], e[6]).Length()
	sz := V3(e[8], e[9], e[10]).Length()

	// A negative determinant means one axis is mirrored.
	if m.Determinant() < 0 {
		sx = -sx
	}

	position = V3(e[12], e[13], e[14])
	scale = V3(sx, sy, sz)

	rot := *m
	invSX, invSY, invSZ := safeInv(sx), safeInv(sy), safeInv(sz)
	rot.El[0] *= invSX
	rot.El[1] *= invSX
	rot.El[2] *= invSX
	rot.El[4] *= invSY
	rot.El[5] *= invSY
	rot.El[6] *= invSY
	rot.El[8] *= invSZ
	rot.El[9] *= invSZ
	rot.El[10] *= invSZ

	q.SetFromRotationMatrix(&rot)
	return position, q, scale
}

// ExtractRotation copies the scale-normalized rotation part of src into m.
func (m *Matrix4) ExtractRotation(src *Matrix4) {
	e := &src.El
	sx := safeInv(V3(e[0], e[1], e[2]).Length())
	sy := safeInv(V3(e[4], e[5], e[6]).Length())
	sz := safeInv(V3(e[8], e[9], e[10]).Length())

	m.SetIdentity()
	m.El[0] = e[0] * sx
	m.El[1] = e[1] * sx
	m.El[2] = e[2] * sx
	m.El[4] = e[4] * sy
	m.El[5] = e[5] * sy
	m.El[6] = e[6] * sy
	m.El[8] = e[8] * sz
	m.El[9] = e[9] * sz
	m.El[10] = e[10] * sz
}

// SetRotationFromQuaternion builds a pure rotation matrix from q.
func (m *Matrix4) SetRotationFromQuaternion(q Quaternion) {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	m.Set(
		1-(yy+zz), xy-wz, xz+wy, 0,
		xy+wz, 1-(xx+zz), yz-wx, 0,
		xz-wy, yz+wx, 1-(xx+yy), 0,
		0, 0, 0, 1,
	)
}

// SetPosition overwrites the translation column of m.
func (m *Matrix4) SetPosition(v Vector3) {
	m.El[12], m.El[13], m.El[14] = v.X, v.Y, v.Z
}

// Position returns the translation column of m.
func (m *Matrix4) Position() Vector3 {
	return V3(m.El[12], m.El[13], m.El[14])
}

// Scale multiplies the basis columns of m by the components of s.
func (m *Matrix4) Scale(s Vector3) {
	e := &m.El
	e[0] *= s.X
	e[1] *= s.X
	e[2] *= s.X
	e[3] *= s.X
	e[4] *= s.Y
	e[5] *= s.Y
	e[6] *= s.Y
	e[7] *= s.Y
	e[8] *= s.Z
	e[9] *= s.Z
	e[10] *= s.Z
	e[11] *= s.Z
}

// MaxScaleOnAxis returns the largest scale factor among the three basis
// columns of m. Used to scale bounding sphere radii into world space.
func (m *Matrix4) MaxScaleOnAxis() float32 {
	e := &m.El
	sx := e[0]*e[0] + e[1]*e[1] + e[2]*e[2]
	sy := e[4]*e[4] + e[5]*e[5] + e[6]*e[6]
	sz := e[8]*e[8] + e[9]*e[9] + e[10]*e[10]
	return math32.Sqrt(Max(sx, Max(sy, sz)))
}

// SetLookAt orients m so its +Z axis points from target toward eye, with the
// up vector projected out. Cameras look down their local -Z; an object given
// SetLookAt(target, position, up) faces its +Z toward the target.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target).Normalize()
	if z.LengthSq() == 0 {
		z.Z = 1
	}

	x := up.Cross(z).Normalize()
	if x.LengthSq() == 0 {
		z.X += 0.0001
		z = z.Normalize()
		x = up.Cross(z).Normalize()
	}

	y := z.Cross(x)

	e := &m.El
	e[0], e[1], e[2] = x.X, x.Y, x.Z
	e[4], e[5], e[6] = y.X, y.Y, y.Z
	e[8], e[9], e[10] = z.X, z.Y, z.Z
}

// SetTranslation builds a pure translation matrix.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetRotationX builds a rotation of angle radians around the X axis.
func (m *Matrix4) SetRotationX(angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationY builds a rotation of angle radians around the Y axis.
func (m *Matrix4) SetRotationY(angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationZ builds a rotation of angle radians around the Z axis.
func (m *Matrix4) SetRotationZ(angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetRotationAxis builds a rotation of angle radians around an arbitrary
// normalized axis.
func (m *Matrix4) SetRotationAxis(axis Vector3, angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	tx, ty := t*x, t*y
	m.Set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// SetScale builds a pure scale matrix.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetFrustum builds an OpenGL perspective projection from frustum planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	e := &m.El
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)

	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	for i := range e {
		e[i] = 0
	}
	e[0] = x
	e[8] = a
	e[5] = y
	e[9] = b
	e[10] = c
	e[14] = d
	e[11] = -1
}

// SetPerspective builds a symmetric perspective projection from a vertical
// field of view in degrees.
func (m *Matrix4) SetPerspective(fovDeg, aspect, near, far float32) {
	ymax := near * math32.Tan(DegToRad(fovDeg*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// SetOrthographic builds an orthographic projection.
func (m *Matrix4) SetOrthographic(left, right, top, bottom, near, far float32) {
	w := right - left
	h := top - bottom
	p := far - near

	x := (right + left) / w
	y := (top + bottom) / h
	z := (far + near) / p

	m.Set(
		2/w, 0, 0, -x,
		0, 2/h, 0, -y,
		0, 0, -2/p, -z,
		0, 0, 0, 1,
	)
}

// ApproxEqual reports whether every element of m is within eps of n.
func (m *Matrix4) ApproxEqual(n *Matrix4, eps float32) bool {
	for i := range m.El {
		if Abs(m.El[i]-n.El[i]) > eps {
			return false
		}
	}
	return true
}
