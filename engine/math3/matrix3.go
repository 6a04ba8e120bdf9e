package math3

import "log"

// Matrix3 is a 3x3 float32 matrix stored column-major, matching the layout
// expected by UniformMatrix3fv. Its main use is the normal matrix.
type Matrix3 struct {
	El [9]float32
}

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return Matrix3{El: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// Set assigns all elements from row-major arguments, storing them
// column-major.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) {
	e := &m.El
	e[0], e[3], e[6] = n11, n12, n13
	e[1], e[4], e[7] = n21, n22, n23
	e[2], e[5], e[8] = n31, n32, n33
}

// Transpose transposes m in place.
func (m *Matrix3) Transpose() {
	e := &m.El
	e[1], e[3] = e[3], e[1]
	e[2], e[6] = e[6], e[2]
	e[5], e[7] = e[7], e[5]
}

// SetInverseOf computes the inverse of the upper-left 3x3 of src into m.
// A singular input leaves m set to the identity and returns false.
func (m *Matrix3) SetInverseOf(src *Matrix4) bool {
	e := &src.El

	a11 := e[10]*e[5] - e[6]*e[9]
	a21 := -e[10]*e[1] + e[2]*e[9]
	a31 := e[6]*e[1] - e[2]*e[5]
	a12 := -e[10]*e[4] + e[6]*e[8]
	a22 := e[10]*e[0] - e[2]*e[8]
	a32 := -e[6]*e[0] + e[2]*e[4]
	a13 := e[9]*e[4] - e[5]*e[8]
	a23 := -e[9]*e[0] + e[1]*e[8]
	a33 := e[5]*e[0] - e[1]*e[4]

	det := e[0]*a11 + e[1]*a12 + e[2]*a13
	if det == 0 {
		*m = Identity3()
		return false
	}
	inv := 1 / det

	m.El[0] = a11 * inv
	m.El[1] = a21 * inv
	m.El[2] = a31 * inv
	m.El[3] = a12 * inv
	m.El[4] = a22 * inv
	m.El[5] = a32 * inv
	m.El[6] = a13 * inv
	m.El[7] = a23 * inv
	m.El[8] = a33 * inv
	return true
}

// SetNormalMatrix computes the normal matrix (inverse transpose of the
// upper-left 3x3) of the model-view matrix mv.
func (m *Matrix3) SetNormalMatrix(mv *Matrix4) {
	if !m.SetInverseOf(mv) {
		log.Printf("[math3] Matrix3.SetNormalMatrix: singular model-view matrix, using identity")
	}
	m.Transpose()
}
