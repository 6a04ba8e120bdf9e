package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func TestMatrix4MulIdentity(t *testing.T) {
	var m Matrix4
	m.SetTranslation(1, 2, 3)
	id := Identity4()

	out := m.Mul(id)
	assert.True(t, out.ApproxEqual(&m, eps))

	out = id.Mul(m)
	assert.True(t, out.ApproxEqual(&m, eps))
}

func TestMatrix4MulMatricesIntoTarget(t *testing.T) {
	var a, b, out Matrix4
	a.SetRotationY(0.5)
	b.SetTranslation(1, 2, 3)

	out.MulMatrices(&a, &b)
	expected := a.Mul(b)
	assert.True(t, out.ApproxEqual(&expected, eps))

	// Aliasing the target with an operand must still be correct.
	aliased := a
	aliased.MulMatrices(&aliased, &b)
	assert.True(t, aliased.ApproxEqual(&expected, eps))
}

func TestMatrix4InverseRoundTrip(t *testing.T) {
	var m Matrix4
	m.Compose(V3(1, -2, 3), quatFromEuler(0.3, 0.7, -0.2, RotationOrderXYZ), V3(2, 2, 2))

	inv, ok := m.Inverse()
	require.True(t, ok)

	product := m.Mul(inv)
	id := Identity4()
	assert.True(t, product.ApproxEqual(&id, 1e-4))
}

func TestMatrix4InverseSingular(t *testing.T) {
	var m Matrix4
	m.SetScale(0, 0, 0)
	_, ok := m.Inverse()
	assert.False(t, ok)
}

func TestMatrix4ComposeDecompose(t *testing.T) {
	pos := V3(4, -1, 2.5)
	q := quatFromEuler(0.2, -0.4, 1.1, RotationOrderXYZ)
	scl := V3(1.5, 2, 0.5)

	var m Matrix4
	m.Compose(pos, q, scl)

	gotPos, gotQ, gotScl := m.Decompose()
	assert.True(t, gotPos.ApproxEqual(pos, eps))
	assert.True(t, gotScl.ApproxEqual(scl, eps))
	assert.True(t, gotQ.ApproxEqual(q, 1e-4) || gotQ.ApproxEqual(Quaternion{-q.X, -q.Y, -q.Z, -q.W}, 1e-4))
}

func TestMatrix4TransformPointVsDirection(t *testing.T) {
	var m Matrix4
	m.SetTranslation(10, 0, 0)

	p := V3(1, 0, 0).ApplyMatrix4(&m)
	assert.True(t, p.ApproxEqual(V3(11, 0, 0), eps))

	// Directions ignore translation and come back normalized.
	d := V3(0, 3, 0).TransformDirection(&m)
	assert.True(t, d.ApproxEqual(V3(0, 1, 0), eps))
}

func TestMatrix4ApplyProjectionDividesByW(t *testing.T) {
	var proj Matrix4
	proj.SetPerspective(90, 1, 1, 100)

	// A point on the near plane straight ahead maps to NDC z = -1.
	out := V3(0, 0, -1).ApplyProjection(&proj)
	assert.InDelta(t, -1, float64(out.Z), 1e-4)

	// A point at the top edge of the frustum maps to NDC y = 1.
	out = V3(0, 1, -1).ApplyProjection(&proj)
	assert.InDelta(t, 1, float64(out.Y), 1e-4)
}

func TestMatrix4MaxScaleOnAxis(t *testing.T) {
	var m Matrix4
	m.SetScale(1, 5, 2)
	assert.InDelta(t, 5, float64(m.MaxScaleOnAxis()), 1e-5)
}

func TestMatrix4LookAt(t *testing.T) {
	var m Matrix4
	m.SetIdentity()
	// Eye behind the target: +Z column should point from target to eye.
	m.SetLookAt(V3(0, 0, 5), V3(0, 0, 0), V3(0, 1, 0))
	assert.InDelta(t, 1, float64(m.El[10]), eps) // z axis = +Z
	assert.InDelta(t, 1, float64(m.El[0]), eps)  // x axis = +X
}

func TestMatrix4ExtractRotationDropsScale(t *testing.T) {
	var src, rot Matrix4
	src.Compose(V3(0, 0, 0), quatFromEuler(0, Pi/2, 0, RotationOrderXYZ), V3(3, 3, 3))
	rot.ExtractRotation(&src)

	// Basis columns are unit length.
	assert.InDelta(t, 1, float64(V3(rot.El[0], rot.El[1], rot.El[2]).Length()), eps)
	assert.InDelta(t, 1, float64(V3(rot.El[4], rot.El[5], rot.El[6]).Length()), eps)
	assert.InDelta(t, 1, float64(V3(rot.El[8], rot.El[9], rot.El[10]).Length()), eps)
}

func TestVector3DivScalarZero(t *testing.T) {
	v := V3(1, 2, 3).DivScalar(0)
	assert.True(t, v.Equals(Vector3{}))

	n := Vector3{}.Normalize()
	assert.True(t, n.Equals(Vector3{}))
}

func TestMatrix3NormalMatrix(t *testing.T) {
	var mv Matrix4
	mv.SetScale(2, 2, 2)

	var nm Matrix3
	nm.SetNormalMatrix(&mv)

	// Inverse transpose of a uniform scale is the reciprocal scale.
	n := V3(0, 0, 1).ApplyMatrix3(&nm)
	assert.True(t, n.ApproxEqual(V3(0, 0, 0.5), eps))
}

// quatFromEuler is a test shorthand.
func quatFromEuler(x, y, z float32, order RotationOrder) Quaternion {
	var q Quaternion
	q.SetFromEuler(Euler{X: x, Y: y, Z: z, Order: order})
	return q
}
