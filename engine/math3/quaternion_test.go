package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allOrders = []RotationOrder{
	RotationOrderXYZ, RotationOrderYXZ, RotationOrderZXY,
	RotationOrderZYX, RotationOrderYZX, RotationOrderXZY,
}

func TestEulerQuaternionRoundTrip(t *testing.T) {
	// Angles away from gimbal lock round-trip for every order.
	angles := []Vector3{
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: -0.7, Y: 0.4, Z: 1.2},
		{X: 1.1, Y: -0.9, Z: -0.3},
		{},
	}
	for _, order := range allOrders {
		for _, a := range angles {
			e := Euler{X: a.X, Y: a.Y, Z: a.Z, Order: order}

			var q Quaternion
			q.SetFromEuler(e)

			var back Euler
			back.SetFromQuaternion(q, order)
			assert.True(t, back.ApproxEqual(e, 1e-4),
				"order %s angles %+v came back as %+v", order, e, back)
		}
	}
}

func TestQuaternionAxisAngleMatchesEuler(t *testing.T) {
	var fromAxis, fromEuler Quaternion
	fromAxis.SetFromAxisAngle(V3(0, 1, 0), Pi/2)
	fromEuler.SetFromEuler(Euler{Y: Pi / 2, Order: RotationOrderXYZ})
	assert.True(t, fromAxis.ApproxEqual(fromEuler, 1e-5))
}

func TestQuaternionRotationMatrixRoundTrip(t *testing.T) {
	q := quatFromEuler(0.4, -0.8, 0.25, RotationOrderXYZ)

	var m Matrix4
	m.SetRotationFromQuaternion(q)

	var back Quaternion
	back.SetFromRotationMatrix(&m)
	same := back.ApproxEqual(q, 1e-4) ||
		back.ApproxEqual(Quaternion{-q.X, -q.Y, -q.Z, -q.W}, 1e-4)
	assert.True(t, same)
}

func TestQuaternionApplyMatchesMatrix(t *testing.T) {
	q := quatFromEuler(0.3, 1.2, -0.5, RotationOrderXYZ)
	var m Matrix4
	m.SetRotationFromQuaternion(q)

	v := V3(1, 2, 3)
	byQuat := v.ApplyQuaternion(q)
	byMatrix := v.ApplyMatrix4(&m)
	assert.True(t, byQuat.ApproxEqual(byMatrix, 1e-4))
}

func TestQuaternionSlerp(t *testing.T) {
	a := QuaternionIdentity()
	var b Quaternion
	b.SetFromAxisAngle(V3(0, 1, 0), Pi/2)

	assert.True(t, a.Slerp(b, 0).ApproxEqual(a, 1e-5))
	assert.True(t, a.Slerp(b, 1).ApproxEqual(b, 1e-5))

	var half Quaternion
	half.SetFromAxisAngle(V3(0, 1, 0), Pi/4)
	assert.True(t, a.Slerp(b, 0.5).ApproxEqual(half, 1e-4))
}

func TestQuaternionNormalizeZero(t *testing.T) {
	var q Quaternion
	assert.Equal(t, QuaternionIdentity(), q.Normalize())
}

func TestQuaternionMulComposesRotations(t *testing.T) {
	var yaw, pitch Quaternion
	yaw.SetFromAxisAngle(V3(0, 1, 0), Pi/2)
	pitch.SetFromAxisAngle(V3(1, 0, 0), Pi/2)

	// q = yaw * pitch applies pitch first, then yaw.
	q := yaw.Mul(pitch)
	v := V3(0, 0, 1).ApplyQuaternion(q)
	expected := V3(0, 0, 1).ApplyQuaternion(pitch).ApplyQuaternion(yaw)
	assert.True(t, v.ApproxEqual(expected, 1e-5))
}
