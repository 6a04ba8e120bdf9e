package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testFrustum builds the frustum of a camera at the origin looking down
// -Z with a 90 degree field of view.
func testFrustum() Frustum {
	var proj Matrix4
	proj.SetPerspective(90, 1, 1, 100)

	var f Frustum
	f.SetFromMatrix(&proj) // view = identity
	return f
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.ContainsPoint(V3(0, 0, -10)))
	assert.False(t, f.ContainsPoint(V3(0, 0, 10)))   // behind the camera
	assert.False(t, f.ContainsPoint(V3(0, 0, -0.5))) // before the near plane
	assert.False(t, f.ContainsPoint(V3(50, 0, -10))) // far off to the side
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.IntersectsSphere(Sphere{Center: V3(0, 0, -10), Radius: 1}))

	// Entirely behind the near plane.
	assert.False(t, f.IntersectsSphere(Sphere{Center: V3(0, 0, 5), Radius: 1}))

	// Straddling a side plane still intersects.
	assert.True(t, f.IntersectsSphere(Sphere{Center: V3(10.5, 0, -10), Radius: 1}))

	// Entirely outside a side plane.
	assert.False(t, f.IntersectsSphere(Sphere{Center: V3(30, 0, -10), Radius: 1}))
}

func TestBox3SetFromPoints(t *testing.T) {
	var b Box3
	b.SetFromPoints([]Vector3{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 5, Z: 0}})
	assert.True(t, b.Min.Equals(V3(-1, 2, 0)))
	assert.True(t, b.Max.Equals(V3(1, 5, 3)))
	assert.True(t, b.ContainsPoint(V3(0, 3, 1)))
	assert.False(t, b.ContainsPoint(V3(2, 3, 1)))

	b.SetFromPoints(nil)
	assert.True(t, b.IsEmpty())
	assert.True(t, b.Size().Equals(Vector3{}))
}

func TestSphereSetFromPoints(t *testing.T) {
	var s Sphere
	s.SetFromPoints([]Vector3{{X: -1}, {X: 1}})
	assert.True(t, s.Center.ApproxEqual(Vector3{}, 1e-5))
	assert.InDelta(t, 1, float64(s.Radius), 1e-5)

	assert.True(t, s.ContainsPoint(V3(0.5, 0, 0)))
	assert.False(t, s.ContainsPoint(V3(1.5, 0, 0)))
}

func TestSphereApplyMatrix4ScalesByMaxAxis(t *testing.T) {
	s := Sphere{Center: V3(1, 0, 0), Radius: 2}
	var m Matrix4
	m.SetScale(1, 3, 1)

	world := s.ApplyMatrix4(&m)
	assert.InDelta(t, 6, float64(world.Radius), 1e-5)
	assert.True(t, world.Center.ApproxEqual(V3(1, 0, 0), 1e-5))
}

func TestTriangleBarycoord(t *testing.T) {
	tri := Triangle{A: V3(0, 0, 0), B: V3(1, 0, 0), C: V3(0, 1, 0)}

	bc := tri.BarycoordFromPoint(V3(0, 0, 0))
	assert.True(t, bc.ApproxEqual(V3(1, 0, 0), 1e-5))

	assert.True(t, tri.ContainsPoint(V3(0.25, 0.25, 0)))
	assert.False(t, tri.ContainsPoint(V3(1, 1, 0)))

	n := tri.Normal()
	assert.True(t, n.ApproxEqual(V3(0, 0, 1), 1e-5))
}
