package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayAt(t *testing.T) {
	r := NewRay(V3(1, 2, 3), V3(0, 0, -1))

	assert.True(t, r.At(0).Equals(r.Origin))

	// At(t) stays collinear with origin + t*direction.
	p := r.At(4.5)
	diff := p.Sub(r.Origin)
	cross := diff.Cross(r.Direction)
	assert.InDelta(t, 0, float64(cross.Length()), 1e-5)
	assert.InDelta(t, 4.5, float64(diff.Length()), 1e-5)
}

func TestRayIntersectSphere(t *testing.T) {
	r := NewRay(V3(0, 0, 5), V3(0, 0, -1))

	hit, ok := r.IntersectSphere(Sphere{Center: V3(0, 0, 0), Radius: 1})
	require.True(t, ok)
	assert.InDelta(t, 4, float64(hit), 1e-5)

	// Offset sphere out of the ray's path.
	_, ok = r.IntersectSphere(Sphere{Center: V3(5, 0, 0), Radius: 1})
	assert.False(t, ok)

	// Sphere fully behind the origin.
	_, ok = r.IntersectSphere(Sphere{Center: V3(0, 0, 10), Radius: 1})
	assert.False(t, ok)

	// Origin inside the sphere hits the far wall.
	hit, ok = r.IntersectSphere(Sphere{Center: V3(0, 0, 5), Radius: 2})
	require.True(t, ok)
	assert.InDelta(t, 2, float64(hit), 1e-5)
}

func TestRayIntersectBox(t *testing.T) {
	box := Box3{Min: V3(-1, -1, -1), Max: V3(1, 1, 1)}

	r := NewRay(V3(0, 0, 5), V3(0, 0, -1))
	hit, ok := r.IntersectBox(box)
	require.True(t, ok)
	assert.InDelta(t, 4, float64(hit), 1e-5)

	// Axis-parallel ray with zero components exercises the Inf/NaN slab
	// handling.
	r = NewRay(V3(0.5, 0.5, 5), V3(0, 0, -1))
	_, ok = r.IntersectBox(box)
	assert.True(t, ok)

	// Ray parallel to the X slab but outside it.
	r = NewRay(V3(5, 0, 0), V3(0, 0, -1))
	_, ok = r.IntersectBox(box)
	assert.False(t, ok)

	// Box behind the origin.
	r = NewRay(V3(0, 0, -5), V3(0, 0, -1))
	_, ok = r.IntersectBox(box)
	assert.False(t, ok)

	// Origin inside the box.
	r = NewRay(V3(0, 0, 0), V3(0, 0, -1))
	hit, ok = r.IntersectBox(box)
	require.True(t, ok)
	assert.InDelta(t, 1, float64(hit), 1e-5)
}

func TestRayIntersectTriangle(t *testing.T) {
	a, b, c := V3(-1, -1, 0), V3(1, -1, 0), V3(0, 1, 0)
	r := NewRay(V3(0, 0, 5), V3(0, 0, -1))

	hit, ok := r.IntersectTriangle(a, b, c, false)
	require.True(t, ok)
	assert.InDelta(t, 5, float64(hit), 1e-5)

	// The winding above faces +Z, so a ray from +Z sees the front.
	_, ok = r.IntersectTriangle(a, b, c, true)
	assert.True(t, ok)

	// Reversed winding is a backface and gets culled.
	_, ok = r.IntersectTriangle(c, b, a, true)
	assert.False(t, ok)

	// Miss outside the triangle.
	miss := NewRay(V3(5, 5, 5), V3(0, 0, -1))
	_, ok = miss.IntersectTriangle(a, b, c, false)
	assert.False(t, ok)

	// Triangle behind the origin.
	behind := NewRay(V3(0, 0, -1), V3(0, 0, -1))
	_, ok = behind.IntersectTriangle(a, b, c, false)
	assert.False(t, ok)
}

func TestRayIntersectPlane(t *testing.T) {
	plane := Plane{Normal: V3(0, 0, 1), Constant: 0}

	r := NewRay(V3(0, 0, 5), V3(0, 0, -1))
	hit, ok := r.IntersectPlane(plane)
	require.True(t, ok)
	assert.InDelta(t, 5, float64(hit), 1e-5)

	// Parallel off-plane ray misses.
	r = NewRay(V3(0, 0, 5), V3(1, 0, 0))
	_, ok = r.IntersectPlane(plane)
	assert.False(t, ok)

	// Plane behind the origin.
	r = NewRay(V3(0, 0, -5), V3(0, 0, -1))
	_, ok = r.IntersectPlane(plane)
	assert.False(t, ok)
}

func TestRayDistanceToPoint(t *testing.T) {
	r := NewRay(V3(0, 0, 0), V3(0, 0, -1))
	assert.InDelta(t, 1, float64(r.DistanceToPoint(V3(1, 0, -5))), 1e-5)
	// Points behind the origin measure to the origin.
	assert.InDelta(t, 2, float64(r.DistanceToPoint(V3(0, 0, 2))), 1e-5)
}
