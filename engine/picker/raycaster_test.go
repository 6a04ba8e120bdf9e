package picker

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitCube builds a unit cube mesh centered at position.
func unitCube(position math3.Vector3) *scene.Mesh {
	geo := geometry.NewGeometry()
	geo.Vertices = []math3.Vector3{
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
	}
	quads := [][4]int{
		{4, 5, 6, 7}, {1, 0, 3, 2}, {5, 1, 2, 6},
		{0, 4, 7, 3}, {7, 6, 2, 3}, {0, 1, 5, 4},
	}
	for _, q := range quads {
		geo.Faces = append(geo.Faces,
			geometry.NewFace3(q[0], q[1], q[2]),
			geometry.NewFace3(q[0], q[2], q[3]),
		)
	}
	geo.ComputeFaceNormals()
	geo.ComputeBoundingSphere()

	mesh := scene.NewMesh(geo, material.NewMeshBasicMaterial())
	mesh.Position = position
	return mesh
}

func TestRaycasterTwoCubes(t *testing.T) {
	s := scene.NewScene()
	left := unitCube(math3.V3(-1, 0, 0))
	left.Name = "left"
	right := unitCube(math3.V3(1, 0, 0))
	right.Name = "right"
	s.Add(left)
	s.Add(right)
	s.UpdateMatrixWorld(false)

	// Straight down the gap between the cubes: no intersection.
	rc := NewRaycaster(math3.V3(0, 0, 5), math3.V3(0, 0, -1))
	assert.Empty(t, rc.IntersectObject(s, true))

	// Aimed at the left cube: hits only it, front face at distance ~4.5.
	rc = NewRaycaster(math3.V3(-1, 0, 5), math3.V3(0, 0, -1))
	hits := rc.IntersectObject(s, true)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.Equal(t, "left", h.Object.Base().Name)
	}
	assert.InDelta(t, 4.5, float64(hits[0].Distance), 1e-4)
	assert.True(t, hits[0].Point.ApproxEqual(math3.V3(-1, 0, 0.5), 1e-4))
}

func TestRaycasterSortsByDistance(t *testing.T) {
	s := scene.NewScene()
	near := unitCube(math3.V3(0, 0, 0))
	far := unitCube(math3.V3(0, 0, -10))
	s.Add(near)
	s.Add(far)
	s.UpdateMatrixWorld(false)

	rc := NewRaycaster(math3.V3(0, 0, 5), math3.V3(0, 0, -1))
	hits := rc.IntersectObject(s, true)
	require.GreaterOrEqual(t, len(hits), 2)
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i].Distance, hits[i-1].Distance)
	}
	assert.Equal(t, scene.Node(near), hits[0].Object)
}

func TestRaycasterBackfaceCulling(t *testing.T) {
	cube := unitCube(math3.Vector3{})
	cube.UpdateMatrixWorld(false)

	// From inside the cube, all faces show their backs; front-side
	// materials see nothing.
	rc := NewRaycaster(math3.Vector3{}, math3.V3(0, 0, -1))
	assert.Empty(t, rc.IntersectObject(cube, false))

	// A double-sided material sees the interior wall.
	cube.Material.Base().Side = material.SideDouble
	hits := rc.IntersectObject(cube, false)
	require.NotEmpty(t, hits)
	assert.InDelta(t, 0.5, float64(hits[0].Distance), 1e-4)
}

func TestRaycasterNearFarClamp(t *testing.T) {
	cube := unitCube(math3.Vector3{})
	cube.UpdateMatrixWorld(false)

	rc := NewRaycaster(math3.V3(0, 0, 5), math3.V3(0, 0, -1))
	rc.Near = 5
	assert.Empty(t, rc.IntersectObject(cube, false))

	rc.Near = 0
	rc.Far = 4
	assert.Empty(t, rc.IntersectObject(cube, false))

	rc.Far = 10
	assert.NotEmpty(t, rc.IntersectObject(cube, false))
}

func TestRaycasterScaledMesh(t *testing.T) {
	// A scaled-up cube must pass the bounding-sphere reject (radius
	// scaled by the max world axis scale) and hit at the scaled surface.
	cube := unitCube(math3.Vector3{})
	cube.Scale = math3.V3(4, 4, 4)
	cube.UpdateMatrixWorld(false)

	rc := NewRaycaster(math3.V3(0, 0, 5), math3.V3(0, 0, -1))
	hits := rc.IntersectObject(cube, false)
	require.NotEmpty(t, hits)
	assert.InDelta(t, 3, float64(hits[0].Distance), 1e-4)
}

func TestRaycasterParticle(t *testing.T) {
	p := scene.NewParticle(material.NewParticleBasicMaterial())
	p.Position = math3.V3(0.5, 0, 0)
	p.Scale = math3.V3(1, 1, 1)
	p.UpdateMatrixWorld(false)

	rc := NewRaycaster(math3.V3(0, 0, 5), math3.V3(0, 0, -1))
	hits := rc.IntersectObject(p, false)
	require.Len(t, hits, 1)
	assert.Equal(t, scene.Node(p), hits[0].Object)
	assert.Equal(t, -1, hits[0].FaceIndex)

	// Out of reach of the particle's scale.
	p.Position = math3.V3(3, 0, 0)
	p.UpdateMatrixWorld(false)
	assert.Empty(t, rc.IntersectObject(p, false))
}
