package projector

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(90, 1, 0.1, 100)
	cam.Position = math3.V3(0, 0, 5)
	cam.LookAt(math3.Vector3{})
	cam.UpdateMatrixWorld(false)
	inv, _ := cam.MatrixWorld.Inverse()
	cam.MatrixWorldInverse = inv
	return cam
}

func quadMesh(z float32) *scene.Mesh {
	geo := geometry.NewGeometry()
	geo.Vertices = []math3.Vector3{
		{X: -1, Y: -1, Z: z}, {X: 1, Y: -1, Z: z},
		{X: 1, Y: 1, Z: z}, {X: -1, Y: 1, Z: z},
	}
	geo.Faces = []geometry.Face3{
		geometry.NewFace3(0, 1, 2),
		geometry.NewFace3(0, 2, 3),
	}
	geo.ComputeFaceNormals()
	geo.ComputeBoundingSphere()
	return scene.NewMesh(geo, material.NewMeshBasicMaterial())
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	p := NewProjector(WithWorkers(2))
	cam := testCamera()

	world := math3.V3(0.5, -0.25, 0)
	ndc := p.ProjectVector(world, cam)
	back := p.UnprojectVector(ndc, cam)
	assert.True(t, back.ApproxEqual(world, 1e-3))
}

func TestProjectVectorCenter(t *testing.T) {
	p := NewProjector()
	cam := testCamera()

	// A point straight ahead of the camera lands at the NDC center.
	ndc := p.ProjectVector(math3.V3(0, 0, 0), cam)
	assert.InDelta(t, 0, float64(ndc.X), 1e-5)
	assert.InDelta(t, 0, float64(ndc.Y), 1e-5)
}

func TestPickingRay(t *testing.T) {
	p := NewProjector()
	cam := testCamera()

	ray := p.PickingRay(0, 0, cam)
	assert.True(t, ray.Origin.ApproxEqual(math3.V3(0, 0, 5), 1e-5))
	assert.True(t, ray.Direction.ApproxEqual(math3.V3(0, 0, -1), 1e-4))

	// Off-center rays still originate at the camera.
	ray = p.PickingRay(0.5, 0.5, cam)
	assert.True(t, ray.Origin.ApproxEqual(math3.V3(0, 0, 5), 1e-5))
	assert.Greater(t, ray.Direction.X, float32(0))
	assert.Greater(t, ray.Direction.Y, float32(0))
	assert.InDelta(t, 1, float64(ray.Direction.Length()), 1e-5)
}

func TestProjectSceneFaces(t *testing.T) {
	p := NewProjector(WithWorkers(2))
	cam := testCamera()

	s := scene.NewScene()
	s.Add(quadMesh(0))

	list := p.ProjectScene(s, cam, false)
	require.Len(t, list.Faces, 2)
	assert.Empty(t, list.Lines)
	assert.Empty(t, list.Particles)

	f := list.Faces[0]
	assert.True(t, f.V1.Visible || f.V2.Visible || f.V3.Visible)
	assert.True(t, f.NormalModel.ApproxEqual(math3.V3(0, 0, 1), 1e-4))
	assert.InDelta(t, float64(f.V1.PositionScreen.Z), float64(f.Z), 1e-3)
}

func TestProjectSceneBackfaceCull(t *testing.T) {
	p := NewProjector()
	cam := testCamera()

	s := scene.NewScene()
	mesh := quadMesh(0)
	// Flip the mesh so its faces point away from the camera.
	mesh.SetRotation(math3.Euler{Y: math3.Pi})
	s.Add(mesh)

	list := p.ProjectScene(s, cam, false)
	assert.Empty(t, list.Faces)

	// Double-sided materials survive the flip.
	mesh.Material.Base().Side = material.SideDouble
	list = p.ProjectScene(s, cam, false)
	assert.Len(t, list.Faces, 2)
}

func TestProjectScenePainterSort(t *testing.T) {
	p := NewProjector(WithWorkers(2))
	cam := testCamera()

	s := scene.NewScene()
	s.Add(quadMesh(0))  // nearer
	s.Add(quadMesh(-3)) // farther

	list := p.ProjectScene(s, cam, true)
	require.Len(t, list.Faces, 4)
	// Painter order: farthest (largest NDC depth) first.
	for i := 1; i < len(list.Faces); i++ {
		assert.LessOrEqual(t, list.Faces[i].Z, list.Faces[i-1].Z)
	}
}

func TestProjectSceneLinesAndParticles(t *testing.T) {
	p := NewProjector()
	cam := testCamera()

	s := scene.NewScene()

	lineGeo := geometry.NewGeometry()
	lineGeo.Vertices = []math3.Vector3{{X: -1}, {X: 0}, {X: 1}}
	s.Add(scene.NewLine(lineGeo, material.NewLineBasicMaterial(), scene.LineStrip))

	particle := scene.NewParticle(material.NewParticleBasicMaterial())
	particle.Position = math3.V3(0, 1, 0)
	s.Add(particle)

	list := p.ProjectScene(s, cam, false)
	assert.Len(t, list.Lines, 2)
	require.Len(t, list.Particles, 1)
	assert.Greater(t, list.Particles[0].Y, float32(0))
}
