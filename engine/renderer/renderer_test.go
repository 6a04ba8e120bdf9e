package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/Carmen-Shannon/trigl/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubeGeometry builds a unit cube: 8 vertices, 12 faces.
func cubeGeometry() *geometry.Geometry {
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
	return geo
}

func testCamera() *scene.PerspectiveCamera {
	cam := scene.NewPerspectiveCamera(45, 1, 0.1, 100)
	cam.Position = math3.V3(0, 0, 3)
	cam.LookAt(math3.Vector3{})
	return cam
}

func newTestRenderer(t *testing.T) (*rendererImpl, *fakeGL) {
	t.Helper()
	gl := newFakeGL()
	r := NewRenderer(gl,
		WithSize(640, 480),
		WithClearColor(math3.ColorHex(0x101018), 1),
	).(*rendererImpl)
	return r, gl
}

func TestRenderEmptyScene(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	r.Render(s, cam, nil, false)

	// Clear happened with the configured color; no draws were issued.
	assert.Equal(t, 1, gl.clears)
	assert.InDelta(t, float64(math3.ColorHex(0x101018).R), float64(gl.clearColor[0]), 1e-5)
	assert.Empty(t, gl.drawElements)
	assert.Empty(t, gl.drawArrays)
	assert.Equal(t, 0, r.Info().Render.Calls)
}

func TestRenderSingleCube(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	mat := material.NewMeshBasicMaterial()
	mat.Color = math3.ColorHex(0xff0000)
	s.Add(scene.NewMesh(cubeGeometry(), mat))

	r.Render(s, cam, nil, false)

	// Exactly one DrawElements of 36 indices.
	require.Len(t, gl.drawElements, 1)
	assert.Equal(t, 36, gl.drawElements[0].count)
	assert.Equal(t, 1, r.Info().Render.Calls)
	assert.Equal(t, 12, r.Info().Render.Triangles)

	// The diffuse color reached the shader.
	assert.InDeltaSlice(t, []float32{1, 0, 0}, gl.uniformValues["diffuse"], 1e-5)
}

func TestRenderDrainsQueuesFIFO(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	mesh := scene.NewMesh(cubeGeometry(), material.NewMeshBasicMaterial())
	s.Add(mesh)
	require.Len(t, s.ObjectsAdded, 1)

	r.Render(s, cam, nil, false)
	assert.Empty(t, s.ObjectsAdded)

	s.Remove(mesh)
	require.Len(t, s.ObjectsRemoved, 1)
	r.Render(s, cam, nil, false)
	assert.Empty(t, s.ObjectsRemoved)
	assert.Equal(t, 0, r.Info().Render.Calls)
}

func TestFrustumCulling(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	mesh := scene.NewMesh(cubeGeometry(), material.NewMeshBasicMaterial())
	// Far behind the camera.
	mesh.Position = math3.V3(0, 0, 50)
	s.Add(mesh)

	r.Render(s, cam, nil, false)
	assert.Empty(t, gl.drawElements)

	// Disabling culling restores the draw.
	mesh.FrustumCulled = false
	r.Render(s, cam, nil, false)
	assert.Len(t, gl.drawElements, 1)
}

func TestInvisibleObjectSkipped(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	mesh := scene.NewMesh(cubeGeometry(), material.NewMeshBasicMaterial())
	mesh.Visible = false
	s.Add(mesh)

	r.Render(s, cam, nil, false)
	assert.Empty(t, gl.drawElements)
}

func TestProgramSharedAcrossMeshes(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	mat := material.NewMeshBasicMaterial()
	s.Add(scene.NewMesh(cubeGeometry(), mat))
	s.Add(scene.NewMesh(cubeGeometry(), mat))

	r.Render(s, cam, nil, false)
	assert.Equal(t, 1, r.progs.size())
	assert.Equal(t, 2, len(r.opaqueList))
	// One shared material holds one program reference.
	assert.Equal(t, 1, mat.Base().GL.(*materialBinding).program.refCount)
}

func TestMaterialChangeForcesRecompile(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	mat := material.NewMeshBasicMaterial()
	s.Add(scene.NewMesh(cubeGeometry(), mat))
	s.Add(scene.NewMesh(cubeGeometry(), mat))

	r.Render(s, cam, nil, false)
	require.Equal(t, 1, r.progs.size())
	mb := mat.Base().GL.(*materialBinding)
	firstProgram := mb.program
	assert.Equal(t, 1, firstProgram.refCount)

	// Toggling a feature and flagging the material creates exactly one
	// new program; the prior one dies when its refcount drains.
	mat.Map = texture.NewTexture(&texture.Image{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1})
	mat.Base().NeedsUpdate = true

	r.Render(s, cam, nil, false)
	assert.Equal(t, 1, r.progs.size())
	newProgram := mat.Base().GL.(*materialBinding).program
	assert.NotEqual(t, firstProgram.ID, newProgram.ID)
	assert.False(t, gl.livePrograms[firstProgram.GL.Value], "old program must be deleted")
	assert.True(t, gl.livePrograms[newProgram.GL.Value])
}

func TestEqualFeatureVectorsShareProgram(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	matA := material.NewMeshBasicMaterial()
	matB := material.NewMeshBasicMaterial()
	s.Add(scene.NewMesh(cubeGeometry(), matA))
	s.Add(scene.NewMesh(cubeGeometry(), matB))

	r.Render(s, cam, nil, false)

	pa := matA.Base().GL.(*materialBinding).program
	pb := matB.Base().GL.(*materialBinding).program
	assert.Same(t, pa, pb)
	assert.Equal(t, 2, pa.refCount)
}

func TestCompileFailureDowngradesObject(t *testing.T) {
	r, gl := newTestRenderer(t)
	gl.failCompile = true

	s := scene.NewScene()
	cam := testCamera()
	mat := material.NewMeshBasicMaterial()
	s.Add(scene.NewMesh(cubeGeometry(), mat))

	// The frame completes; the object is skipped and flagged unusable.
	r.Render(s, cam, nil, false)
	assert.Empty(t, gl.drawElements)
	assert.True(t, mat.Base().Unusable)

	// A later material mutation retries the compile.
	gl.failCompile = false
	mat.Base().NeedsUpdate = true
	r.Render(s, cam, nil, false)
	assert.Len(t, gl.drawElements, 1)
	assert.False(t, mat.Base().Unusable)
}

func TestTransparentSortedBackToFront(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	matNear := material.NewMeshBasicMaterial()
	matNear.Transparent = true
	near := scene.NewMesh(cubeGeometry(), matNear)
	near.Position = math3.V3(0, 0, 1)

	matFar := material.NewMeshBasicMaterial()
	matFar.Transparent = true
	far := scene.NewMesh(cubeGeometry(), matFar)
	far.Position = math3.V3(0, 0, -5)

	s.Add(near)
	s.Add(far)

	r.Render(s, cam, nil, false)

	require.Len(t, r.transparentList, 2)
	assert.Empty(t, r.opaqueList)
	// Back to front: the far cube draws first.
	assert.Equal(t, scene.Node(far), r.transparentList[0].node)
	assert.Equal(t, scene.Node(near), r.transparentList[1].node)
}

func TestRenderDepthOverridesSorting(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	matA := material.NewMeshBasicMaterial()
	matA.Transparent = true
	a := scene.NewMesh(cubeGeometry(), matA)
	a.Position = math3.V3(0, 0, 1)
	a.RenderDepth = -100
	a.RenderDepthSet = true

	matB := material.NewMeshBasicMaterial()
	matB.Transparent = true
	b := scene.NewMesh(cubeGeometry(), matB)
	b.Position = math3.V3(0, 0, -5)

	s.Add(a)
	s.Add(b)
	r.Render(s, cam, nil, false)

	// The override pushes the near cube to the very back of the order.
	require.Len(t, r.transparentList, 2)
	assert.Equal(t, scene.Node(b), r.transparentList[0].node)
}

func TestGeometryGroupSplitDraws(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	// 30000 single-material faces split into two groups and two draws.
	geo := geometry.NewGeometry()
	geo.Vertices = []math3.Vector3{{}, {X: 1}, {Y: 1}}
	geo.Faces = make([]geometry.Face3, 30000)
	for i := range geo.Faces {
		geo.Faces[i] = geometry.NewFace3(0, 1, 2)
	}
	geo.ComputeFaceNormals()
	geo.ComputeBoundingSphere()

	mesh := scene.NewMesh(geo, material.NewMeshBasicMaterial())
	mesh.FrustumCulled = false
	s.Add(mesh)

	r.Render(s, cam, nil, false)

	require.Len(t, gl.drawElements, 2)
	assert.Equal(t, 21845*3, gl.drawElements[0].count)
	assert.Equal(t, (30000-21845)*3, gl.drawElements[1].count)
}

func TestLightsAggregatedIntoUniforms(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	s.Add(scene.NewAmbientLight(math3.Color{R: 0.25, G: 0.5, B: 0.75}))
	dir := scene.NewDirectionalLight(math3.Color{R: 1, G: 1, B: 1}, 0.5)
	dir.Position = math3.V3(0, 1, 0)
	s.Add(dir)

	s.Add(scene.NewMesh(cubeGeometry(), material.NewMeshLambertMaterial()))

	r.Render(s, cam, nil, false)

	assert.InDeltaSlice(t, []float32{0.25, 0.5, 0.75}, gl.uniformValues["ambientLightColor"], 1e-5)
	assert.InDeltaSlice(t, []float32{0.5, 0.5, 0.5}, gl.uniformValues["directionalLightColor"], 1e-5)
	assert.InDeltaSlice(t, []float32{0, 1, 0}, gl.uniformValues["directionalLightDirection"], 1e-5)
}

func TestLightTailZeroedWhenCountShrinks(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	p1 := scene.NewPointLight(math3.Color{R: 1, G: 1, B: 1}, 1, 0)
	p2 := scene.NewPointLight(math3.Color{R: 1, G: 1, B: 1}, 1, 0)
	s.Add(p1)
	s.Add(p2)
	s.Add(scene.NewMesh(cubeGeometry(), material.NewMeshLambertMaterial()))

	r.Render(s, cam, nil, false)
	require.Equal(t, 2, r.lights.pointLength)

	s.Remove(p2)
	r.Render(s, cam, nil, false)
	assert.Equal(t, 1, r.lights.pointLength)
	// The stale second slot reads zero energy.
	assert.Equal(t, []float32{0, 0, 0}, r.lights.pointColors[3:6])
}

func TestRenderTargetBindAndMipmaps(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	target := texture.NewRenderTarget(256, 256)
	target.MinFilter = texture.FilterLinearMipMapLinear

	r.Render(s, cam, target, false)

	assert.Greater(t, gl.countCalls("BindFramebuffer"), 0)
	assert.Equal(t, 1, gl.countCalls("GenerateMipmap"))

	// Back to the default framebuffer restores the viewport.
	r.Render(s, cam, nil, false)
	assert.Contains(t, gl.calls, "BindFramebuffer(36160,0)")
}

func TestOverrideMaterialUsedForEveryObject(t *testing.T) {
	r, gl := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	s.Add(scene.NewMesh(cubeGeometry(), material.NewMeshLambertMaterial()))
	override := material.NewMeshBasicMaterial()
	override.Color = math3.ColorHex(0x00ff00)
	s.OverrideMaterial = override

	r.Render(s, cam, nil, false)
	require.Len(t, gl.drawElements, 1)
	assert.InDeltaSlice(t, []float32{0, 1, 0}, gl.uniformValues["diffuse"], 1e-5)
}

func TestPluginsRunInOrder(t *testing.T) {
	r, _ := newTestRenderer(t)
	s := scene.NewScene()
	cam := testCamera()

	var order []string
	r.AddPrePlugin(&testPlugin{name: "pre", order: &order})
	r.AddPostPlugin(&testPlugin{name: "post", order: &order})

	r.Render(s, cam, nil, false)
	assert.Equal(t, []string{"pre", "post"}, order)
}

type testPlugin struct {
	name    string
	order   *[]string
	initted bool
}

func (p *testPlugin) Init(r Renderer, gl glctx.Context) {
	p.initted = true
}

func (p *testPlugin) Render(s *scene.Scene, camera scene.CameraNode, viewportWidth, viewportHeight int) {
	*p.order = append(*p.order, p.name)
}
