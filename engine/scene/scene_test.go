package scene

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMesh() *Mesh {
	geo := geometry.NewGeometry()
	geo.Vertices = []math3.Vector3{{}, {X: 1}, {Y: 1}}
	geo.Faces = []geometry.Face3{geometry.NewFace3(0, 1, 2)}
	return NewMesh(geo, material.NewMeshBasicMaterial())
}

func TestSceneRecordsAddedObjects(t *testing.T) {
	s := NewScene()
	mesh := testMesh()

	s.Add(mesh)
	require.Len(t, s.Objects, 1)
	require.Len(t, s.ObjectsAdded, 1)
	assert.Equal(t, Node(mesh), s.ObjectsAdded[0])
}

func TestSceneRecordsSubtree(t *testing.T) {
	s := NewScene()

	group := NewGroup()
	mesh := testMesh()
	group.Add(mesh)

	// Adding a parent registers the whole subtree.
	s.Add(group)
	assert.True(t, containsNode(s.Objects, mesh))
	assert.True(t, containsNode(s.ObjectsAdded, mesh))

	// Adding into an attached subtree bubbles up to the scene.
	late := testMesh()
	group.Add(late)
	assert.True(t, containsNode(s.Objects, late))
}

func TestSceneRemoveQueues(t *testing.T) {
	s := NewScene()
	mesh := testMesh()
	s.Add(mesh)
	s.Remove(mesh)

	assert.Empty(t, s.Objects)
	require.Len(t, s.ObjectsRemoved, 1)
	// An add-then-remove before any drain cancels the pending add.
	assert.Empty(t, s.ObjectsAdded)
}

func TestSceneQueueFIFOOrder(t *testing.T) {
	s := NewScene()
	first := testMesh()
	second := testMesh()
	s.Add(first)
	s.Add(second)

	require.Len(t, s.ObjectsAdded, 2)
	assert.Equal(t, Node(first), s.ObjectsAdded[0])
	assert.Equal(t, Node(second), s.ObjectsAdded[1])
}

func TestSceneTracksLights(t *testing.T) {
	s := NewScene()
	ambient := NewAmbientLight(math3.ColorHex(0x404040))
	dir := NewDirectionalLight(math3.ColorHex(0xffffff), 1)

	s.Add(ambient)
	s.Add(dir)
	assert.Len(t, s.Lights, 2)
	// Lights never enter the renderable object list.
	assert.Empty(t, s.Objects)

	s.Remove(dir)
	assert.Len(t, s.Lights, 1)
}

func TestSceneIgnoresCamerasAndBones(t *testing.T) {
	s := NewScene()
	s.Add(NewPerspectiveCamera(45, 1, 0.1, 100))
	s.Add(NewBone())
	assert.Empty(t, s.Objects)
	assert.Empty(t, s.ObjectsAdded)
}

func TestCameraProjectionMatrices(t *testing.T) {
	persp := NewPerspectiveCamera(90, 1, 1, 100)
	// fov 90, aspect 1: the [1][1] element is cot(45 deg) = 1.
	assert.InDelta(t, 1, float64(persp.ProjectionMatrix.El[5]), 1e-5)

	ortho := NewOrthographicCamera(-2, 2, 1, -1, 0.1, 10)
	assert.InDelta(t, 0.5, float64(ortho.ProjectionMatrix.El[0]), 1e-5)
	assert.InDelta(t, 1, float64(ortho.ProjectionMatrix.El[5]), 1e-5)
}

func TestCameraLookAtFacesDownMinusZ(t *testing.T) {
	cam := NewPerspectiveCamera(45, 1, 0.1, 100)
	cam.Position = math3.V3(0, 0, 5)
	cam.LookAt(math3.Vector3{})
	cam.UpdateMatrixWorld(false)

	// The camera looks down its local -Z axis.
	forward := math3.V3(0, 0, -1).ApplyQuaternion(cam.Quaternion())
	assert.True(t, forward.ApproxEqual(math3.V3(0, 0, -1), 1e-5))
}

func TestMeshMorphTargetDictionary(t *testing.T) {
	geo := geometry.NewGeometry()
	geo.Vertices = []math3.Vector3{{}, {X: 1}, {Y: 1}}
	geo.Faces = []geometry.Face3{geometry.NewFace3(0, 1, 2)}
	geo.MorphTargets = []geometry.MorphTarget{
		{Name: "open", Vertices: geo.Vertices},
		{Name: "closed", Vertices: geo.Vertices},
	}

	mesh := NewMesh(geo, material.NewMeshBasicMaterial())
	require.Len(t, mesh.MorphTargetInfluences, 2)
	assert.Equal(t, 1, mesh.MorphTargetIndexByName("closed"))
	assert.Equal(t, -1, mesh.MorphTargetIndexByName("missing"))
}

func TestMeshUpdateBoneMatrices(t *testing.T) {
	mesh := testMesh()
	bone := NewBone()
	bone.Position = math3.V3(0, 2, 0)
	mesh.Add(bone)
	mesh.Bones = []*Bone{bone}
	mesh.BoneInverses = []math3.Matrix4{math3.Identity4()}

	mesh.UpdateMatrixWorld(false)
	mesh.UpdateBoneMatrices()

	require.Len(t, mesh.BoneMatrices, 16)
	// The bone's mesh-local translation lands in the matrix's position
	// column.
	assert.InDelta(t, 2, float64(mesh.BoneMatrices[13]), 1e-5)
}
