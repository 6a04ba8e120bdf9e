package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
)

// Group is a plain transform node with no drawable payload, used to gather
// children under one transform.
type Group struct {
	Object3D
}

// NewGroup creates an empty transform node.
func NewGroup() *Group {
	g := &Group{}
	initObject3D(g, &g.Object3D)
	return g
}

func (g *Group) Base() *Object3D { return &g.Object3D }

// Mesh is a drawable triangle surface: a Geometry (or pre-attributed
// BufferGeometry) paired with a Material, plus per-object morph influence
// state.
type Mesh struct {
	Object3D

	// Geometry is the Face3-based triangle source; nil when Buffer is set.
	Geometry *geometry.Geometry

	// Buffer is the pre-indexed, pre-attributed source; nil when Geometry
	// is set.
	Buffer *geometry.BufferGeometry

	// Material resolves the shader program for every draw of this mesh.
	Material material.Material

	// MorphTargetInfluences blends each morph target by a scalar weight,
	// aligned with Geometry.MorphTargets.
	MorphTargetInfluences []float32

	// MorphTargetForcedOrder, when non-empty, fixes which influences bind
	// to the shader's influence slots instead of the top-K-by-magnitude
	// selection.
	MorphTargetForcedOrder []int

	// Bones and BoneInverses drive skinning when the material enables it.
	// BoneInverses holds each bone's inverse bind matrix, parallel to
	// Bones.
	Bones        []*Bone
	BoneInverses []math3.Matrix4

	// BoneMatrices is the flattened column-major bone matrix array
	// uploaded to the shader, refreshed by UpdateBoneMatrices.
	BoneMatrices []float32

	morphTargetDictionary map[string]int
}

// NewMesh creates a mesh over a Face3 geometry, sizing the morph influence
// array to the geometry's targets.
func NewMesh(geo *geometry.Geometry, mat material.Material) *Mesh {
	m := &Mesh{Geometry: geo, Material: mat}
	initObject3D(m, &m.Object3D)
	m.UpdateMorphTargets()
	return m
}

// NewBufferMesh creates a mesh over a BufferGeometry.
func NewBufferMesh(buf *geometry.BufferGeometry, mat material.Material) *Mesh {
	m := &Mesh{Buffer: buf, Material: mat}
	initObject3D(m, &m.Object3D)
	return m
}

func (m *Mesh) Base() *Object3D { return &m.Object3D }

// UpdateMorphTargets resizes the influence array to the geometry's morph
// target count and rebuilds the name lookup. Call after mutating the
// geometry's MorphTargets.
func (m *Mesh) UpdateMorphTargets() {
	if m.Geometry == nil || len(m.Geometry.MorphTargets) == 0 {
		m.MorphTargetInfluences = nil
		m.morphTargetDictionary = nil
		return
	}
	m.MorphTargetInfluences = make([]float32, len(m.Geometry.MorphTargets))
	m.morphTargetDictionary = make(map[string]int, len(m.Geometry.MorphTargets))
	for i, t := range m.Geometry.MorphTargets {
		m.morphTargetDictionary[t.Name] = i
	}
}

// MorphTargetIndexByName returns the influence index of the named morph
// target, or -1 when the geometry has no target by that name.
func (m *Mesh) MorphTargetIndexByName(name string) int {
	if i, ok := m.morphTargetDictionary[name]; ok {
		return i
	}
	return -1
}

// UpdateBoneMatrices refreshes the flattened bone matrix array from the
// bones' current world matrices: mesh-local bone transform times the
// bone's inverse bind matrix. World matrices must be current.
func (m *Mesh) UpdateBoneMatrices() {
	if len(m.BoneMatrices) != len(m.Bones)*16 {
		m.BoneMatrices = make([]float32, len(m.Bones)*16)
	}
	meshInverse, _ := m.MatrixWorld.Inverse()

	var skin, local math3.Matrix4
	for i, bone := range m.Bones {
		local.MulMatrices(&meshInverse, &bone.MatrixWorld)
		if i < len(m.BoneInverses) {
			skin.MulMatrices(&local, &m.BoneInverses[i])
		} else {
			skin = local
		}
		bone.SkinMatrix = skin
		copy(m.BoneMatrices[i*16:], skin.El[:])
	}
}
