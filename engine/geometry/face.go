package geometry

import (
	"github.com/Carmen-Shannon/trigl/engine/math3"
)

// Face3 is a triangle referencing three vertex positions by index.
// Per-vertex slices are either empty or exactly three entries long,
// corresponding to corners A, B, C.
type Face3 struct {
	// A, B, C are indices into the owning Geometry's Vertices slice.
	A, B, C int

	// Normal is the face normal, filled by ComputeFaceNormals.
	Normal math3.Vector3

	// VertexNormals holds one normal per corner when smooth shading is used.
	VertexNormals []math3.Vector3

	// Color is the flat face color when face colors are used.
	Color math3.Color

	// VertexColors holds one color per corner when per-vertex coloring is used.
	VertexColors []math3.Color

	// VertexTangents holds one tangent per corner, W carrying handedness.
	// Filled by ComputeTangents.
	VertexTangents []math3.Vector4

	// Centroid is the triangle centroid, filled by ComputeCentroids.
	Centroid math3.Vector3

	// MaterialIndex selects the material slot for this face and drives
	// geometry group partitioning.
	MaterialIndex int
}

// NewFace3 constructs a face over vertex indices a, b, c with material
// index 0.
func NewFace3(a, b, c int) Face3 {
	return Face3{A: a, B: b, C: c}
}

// Indices returns the three corner indices in order.
func (f *Face3) Indices() [3]int {
	return [3]int{f.A, f.B, f.C}
}

// MorphTarget is an alternate vertex-position array blended with the base
// mesh by a scalar influence. Vertices is parallel to the owning Geometry's
// Vertices slice.
type MorphTarget struct {
	Name     string
	Vertices []math3.Vector3
}

// MorphColor is an alternate per-face color array for a morph target.
type MorphColor struct {
	Name   string
	Colors []math3.Color
}

// MorphNormal holds the recomputed normals of one morph target: one face
// normal per face and one normal triple per face corner. Filled by
// ComputeMorphNormals.
type MorphNormal struct {
	FaceNormals   []math3.Vector3
	VertexNormals [][3]math3.Vector3
}
