package geometry

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTriangles builds two triangles sharing the edge (1, 2).
func twoTriangles() *Geometry {
	geo := NewGeometry()
	geo.Vertices = []math3.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	geo.Faces = []Face3{
		NewFace3(0, 1, 2),
		NewFace3(1, 3, 2),
	}
	return geo
}

func TestComputeFaceNormals(t *testing.T) {
	geo := twoTriangles()
	geo.ComputeFaceNormals()

	for i := range geo.Faces {
		n := geo.Faces[i].Normal
		assert.InDelta(t, 1, float64(n.Length()), 1e-6, "face %d normal not unit", i)
		assert.True(t, n.ApproxEqual(math3.V3(0, 0, 1), 1e-5))
	}
}

func TestComputeVertexNormals(t *testing.T) {
	geo := twoTriangles()
	// Tilt the second triangle out of the plane so normals differ.
	geo.Vertices[3].Z = 1
	geo.ComputeFaceNormals()
	geo.ComputeVertexNormals()

	// Every per-vertex normal is the normalized sum of the face normals
	// incident on that vertex.
	sums := make([]math3.Vector3, len(geo.Vertices))
	for i := range geo.Faces {
		f := &geo.Faces[i]
		for _, vi := range f.Indices() {
			sums[vi] = sums[vi].Add(f.Normal)
		}
	}
	for i := range geo.Faces {
		f := &geo.Faces[i]
		require.Len(t, f.VertexNormals, 3)
		for corner, vi := range f.Indices() {
			expected := sums[vi].Normalize()
			assert.True(t, f.VertexNormals[corner].ApproxEqual(expected, 1e-5))
			assert.InDelta(t, 1, float64(f.VertexNormals[corner].Length()), 1e-6)
		}
	}
}

func TestComputeCentroids(t *testing.T) {
	geo := twoTriangles()
	geo.ComputeCentroids()
	want := math3.V3(1.0/3.0, 1.0/3.0, 0)
	assert.True(t, geo.Faces[0].Centroid.ApproxEqual(want, 1e-5))
}

func TestComputeBounds(t *testing.T) {
	geo := twoTriangles()
	geo.ComputeBoundingBox()
	geo.ComputeBoundingSphere()

	require.NotNil(t, geo.BoundingBox)
	assert.True(t, geo.BoundingBox.Min.Equals(math3.V3(0, 0, 0)))
	assert.True(t, geo.BoundingBox.Max.Equals(math3.V3(1, 1, 0)))

	require.NotNil(t, geo.BoundingSphere)
	assert.True(t, geo.BoundingSphere.ContainsPoint(math3.V3(1, 1, 0)))
}

func TestMergeVertices(t *testing.T) {
	geo := NewGeometry()
	geo.Vertices = []math3.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		// Duplicate of vertex 1 within the 1e-4 tolerance.
		{X: 1.00001, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	geo.Faces = []Face3{
		NewFace3(0, 1, 2),
		NewFace3(3, 4, 2),
	}

	// World-space triangles before the merge.
	before := triangleSet(geo)

	removed := geo.MergeVertices()
	assert.Equal(t, 1, removed)
	assert.Len(t, geo.Vertices, 4)

	// No two remaining vertices agree to 4 decimal places.
	for i := range geo.Vertices {
		for j := i + 1; j < len(geo.Vertices); j++ {
			assert.False(t, geo.Vertices[i].ApproxEqual(geo.Vertices[j], 1e-4/2))
		}
	}

	// All indices valid, triangles unchanged in space.
	require.NoError(t, geo.Validate())
	assert.InDeltaSlice(t, before, triangleSet(geo), 1e-4)
}

func TestMergeVerticesDropsDegenerateFaces(t *testing.T) {
	geo := NewGeometry()
	geo.Vertices = []math3.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0}, // duplicate of 0
		{X: 1, Y: 0, Z: 0},
	}
	geo.Faces = []Face3{NewFace3(0, 1, 2)}
	geo.FaceVertexUVs[0] = [][]math3.Vector2{{{X: 0}, {X: 0.5}, {X: 1}}}

	geo.MergeVertices()
	assert.Empty(t, geo.Faces)
	assert.Empty(t, geo.FaceVertexUVs[0])
}

// triangleSet flattens every face's corner positions.
func triangleSet(geo *Geometry) []float32 {
	var out []float32
	for i := range geo.Faces {
		for _, vi := range geo.Faces[i].Indices() {
			v := geo.Vertices[vi]
			out = append(out, v.X, v.Y, v.Z)
		}
	}
	return out
}

func TestComputeTangents(t *testing.T) {
	geo := twoTriangles()
	geo.FaceVertexUVs[0] = [][]math3.Vector2{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}
	geo.ComputeFaceNormals()
	geo.ComputeVertexNormals()
	geo.ComputeTangents()

	assert.True(t, geo.HasTangents)
	for i := range geo.Faces {
		f := &geo.Faces[i]
		require.Len(t, f.VertexTangents, 3)
		for corner := range f.VertexTangents {
			tan := f.VertexTangents[corner]
			// Unit xyz, orthogonal to the vertex normal, handedness ±1.
			assert.InDelta(t, 1, float64(tan.XYZ().Length()), 1e-4)
			assert.InDelta(t, 0, float64(tan.XYZ().Dot(f.VertexNormals[corner])), 1e-4)
			assert.True(t, tan.W == 1 || tan.W == -1)
		}
	}
}

func TestComputeLineDistances(t *testing.T) {
	geo := NewGeometry()
	geo.Vertices = []math3.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 3, Y: 4, Z: 0},
	}
	geo.ComputeLineDistances()

	require.Len(t, geo.LineDistances, 3)
	assert.InDelta(t, 0, float64(geo.LineDistances[0]), 1e-5)
	assert.InDelta(t, 3, float64(geo.LineDistances[1]), 1e-5)
	assert.InDelta(t, 7, float64(geo.LineDistances[2]), 1e-5)
	assert.True(t, geo.LineDistancesNeedUpdate)
}

func TestApplyMatrix(t *testing.T) {
	geo := twoTriangles()
	geo.ComputeFaceNormals()
	geo.ComputeCentroids()

	var m math3.Matrix4
	m.SetTranslation(5, 0, 0)
	geo.ApplyMatrix(&m)

	assert.True(t, geo.Vertices[0].ApproxEqual(math3.V3(5, 0, 0), 1e-5))
	// Pure translation leaves normals alone.
	assert.True(t, geo.Faces[0].Normal.ApproxEqual(math3.V3(0, 0, 1), 1e-5))
	assert.True(t, geo.VerticesNeedUpdate)
	assert.True(t, geo.NormalsNeedUpdate)
}

func TestValidate(t *testing.T) {
	geo := NewGeometry()
	assert.Error(t, geo.Validate())

	geo = twoTriangles()
	assert.NoError(t, geo.Validate())

	geo.Faces[0].C = 17
	assert.Error(t, geo.Validate())
}

func TestComputeMorphNormals(t *testing.T) {
	geo := twoTriangles()
	morphed := make([]math3.Vector3, len(geo.Vertices))
	copy(morphed, geo.Vertices)
	morphed[3].Z = 2
	geo.MorphTargets = []MorphTarget{{Name: "bulge", Vertices: morphed}}

	geo.ComputeFaceNormals()
	geo.ComputeVertexNormals()
	baseNormal := geo.Faces[1].Normal

	geo.ComputeMorphNormals()

	require.Len(t, geo.MorphNormals, 1)
	require.Len(t, geo.MorphNormals[0].FaceNormals, 2)
	// The morphed second face tilts; the base normals are restored.
	assert.False(t, geo.MorphNormals[0].FaceNormals[1].ApproxEqual(baseNormal, 1e-3))
	assert.True(t, geo.Faces[1].Normal.ApproxEqual(baseNormal, 1e-6))
	require.Len(t, geo.Faces[1].VertexNormals, 3)
}
