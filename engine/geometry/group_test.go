package geometry

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatGeometry builds faceCount faces over three shared vertices, with
// material indices assigned by pick.
func flatGeometry(faceCount int, pick func(i int) int) *Geometry {
	geo := NewGeometry()
	geo.Vertices = []math3.Vector3{{}, {X: 1}, {Y: 1}}
	geo.Faces = make([]Face3, faceCount)
	for i := range geo.Faces {
		geo.Faces[i] = NewFace3(0, 1, 2)
		geo.Faces[i].MaterialIndex = pick(i)
	}
	return geo
}

func TestSortFacesByMaterialPartition(t *testing.T) {
	geo := flatGeometry(10, func(i int) int { return i % 3 })
	geo.SortFacesByMaterial()

	// Every face lands in exactly one group of its own material index,
	// and the (materialIndex, face) multiset is preserved.
	seen := make(map[int]bool)
	for _, group := range geo.GroupsList {
		for _, fi := range group.Faces {
			assert.False(t, seen[fi], "face %d appears twice", fi)
			seen[fi] = true
			assert.Equal(t, group.MaterialIndex, geo.Faces[fi].MaterialIndex)
		}
		assert.Equal(t, len(group.Faces)*3, group.VertexCount)
	}
	assert.Len(t, seen, 10)
	assert.Len(t, geo.GroupsList, 3)
}

func TestSortFacesByMaterialSplit(t *testing.T) {
	// 30000 faces of one material exceed the 16-bit vertex window and
	// must split into multiple groups of at most 21845 faces.
	geo := flatGeometry(30000, func(int) int { return 0 })
	geo.SortFacesByMaterial()

	require.GreaterOrEqual(t, len(geo.GroupsList), 2)

	next := 0
	total := 0
	for _, group := range geo.GroupsList {
		assert.LessOrEqual(t, group.VertexCount, 65535)
		assert.LessOrEqual(t, len(group.Faces), 21845)
		assert.Equal(t, 0, group.MaterialIndex)

		// Face order is preserved within and across groups.
		for _, fi := range group.Faces {
			assert.Equal(t, next, fi)
			next++
		}
		total += len(group.Faces)
	}
	assert.Equal(t, 30000, total)
	assert.Equal(t, 21845, len(geo.GroupsList[0].Faces))
}

func TestSortFacesByMaterialFirstSeenOrder(t *testing.T) {
	order := []int{2, 0, 1}
	geo := flatGeometry(9, func(i int) int { return order[i%3] })
	geo.SortFacesByMaterial()

	require.Len(t, geo.GroupsList, 3)
	assert.Equal(t, 2, geo.GroupsList[0].MaterialIndex)
	assert.Equal(t, 0, geo.GroupsList[1].MaterialIndex)
	assert.Equal(t, 1, geo.GroupsList[2].MaterialIndex)
}

func TestSortFacesByMaterialCopiesMorphCounts(t *testing.T) {
	geo := flatGeometry(1, func(int) int { return 0 })
	geo.MorphTargets = []MorphTarget{{Name: "a", Vertices: geo.Vertices}}
	geo.SortFacesByMaterial()

	require.Len(t, geo.GroupsList, 1)
	assert.Equal(t, 1, geo.GroupsList[0].NumMorphTargets)
	assert.Equal(t, 0, geo.GroupsList[0].NumMorphNormals)
}

func TestSortFacesByMaterialRebuild(t *testing.T) {
	geo := flatGeometry(4, func(int) int { return 0 })
	geo.SortFacesByMaterial()
	require.Len(t, geo.GroupsList, 1)

	// A second pass discards the old partition entirely.
	geo.Faces[0].MaterialIndex = 1
	geo.SortFacesByMaterial()
	assert.Len(t, geo.GroupsList, 2)
	assert.Len(t, geo.Groups, 2)
}

func TestBufferGeometryBounds(t *testing.T) {
	bg := NewBufferGeometry()
	bg.SetAttribute(AttributePosition, 3, []float32{
		-1, 0, 0,
		1, 0, 0,
		0, 2, 0,
	})

	bg.ComputeBoundingBox()
	assert.True(t, bg.BoundingBox.Min.Equals(math3.V3(-1, 0, 0)))
	assert.True(t, bg.BoundingBox.Max.Equals(math3.V3(1, 2, 0)))

	bg.ComputeBoundingSphere()
	assert.True(t, bg.BoundingSphere.ContainsPoint(math3.V3(1, 0, 0)))
	assert.Equal(t, 3, bg.VertexCount())
}

func TestBufferGeometryComputeVertexNormals(t *testing.T) {
	bg := NewBufferGeometry()
	bg.SetAttribute(AttributePosition, 3, []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	})
	bg.SetIndex([]uint16{0, 1, 2})
	bg.ComputeVertexNormals()

	normals := bg.Attributes[AttributeNormal]
	require.NotNil(t, normals)
	require.Len(t, normals.Array, 9)
	for v := 0; v < 3; v++ {
		n := math3.V3(normals.Array[v*3], normals.Array[v*3+1], normals.Array[v*3+2])
		assert.True(t, n.ApproxEqual(math3.V3(0, 0, 1), 1e-5))
	}
	assert.True(t, normals.NeedsUpdate)
}
