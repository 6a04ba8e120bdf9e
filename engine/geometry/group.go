package geometry

import "sync/atomic"

// groupVertexLimit is the largest number of vertices a geometry group may
// hold, imposed by 16-bit element indices.
const groupVertexLimit = 65535

// groupCount is an atomic counter used to assign unique group ids.
var groupCount atomic.Uint64

// GroupKey identifies a geometry group within its Geometry: the material
// index plus an overflow counter bumped each time the 16-bit vertex window
// fills up.
type GroupKey struct {
	MaterialIndex int
	Counter       int
}

// Group is a slice of a Geometry's faces sharing one material index and
// fitting within a 16-bit index window. It is the GPU upload unit: the
// renderer's buffer manager attaches buffer handles and staging arrays to
// it via GL.
type Group struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// MaterialIndex is the material slot shared by every face in the group.
	MaterialIndex int

	// Faces holds indices into the owning Geometry's Faces slice, in input
	// order.
	Faces []int

	// VertexCount is the number of per-group vertices the faces expand to
	// (three per face).
	VertexCount int

	// NumMorphTargets and NumMorphNormals are copied from the owning
	// Geometry when the group is created, fixing the morph buffer layout.
	NumMorphTargets int
	NumMorphNormals int

	// GL holds the renderer-private buffer state for this group. Owned by
	// the renderer; released when the Geometry is.
	GL any
}

// SortFacesByMaterial partitions the geometry's faces into groups keyed by
// (material index, overflow counter). Faces are assigned in input order; a
// group that would exceed the 16-bit vertex window is closed and a new one
// opened under a bumped counter. Existing groups are discarded first.
func (g *Geometry) SortFacesByMaterial() {
	numMorphTargets := len(g.MorphTargets)
	numMorphNormals := len(g.MorphNormals)

	g.Groups = make(map[GroupKey]*Group)
	g.GroupsList = g.GroupsList[:0]

	counters := make(map[int]int)

	for f := range g.Faces {
		materialIndex := g.Faces[f].MaterialIndex

		key := GroupKey{MaterialIndex: materialIndex, Counter: counters[materialIndex]}
		group := g.Groups[key]
		if group == nil {
			group = g.newGroup(materialIndex, numMorphTargets, numMorphNormals)
			g.Groups[key] = group
			g.GroupsList = append(g.GroupsList, group)
		}

		if group.VertexCount+3 > groupVertexLimit {
			counters[materialIndex]++
			key = GroupKey{MaterialIndex: materialIndex, Counter: counters[materialIndex]}
			group = g.Groups[key]
			if group == nil {
				group = g.newGroup(materialIndex, numMorphTargets, numMorphNormals)
				g.Groups[key] = group
				g.GroupsList = append(g.GroupsList, group)
			}
		}

		group.Faces = append(group.Faces, f)
		group.VertexCount += 3
	}
}

func (g *Geometry) newGroup(materialIndex, numMorphTargets, numMorphNormals int) *Group {
	return &Group{
		ID:              groupCount.Add(1),
		MaterialIndex:   materialIndex,
		NumMorphTargets: numMorphTargets,
		NumMorphNormals: numMorphNormals,
	}
}
