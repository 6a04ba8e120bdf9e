// package geometry holds the CPU-side triangle data model: vertices, faces,
// UV layers, morph targets, skin weights, bounding volumes, and the
// material-index partitioning into GPU-uploadable geometry groups.
package geometry

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/google/uuid"
)

// geometryCount is an atomic counter used to assign unique geometry ids.
var geometryCount atomic.Uint64

// Geometry is an indexed triangle mesh with optional per-vertex colors, up
// to two UV layers, morph targets, and skinning data. Derived data (normals,
// tangents, centroids, bounds, groups) is computed on demand and kept in
// sync with the GPU through the *NeedUpdate dirty flags.
type Geometry struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// UUID is the stable string identifier assigned at creation.
	UUID string

	// Name is an optional human-readable label.
	Name string

	// Vertices are the shared vertex positions faces index into.
	Vertices []math3.Vector3

	// Colors are per-vertex colors aligned with Vertices. Used by particle
	// systems and lines; faces carry their own color slots.
	Colors []math3.Color

	// Faces is the triangle list.
	Faces []Face3

	// FaceVertexUVs holds up to two UV layers. Each layer is per face, per
	// corner: FaceVertexUVs[layer][faceIndex][corner].
	FaceVertexUVs [2][][]math3.Vector2

	// MorphTargets are named alternate vertex arrays blended by influence.
	MorphTargets []MorphTarget

	// MorphColors are named alternate color arrays.
	MorphColors []MorphColor

	// MorphNormals are recomputed normals per morph target, filled by
	// ComputeMorphNormals.
	MorphNormals []MorphNormal

	// SkinWeights are per-vertex bone weights aligned with Vertices.
	SkinWeights []math3.Vector4

	// SkinIndices are per-vertex bone indices aligned with Vertices.
	SkinIndices []math3.Vector4

	// LineDistances are cumulative per-vertex distances for dashed lines,
	// filled by ComputeLineDistances.
	LineDistances []float32

	// BoundingBox is nil until ComputeBoundingBox runs.
	BoundingBox *math3.Box3

	// BoundingSphere is nil until ComputeBoundingSphere runs.
	BoundingSphere *math3.Sphere

	// HasTangents is set by ComputeTangents.
	HasTangents bool

	// Dynamic keeps the CPU staging arrays alive after upload so the
	// geometry can be mutated per frame. Static geometries drop them.
	Dynamic bool

	// Dirty flags observed by the renderer's buffer synchronization pass.
	VerticesNeedUpdate      bool
	ElementsNeedUpdate      bool
	UVsNeedUpdate           bool
	NormalsNeedUpdate       bool
	TangentsNeedUpdate      bool
	ColorsNeedUpdate        bool
	MorphTargetsNeedUpdate  bool
	LineDistancesNeedUpdate bool
	BuffersNeedUpdate       bool

	// Groups maps a (materialIndex, overflow counter) key to its group.
	Groups map[GroupKey]*Group

	// GroupsList holds the groups in first-seen order; the renderer
	// iterates this.
	GroupsList []*Group

	// GL holds the renderer-private buffer handle. Owned by the renderer;
	// released when the Geometry is.
	GL any
}

// NewGeometry creates an empty Geometry with a fresh id and uuid.
func NewGeometry() *Geometry {
	return &Geometry{
		ID:      geometryCount.Add(1),
		UUID:    uuid.NewString(),
		Dynamic: true,
	}
}

// Validate reports whether the geometry is drawable: it has vertices, every
// face index is a valid vertex position, and every per-face corner slice is
// empty or exactly three long.
//
// Returns:
//   - error: a description of the first violation found, or nil
func (g *Geometry) Validate() error {
	if len(g.Vertices) == 0 {
		return fmt.Errorf("geometry %d has no vertices", g.ID)
	}
	n := len(g.Vertices)
	for i := range g.Faces {
		f := &g.Faces[i]
		if f.A < 0 || f.A >= n || f.B < 0 || f.B >= n || f.C < 0 || f.C >= n {
			return fmt.Errorf("geometry %d face %d indexes out of range (%d,%d,%d of %d vertices)", g.ID, i, f.A, f.B, f.C, n)
		}
		if l := len(f.VertexNormals); l != 0 && l != 3 {
			return fmt.Errorf("geometry %d face %d has %d vertex normals, want 0 or 3", g.ID, i, l)
		}
		if l := len(f.VertexColors); l != 0 && l != 3 {
			return fmt.Errorf("geometry %d face %d has %d vertex colors, want 0 or 3", g.ID, i, l)
		}
		if l := len(f.VertexTangents); l != 0 && l != 3 {
			return fmt.Errorf("geometry %d face %d has %d vertex tangents, want 0 or 3", g.ID, i, l)
		}
	}
	return nil
}

// ApplyMatrix transforms every vertex position and face centroid by m and
// every face normal and per-vertex normal by the normal matrix of m.
func (g *Geometry) ApplyMatrix(m *math3.Matrix4) {
	var normalMatrix math3.Matrix3
	normalMatrix.SetNormalMatrix(m)

	for i := range g.Vertices {
		g.Vertices[i] = g.Vertices[i].ApplyMatrix4(m)
	}
	for i := range g.Faces {
		f := &g.Faces[i]
		f.Normal = f.Normal.ApplyMatrix3(&normalMatrix).Normalize()
		for j := range f.VertexNormals {
			f.VertexNormals[j] = f.VertexNormals[j].ApplyMatrix3(&normalMatrix).Normalize()
		}
		f.Centroid = f.Centroid.ApplyMatrix4(m)
	}
	g.VerticesNeedUpdate = true
	g.NormalsNeedUpdate = true
}

// ComputeCentroids fills every face's centroid from its corner positions.
func (g *Geometry) ComputeCentroids() {
	for i := range g.Faces {
		f := &g.Faces[i]
		f.Centroid = g.Vertices[f.A].
			Add(g.Vertices[f.B]).
			Add(g.Vertices[f.C]).
			DivScalar(3)
	}
}

// ComputeFaceNormals fills every face's normal with the normalized cross
// product of its edges.
func (g *Geometry) ComputeFaceNormals() {
	for i := range g.Faces {
		f := &g.Faces[i]
		vA, vB, vC := g.Vertices[f.A], g.Vertices[f.B], g.Vertices[f.C]
		f.Normal = vC.Sub(vB).Cross(vA.Sub(vB)).Normalize()
	}
}

// ComputeVertexNormals fills every face's per-vertex normals with the
// normalized sum of the face normals incident on each vertex. Face normals
// must already be computed.
func (g *Geometry) ComputeVertexNormals() {
	scratch := make([]math3.Vector3, len(g.Vertices))

	for i := range g.Faces {
		f := &g.Faces[i]
		scratch[f.A] = scratch[f.A].Add(f.Normal)
		scratch[f.B] = scratch[f.B].Add(f.Normal)
		scratch[f.C] = scratch[f.C].Add(f.Normal)
	}
	for i := range scratch {
		scratch[i] = scratch[i].Normalize()
	}
	for i := range g.Faces {
		f := &g.Faces[i]
		if len(f.VertexNormals) != 3 {
			f.VertexNormals = make([]math3.Vector3, 3)
		}
		f.VertexNormals[0] = scratch[f.A]
		f.VertexNormals[1] = scratch[f.B]
		f.VertexNormals[2] = scratch[f.C]
	}
}

// ComputeMorphNormals recomputes face and vertex normals for every morph
// target by temporarily substituting the morphed vertex positions, storing
// the results in MorphNormals. The base normals are restored afterwards.
func (g *Geometry) ComputeMorphNormals() {
	// Save base state.
	baseVertices := g.Vertices
	baseFaceNormals := make([]math3.Vector3, len(g.Faces))
	baseVertexNormals := make([][]math3.Vector3, len(g.Faces))
	for i := range g.Faces {
		baseFaceNormals[i] = g.Faces[i].Normal
		baseVertexNormals[i] = g.Faces[i].VertexNormals
		g.Faces[i].VertexNormals = nil
	}

	g.MorphNormals = make([]MorphNormal, len(g.MorphTargets))
	for t := range g.MorphTargets {
		g.Vertices = g.MorphTargets[t].Vertices
		g.ComputeFaceNormals()
		g.ComputeVertexNormals()

		mn := MorphNormal{
			FaceNormals:   make([]math3.Vector3, len(g.Faces)),
			VertexNormals: make([][3]math3.Vector3, len(g.Faces)),
		}
		for i := range g.Faces {
			f := &g.Faces[i]
			mn.FaceNormals[i] = f.Normal
			mn.VertexNormals[i] = [3]math3.Vector3{f.VertexNormals[0], f.VertexNormals[1], f.VertexNormals[2]}
			f.VertexNormals = nil
		}
		g.MorphNormals[t] = mn
	}

	// Restore base state.
	g.Vertices = baseVertices
	for i := range g.Faces {
		g.Faces[i].Normal = baseFaceNormals[i]
		g.Faces[i].VertexNormals = baseVertexNormals[i]
	}
}

// ComputeTangents fills per-vertex tangents from the gradient of position
// against UV layer 0, Gram-Schmidt-orthogonalized against each vertex
// normal, with handedness in W. Requires vertex normals and a full first UV
// layer.
func (g *Geometry) ComputeTangents() {
	if len(g.FaceVertexUVs[0]) < len(g.Faces) {
		return
	}

	tan1 := make([]math3.Vector3, len(g.Vertices))
	tan2 := make([]math3.Vector3, len(g.Vertices))

	for i := range g.Faces {
		f := &g.Faces[i]
		uvs := g.FaceVertexUVs[0][i]
		if len(uvs) < 3 {
			continue
		}

		vA, vB, vC := g.Vertices[f.A], g.Vertices[f.B], g.Vertices[f.C]
		uvA, uvB, uvC := uvs[0], uvs[1], uvs[2]

		x1 := vB.X - vA.X
		x2 := vC.X - vA.X
		y1 := vB.Y - vA.Y
		y2 := vC.Y - vA.Y
		z1 := vB.Z - vA.Z
		z2 := vC.Z - vA.Z

		s1 := uvB.X - uvA.X
		s2 := uvC.X - uvA.X
		t1 := uvB.Y - uvA.Y
		t2 := uvC.Y - uvA.Y

		denom := s1*t2 - s2*t1
		var r float32
		if denom != 0 {
			r = 1 / denom
		}
		sdir := math3.V3((t2*x1-t1*x2)*r, (t2*y1-t1*y2)*r, (t2*z1-t1*z2)*r)
		tdir := math3.V3((s1*x2-s2*x1)*r, (s1*y2-s2*y1)*r, (s1*z2-s2*z1)*r)

		for _, v := range f.Indices() {
			tan1[v] = tan1[v].Add(sdir)
			tan2[v] = tan2[v].Add(tdir)
		}
	}

	for i := range g.Faces {
		f := &g.Faces[i]
		if len(f.VertexNormals) != 3 {
			continue
		}
		if len(f.VertexTangents) != 3 {
			f.VertexTangents = make([]math3.Vector4, 3)
		}
		for corner, v := range f.Indices() {
			n := f.VertexNormals[corner]
			t := tan1[v]

			// Gram-Schmidt orthogonalize.
			tmp := t.Sub(n.MulScalar(n.Dot(t))).Normalize()

			// Handedness.
			w := float32(1)
			if n.Cross(t).Dot(tan2[v]) < 0 {
				w = -1
			}
			f.VertexTangents[corner] = math3.V4(tmp.X, tmp.Y, tmp.Z, w)
		}
	}

	g.HasTangents = true
	g.TangentsNeedUpdate = true
}

// ComputeLineDistances fills LineDistances with the cumulative distance
// along the vertex sequence, used by dashed line materials.
func (g *Geometry) ComputeLineDistances() {
	if len(g.LineDistances) != len(g.Vertices) {
		g.LineDistances = make([]float32, len(g.Vertices))
	}
	var d float32
	for i := range g.Vertices {
		if i > 0 {
			d += g.Vertices[i].DistanceTo(g.Vertices[i-1])
		}
		g.LineDistances[i] = d
	}
	g.LineDistancesNeedUpdate = true
}

// ComputeBoundingBox fits BoundingBox tightly around the current vertices.
func (g *Geometry) ComputeBoundingBox() {
	if g.BoundingBox == nil {
		g.BoundingBox = &math3.Box3{}
	}
	g.BoundingBox.SetFromPoints(g.Vertices)
}

// ComputeBoundingSphere fits BoundingSphere around the current vertices.
func (g *Geometry) ComputeBoundingSphere() {
	if g.BoundingSphere == nil {
		g.BoundingSphere = &math3.Sphere{}
	}
	g.BoundingSphere.SetFromPoints(g.Vertices)
}

// MergeVertices buckets vertices whose positions agree after quantizing to
// 1e-4, keeps one representative per bucket, rewrites all face indices, and
// drops faces that collapse to fewer than three distinct corners. UV layers
// of dropped faces are removed alongside.
//
// Returns:
//   - int: the number of vertices removed
func (g *Geometry) MergeVertices() int {
	const precision = 1e4 // inverse of the 1e-4 position tolerance

	verticesMap := make(map[string]int, len(g.Vertices))
	unique := make([]math3.Vector3, 0, len(g.Vertices))
	changes := make([]int, len(g.Vertices))

	round := func(v float32) int64 {
		if v < 0 {
			return int64(v*precision - 0.5)
		}
		return int64(v*precision + 0.5)
	}

	for i, v := range g.Vertices {
		key := fmt.Sprintf("%d_%d_%d", round(v.X), round(v.Y), round(v.Z))
		if j, seen := verticesMap[key]; seen {
			changes[i] = j
			continue
		}
		verticesMap[key] = len(unique)
		changes[i] = len(unique)
		unique = append(unique, v)
	}

	// Rewrite faces, collecting the ones that collapse.
	faceIndicesToRemove := []int{}
	for i := range g.Faces {
		f := &g.Faces[i]
		f.A = changes[f.A]
		f.B = changes[f.B]
		f.C = changes[f.C]
		if f.A == f.B || f.B == f.C || f.C == f.A {
			faceIndicesToRemove = append(faceIndicesToRemove, i)
		}
	}

	for n := len(faceIndicesToRemove) - 1; n >= 0; n-- {
		i := faceIndicesToRemove[n]
		g.Faces = append(g.Faces[:i], g.Faces[i+1:]...)
		for layer := range g.FaceVertexUVs {
			if i < len(g.FaceVertexUVs[layer]) {
				g.FaceVertexUVs[layer] = append(g.FaceVertexUVs[layer][:i], g.FaceVertexUVs[layer][i+1:]...)
			}
		}
	}

	diff := len(g.Vertices) - len(unique)
	g.Vertices = unique
	return diff
}
