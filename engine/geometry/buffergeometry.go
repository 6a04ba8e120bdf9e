package geometry

import (
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

// Attribute names used by the built-in shaders.
const (
	AttributePosition = "position"
	AttributeNormal   = "normal"
	AttributeUV       = "uv"
	AttributeUV2      = "uv2"
	AttributeColor    = "color"
	AttributeTangent  = "tangent"
)

// Attribute is a flat float32 array with a fixed number of components per
// vertex, uploaded verbatim to a GPU buffer.
type Attribute struct {
	// ItemSize is the number of float32 components per vertex.
	ItemSize int

	// Array is the packed attribute data, length = ItemSize * vertexCount.
	Array []float32

	// NeedsUpdate requests a re-upload of Array on the next sync.
	NeedsUpdate bool

	// GL holds the renderer-private buffer handle.
	GL any
}

// IndexAttribute is a 16-bit element index array.
type IndexAttribute struct {
	// Array is the packed index data.
	Array []uint16

	// NeedsUpdate requests a re-upload of Array on the next sync.
	NeedsUpdate bool

	// GL holds the renderer-private buffer handle.
	GL any
}

// Offset describes one draw chunk of an indexed BufferGeometry: Count
// indices starting at Start, with Index added to every element value. Each
// chunk must stay within the 16-bit index window; the caller partitions.
type Offset struct {
	Start int
	Count int
	Index int
}

// BufferGeometry is a pre-indexed, pre-attributed geometry that bypasses
// the Face3 data model and uploads its typed arrays directly. The caller is
// responsible for partitioning indices into Offsets that respect the 16-bit
// window; the renderer does not check that window, and skips (with a log)
// only chunks whose range falls outside the index array.
type BufferGeometry struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// UUID is the stable string identifier assigned at creation.
	UUID string

	// Name is an optional human-readable label.
	Name string

	// Attributes maps attribute names to their packed arrays.
	Attributes map[string]*Attribute

	// Index is the element array, or nil for non-indexed drawing.
	Index *IndexAttribute

	// Offsets is the draw-chunk table for indexed drawing. When empty and
	// Index is set, a single chunk covering the whole index array is
	// assumed.
	Offsets []Offset

	// Dynamic keeps arrays alive after upload for per-frame mutation.
	Dynamic bool

	// BoundingBox is nil until ComputeBoundingBox runs.
	BoundingBox *math3.Box3

	// BoundingSphere is nil until ComputeBoundingSphere runs.
	BoundingSphere *math3.Sphere
}

// NewBufferGeometry creates an empty BufferGeometry with a fresh id and
// uuid.
func NewBufferGeometry() *BufferGeometry {
	return &BufferGeometry{
		ID:         geometryCount.Add(1),
		UUID:       uuid.NewString(),
		Attributes: make(map[string]*Attribute),
	}
}

// SetAttribute stores a packed attribute array under name.
func (bg *BufferGeometry) SetAttribute(name string, itemSize int, array []float32) {
	bg.Attributes[name] = &Attribute{
		ItemSize:    itemSize,
		Array:       array,
		NeedsUpdate: true,
	}
}

// SetIndex stores the element index array.
func (bg *BufferGeometry) SetIndex(array []uint16) {
	bg.Index = &IndexAttribute{Array: array, NeedsUpdate: true}
}

// VertexCount returns the number of vertices in the position attribute.
func (bg *BufferGeometry) VertexCount() int {
	pos := bg.Attributes[AttributePosition]
	if pos == nil || pos.ItemSize == 0 {
		return 0
	}
	return len(pos.Array) / pos.ItemSize
}

// ComputeBoundingBox fits BoundingBox around the position attribute.
func (bg *BufferGeometry) ComputeBoundingBox() {
	if bg.BoundingBox == nil {
		bg.BoundingBox = &math3.Box3{}
	}
	box := math3.EmptyBox3()
	pos := bg.Attributes[AttributePosition]
	if pos != nil {
		for i := 0; i+2 < len(pos.Array); i += pos.ItemSize {
			box.ExpandByPoint(math3.V3(pos.Array[i], pos.Array[i+1], pos.Array[i+2]))
		}
	}
	if box.IsEmpty() {
		box = math3.Box3{}
	}
	*bg.BoundingBox = box
}

// ComputeBoundingSphere fits BoundingSphere around the position attribute.
func (bg *BufferGeometry) ComputeBoundingSphere() {
	if bg.BoundingSphere == nil {
		bg.BoundingSphere = &math3.Sphere{}
	}
	var maxRadiusSq float32
	pos := bg.Attributes[AttributePosition]
	if pos == nil {
		*bg.BoundingSphere = math3.Sphere{}
		return
	}
	bg.ComputeBoundingBox()
	center := bg.BoundingBox.Center()
	for i := 0; i+2 < len(pos.Array); i += pos.ItemSize {
		p := math3.V3(pos.Array[i], pos.Array[i+1], pos.Array[i+2])
		if d := center.DistanceToSq(p); d > maxRadiusSq {
			maxRadiusSq = d
		}
	}
	bg.BoundingSphere.Center = center
	bg.BoundingSphere.Radius = math32.Sqrt(maxRadiusSq)
}

// ComputeVertexNormals rebuilds the normal attribute by accumulating face
// normals per vertex and normalizing, for both indexed (per offset chunk)
// and non-indexed layouts.
func (bg *BufferGeometry) ComputeVertexNormals() {
	pos := bg.Attributes[AttributePosition]
	if pos == nil {
		return
	}

	normals := bg.Attributes[AttributeNormal]
	if normals == nil || len(normals.Array) != len(pos.Array) {
		bg.SetAttribute(AttributeNormal, 3, make([]float32, len(pos.Array)))
		normals = bg.Attributes[AttributeNormal]
	} else {
		for i := range normals.Array {
			normals.Array[i] = 0
		}
	}

	readPoint := func(v int) math3.Vector3 {
		i := v * pos.ItemSize
		return math3.V3(pos.Array[i], pos.Array[i+1], pos.Array[i+2])
	}
	accumulate := func(a, b, c int) {
		pA, pB, pC := readPoint(a), readPoint(b), readPoint(c)
		n := pC.Sub(pB).Cross(pA.Sub(pB))
		for _, v := range [3]int{a, b, c} {
			normals.Array[v*3] += n.X
			normals.Array[v*3+1] += n.Y
			normals.Array[v*3+2] += n.Z
		}
	}

	if bg.Index != nil {
		for _, off := range bg.offsetsOrWhole() {
			for i := off.Start; i+2 < off.Start+off.Count; i += 3 {
				accumulate(
					int(bg.Index.Array[i])+off.Index,
					int(bg.Index.Array[i+1])+off.Index,
					int(bg.Index.Array[i+2])+off.Index,
				)
			}
		}
	} else {
		for v := 0; v+2 < bg.VertexCount(); v += 3 {
			accumulate(v, v+1, v+2)
		}
	}

	for v := 0; v < len(normals.Array)/3; v++ {
		n := math3.V3(normals.Array[v*3], normals.Array[v*3+1], normals.Array[v*3+2]).Normalize()
		normals.Array[v*3] = n.X
		normals.Array[v*3+1] = n.Y
		normals.Array[v*3+2] = n.Z
	}
	normals.NeedsUpdate = true
}

// offsetsOrWhole returns the offset table, or a single chunk covering the
// entire index array when none was supplied.
func (bg *BufferGeometry) offsetsOrWhole() []Offset {
	if len(bg.Offsets) > 0 {
		return bg.Offsets
	}
	if bg.Index == nil {
		return nil
	}
	return []Offset{{Start: 0, Count: len(bg.Index.Array), Index: 0}}
}
