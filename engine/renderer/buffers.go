package renderer

import (
	"github.com/Carmen-Shannon/trigl/common"
	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
)

// customBinding pairs a shader material's custom attribute with the GPU
// buffer carrying it for one geometry group or object.
type customBinding struct {
	name   string
	attr   *material.CustomAttribute
	buffer glctx.Buffer
}

// groupBuffers is the GPU-side state of one geometry group: the buffer
// handles and the CPU staging arrays they are filled from. Attached to
// geometry.Group.GL; staging arrays are dropped after upload for static
// geometries.
type groupBuffers struct {
	vertexBuffer     glctx.Buffer
	normalBuffer     glctx.Buffer
	tangentBuffer    glctx.Buffer
	colorBuffer      glctx.Buffer
	uvBuffer         glctx.Buffer
	uv2Buffer        glctx.Buffer
	skinIndexBuffer  glctx.Buffer
	skinWeightBuffer glctx.Buffer
	indexBuffer      glctx.Buffer
	lineBuffer       glctx.Buffer

	morphTargetBuffers []glctx.Buffer
	morphNormalBuffers []glctx.Buffer

	vertexArray     []float32
	normalArray     []float32
	tangentArray    []float32
	colorArray      []float32
	uvArray         []float32
	uv2Array        []float32
	skinIndexArray  []float32
	skinWeightArray []float32
	faceArray       []uint16
	lineArray       []uint16

	morphTargetArrays [][]float32
	morphNormalArrays [][]float32

	customs []customBinding

	faceCount int
	lineCount int

	initted bool
}

// objectBuffers is the GPU-side state of a line or particle-system
// geometry: one interleaved-by-slice vertex stream plus optional colors and
// line distances. Attached to geometry.Geometry.GL.
type objectBuffers struct {
	vertexBuffer       glctx.Buffer
	colorBuffer        glctx.Buffer
	lineDistanceBuffer glctx.Buffer

	vertexArray       []float32
	colorArray        []float32
	lineDistanceArray []float32

	customs []customBinding

	vertexCount int

	initted bool
}

func (r *rendererImpl) usageHint(dynamic bool) glctx.Enum {
	if dynamic {
		return glctx.DYNAMIC_DRAW
	}
	return glctx.STATIC_DRAW
}

// --- mesh geometry groups ---

// initGeometryGroupBuffers creates the GPU buffers and staging arrays for
// one geometry group of a mesh, and flags every stream dirty so the first
// sync uploads it.
func (r *rendererImpl) initGeometryGroupBuffers(geo *geometry.Geometry, group *geometry.Group, mesh *scene.Mesh) {
	gl := r.gl

	gb := &groupBuffers{}
	gb.vertexBuffer = gl.CreateBuffer()
	gb.normalBuffer = gl.CreateBuffer()
	gb.tangentBuffer = gl.CreateBuffer()
	gb.colorBuffer = gl.CreateBuffer()
	gb.uvBuffer = gl.CreateBuffer()
	gb.uv2Buffer = gl.CreateBuffer()
	gb.skinIndexBuffer = gl.CreateBuffer()
	gb.skinWeightBuffer = gl.CreateBuffer()
	gb.indexBuffer = gl.CreateBuffer()
	gb.lineBuffer = gl.CreateBuffer()

	for i := 0; i < group.NumMorphTargets; i++ {
		gb.morphTargetBuffers = append(gb.morphTargetBuffers, gl.CreateBuffer())
	}
	for i := 0; i < group.NumMorphNormals; i++ {
		gb.morphNormalBuffers = append(gb.morphNormalBuffers, gl.CreateBuffer())
	}

	nVertices := group.VertexCount
	nFaces := len(group.Faces)

	gb.vertexArray = make([]float32, nVertices*3)
	gb.normalArray = make([]float32, nVertices*3)
	gb.colorArray = make([]float32, nVertices*3)
	gb.uvArray = make([]float32, nVertices*2)
	if len(geo.FaceVertexUVs[1]) > 0 {
		gb.uv2Array = make([]float32, nVertices*2)
	}
	if geo.HasTangents {
		gb.tangentArray = make([]float32, nVertices*4)
	}
	if len(geo.SkinWeights) > 0 && len(geo.SkinIndices) > 0 {
		gb.skinIndexArray = make([]float32, nVertices*4)
		gb.skinWeightArray = make([]float32, nVertices*4)
	}
	gb.faceArray = make([]uint16, nFaces*3)
	gb.lineArray = make([]uint16, nFaces*6)

	gb.morphTargetArrays = make([][]float32, group.NumMorphTargets)
	for i := range gb.morphTargetArrays {
		gb.morphTargetArrays[i] = make([]float32, nVertices*3)
	}
	gb.morphNormalArrays = make([][]float32, group.NumMorphNormals)
	for i := range gb.morphNormalArrays {
		gb.morphNormalArrays[i] = make([]float32, nVertices*3)
	}

	if sm := shaderMaterialOf(r.resolveMaterial(mesh.Material, group)); sm != nil {
		for name, attr := range sm.Attributes {
			gb.customs = append(gb.customs, customBinding{
				name:   name,
				attr:   attr,
				buffer: gl.CreateBuffer(),
			})
		}
	}

	group.GL = gb

	geo.VerticesNeedUpdate = true
	geo.ElementsNeedUpdate = true
	geo.UVsNeedUpdate = true
	geo.NormalsNeedUpdate = true
	geo.TangentsNeedUpdate = geo.HasTangents
	geo.ColorsNeedUpdate = true
	geo.MorphTargetsNeedUpdate = group.NumMorphTargets > 0
}

// shaderMaterialOf returns mat as a *ShaderMaterial, or nil.
func shaderMaterialOf(mat material.Material) *material.ShaderMaterial {
	sm, _ := mat.(*material.ShaderMaterial)
	return sm
}

// setMeshBuffers repopulates a group's staging arrays from the geometry's
// faces and uploads the streams whose dirty flags are set. Each face
// contributes three unique per-group vertices; the element array is the
// sequential expansion.
func (r *rendererImpl) setMeshBuffers(geo *geometry.Geometry, group *geometry.Group, mesh *scene.Mesh, mat material.Material) {
	gb, _ := group.GL.(*groupBuffers)
	if gb == nil {
		return
	}
	gl := r.gl
	hint := r.usageHint(geo.Dynamic)

	smoothShading := materialNeedsSmoothNormals(mat)

	if geo.VerticesNeedUpdate {
		offset := 0
		for _, fi := range group.Faces {
			f := &geo.Faces[fi]
			for _, vi := range f.Indices() {
				v := geo.Vertices[vi]
				gb.vertexArray[offset] = v.X
				gb.vertexArray[offset+1] = v.Y
				gb.vertexArray[offset+2] = v.Z
				offset += 3
			}
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, gb.vertexBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(gb.vertexArray), hint)
	}

	if geo.MorphTargetsNeedUpdate {
		for t := 0; t < group.NumMorphTargets; t++ {
			arr := gb.morphTargetArrays[t]
			offset := 0
			for _, fi := range group.Faces {
				f := &geo.Faces[fi]
				for _, vi := range f.Indices() {
					v := geo.MorphTargets[t].Vertices[vi]
					arr[offset] = v.X
					arr[offset+1] = v.Y
					arr[offset+2] = v.Z
					offset += 3
				}
			}
			gl.BindBuffer(glctx.ARRAY_BUFFER, gb.morphTargetBuffers[t])
			gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(arr), hint)
		}
		for t := 0; t < group.NumMorphNormals && t < len(geo.MorphNormals); t++ {
			arr := gb.morphNormalArrays[t]
			mn := &geo.MorphNormals[t]
			offset := 0
			for _, fi := range group.Faces {
				if smoothShading {
					for corner := 0; corner < 3; corner++ {
						n := mn.VertexNormals[fi][corner]
						arr[offset] = n.X
						arr[offset+1] = n.Y
						arr[offset+2] = n.Z
						offset += 3
					}
				} else {
					n := mn.FaceNormals[fi]
					for corner := 0; corner < 3; corner++ {
						arr[offset] = n.X
						arr[offset+1] = n.Y
						arr[offset+2] = n.Z
						offset += 3
					}
				}
			}
			gl.BindBuffer(glctx.ARRAY_BUFFER, gb.morphNormalBuffers[t])
			gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(arr), hint)
		}
	}

	if geo.NormalsNeedUpdate {
		offset := 0
		for _, fi := range group.Faces {
			f := &geo.Faces[fi]
			if smoothShading && len(f.VertexNormals) == 3 {
				for corner := 0; corner < 3; corner++ {
					n := f.VertexNormals[corner]
					gb.normalArray[offset] = n.X
					gb.normalArray[offset+1] = n.Y
					gb.normalArray[offset+2] = n.Z
					offset += 3
				}
			} else {
				for corner := 0; corner < 3; corner++ {
					gb.normalArray[offset] = f.Normal.X
					gb.normalArray[offset+1] = f.Normal.Y
					gb.normalArray[offset+2] = f.Normal.Z
					offset += 3
				}
			}
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, gb.normalBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(gb.normalArray), hint)
	}

	if geo.ColorsNeedUpdate {
		offset := 0
		for _, fi := range group.Faces {
			f := &geo.Faces[fi]
			for corner := 0; corner < 3; corner++ {
				c := f.Color
				if len(f.VertexColors) == 3 {
					c = f.VertexColors[corner]
				}
				gb.colorArray[offset] = c.R
				gb.colorArray[offset+1] = c.G
				gb.colorArray[offset+2] = c.B
				offset += 3
			}
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, gb.colorBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(gb.colorArray), hint)
	}

	if geo.UVsNeedUpdate {
		for layer := 0; layer < 2; layer++ {
			dst := gb.uvArray
			buffer := gb.uvBuffer
			if layer == 1 {
				dst = gb.uv2Array
				buffer = gb.uv2Buffer
			}
			if len(geo.FaceVertexUVs[layer]) == 0 || dst == nil {
				continue
			}
			offset := 0
			for _, fi := range group.Faces {
				if fi >= len(geo.FaceVertexUVs[layer]) {
					continue
				}
				uvs := geo.FaceVertexUVs[layer][fi]
				if len(uvs) < 3 {
					offset += 6
					continue
				}
				for corner := 0; corner < 3; corner++ {
					dst[offset] = uvs[corner].X
					dst[offset+1] = uvs[corner].Y
					offset += 2
				}
			}
			gl.BindBuffer(glctx.ARRAY_BUFFER, buffer)
			gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(dst), hint)
		}
	}

	if geo.TangentsNeedUpdate && gb.tangentArray != nil {
		offset := 0
		for _, fi := range group.Faces {
			f := &geo.Faces[fi]
			if len(f.VertexTangents) != 3 {
				offset += 12
				continue
			}
			for corner := 0; corner < 3; corner++ {
				t := f.VertexTangents[corner]
				gb.tangentArray[offset] = t.X
				gb.tangentArray[offset+1] = t.Y
				gb.tangentArray[offset+2] = t.Z
				gb.tangentArray[offset+3] = t.W
				offset += 4
			}
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, gb.tangentBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(gb.tangentArray), hint)
	}

	if gb.skinIndexArray != nil && (geo.VerticesNeedUpdate || !gb.initted) {
		offset := 0
		for _, fi := range group.Faces {
			f := &geo.Faces[fi]
			for _, vi := range f.Indices() {
				si := geo.SkinIndices[vi]
				sw := geo.SkinWeights[vi]
				gb.skinIndexArray[offset] = si.X
				gb.skinIndexArray[offset+1] = si.Y
				gb.skinIndexArray[offset+2] = si.Z
				gb.skinIndexArray[offset+3] = si.W
				gb.skinWeightArray[offset] = sw.X
				gb.skinWeightArray[offset+1] = sw.Y
				gb.skinWeightArray[offset+2] = sw.Z
				gb.skinWeightArray[offset+3] = sw.W
				offset += 4
			}
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, gb.skinIndexBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(gb.skinIndexArray), hint)
		gl.BindBuffer(glctx.ARRAY_BUFFER, gb.skinWeightBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(gb.skinWeightArray), hint)
	}

	if geo.ElementsNeedUpdate {
		var vertexIndex uint16
		faceOffset := 0
		lineOffset := 0
		for range group.Faces {
			gb.faceArray[faceOffset] = vertexIndex
			gb.faceArray[faceOffset+1] = vertexIndex + 1
			gb.faceArray[faceOffset+2] = vertexIndex + 2
			faceOffset += 3

			gb.lineArray[lineOffset] = vertexIndex
			gb.lineArray[lineOffset+1] = vertexIndex + 1
			gb.lineArray[lineOffset+2] = vertexIndex
			gb.lineArray[lineOffset+3] = vertexIndex + 2
			gb.lineArray[lineOffset+4] = vertexIndex + 1
			gb.lineArray[lineOffset+5] = vertexIndex + 2
			lineOffset += 6

			vertexIndex += 3
		}
		gb.faceCount = faceOffset
		gb.lineCount = lineOffset
		gl.BindBuffer(glctx.ELEMENT_ARRAY_BUFFER, gb.indexBuffer)
		gl.BufferData(glctx.ELEMENT_ARRAY_BUFFER, common.SliceToBytes(gb.faceArray), hint)
		gl.BindBuffer(glctx.ELEMENT_ARRAY_BUFFER, gb.lineBuffer)
		gl.BufferData(glctx.ELEMENT_ARRAY_BUFFER, common.SliceToBytes(gb.lineArray), hint)
	}

	for _, cb := range gb.customs {
		if cb.attr.NeedsUpdate || !gb.initted {
			gl.BindBuffer(glctx.ARRAY_BUFFER, cb.buffer)
			gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(cb.attr.Value), hint)
			cb.attr.NeedsUpdate = false
		}
	}

	gb.initted = true

	// Static geometries drop the staging arrays after upload.
	if !geo.Dynamic {
		gb.vertexArray = nil
		gb.normalArray = nil
		gb.tangentArray = nil
		gb.colorArray = nil
		gb.uvArray = nil
		gb.uv2Array = nil
		gb.skinIndexArray = nil
		gb.skinWeightArray = nil
		gb.faceArray = nil
		gb.lineArray = nil
		gb.morphTargetArrays = nil
		gb.morphNormalArrays = nil
	}
}

// materialNeedsSmoothNormals reports whether the resolved material shades
// with interpolated vertex normals.
func materialNeedsSmoothNormals(mat material.Material) bool {
	switch m := mat.(type) {
	case *material.MeshBasicMaterial:
		return m.Shading == material.ShadingSmooth
	case *material.MeshLambertMaterial:
		return m.Shading == material.ShadingSmooth
	case *material.MeshPhongMaterial:
		return m.Shading == material.ShadingSmooth
	case *material.MeshNormalMaterial:
		return m.Shading == material.ShadingSmooth
	case *material.ShaderMaterial:
		return true
	}
	return true
}

// deleteGroupBuffers releases the GPU buffers of one geometry group.
func (r *rendererImpl) deleteGroupBuffers(group *geometry.Group) {
	gb, _ := group.GL.(*groupBuffers)
	if gb == nil {
		return
	}
	gl := r.gl
	gl.DeleteBuffer(gb.vertexBuffer)
	gl.DeleteBuffer(gb.normalBuffer)
	gl.DeleteBuffer(gb.tangentBuffer)
	gl.DeleteBuffer(gb.colorBuffer)
	gl.DeleteBuffer(gb.uvBuffer)
	gl.DeleteBuffer(gb.uv2Buffer)
	gl.DeleteBuffer(gb.skinIndexBuffer)
	gl.DeleteBuffer(gb.skinWeightBuffer)
	gl.DeleteBuffer(gb.indexBuffer)
	gl.DeleteBuffer(gb.lineBuffer)
	for _, b := range gb.morphTargetBuffers {
		gl.DeleteBuffer(b)
	}
	for _, b := range gb.morphNormalBuffers {
		gl.DeleteBuffer(b)
	}
	for _, cb := range gb.customs {
		gl.DeleteBuffer(cb.buffer)
	}
	group.GL = nil
	r.info.Memory.Geometries--
}

// --- lines and particle systems ---

// initObjectBuffers creates the vertex/color (and line-distance) buffers
// for a line or particle-system geometry.
func (r *rendererImpl) initObjectBuffers(geo *geometry.Geometry, withLineDistances bool, mat material.Material) {
	gl := r.gl
	ob := &objectBuffers{}
	ob.vertexBuffer = gl.CreateBuffer()
	ob.colorBuffer = gl.CreateBuffer()
	if withLineDistances {
		ob.lineDistanceBuffer = gl.CreateBuffer()
	}
	ob.vertexCount = len(geo.Vertices)
	ob.vertexArray = make([]float32, ob.vertexCount*3)
	ob.colorArray = make([]float32, ob.vertexCount*3)
	if withLineDistances {
		ob.lineDistanceArray = make([]float32, ob.vertexCount)
	}

	if sm := shaderMaterialOf(mat); sm != nil {
		for name, attr := range sm.Attributes {
			ob.customs = append(ob.customs, customBinding{
				name:   name,
				attr:   attr,
				buffer: gl.CreateBuffer(),
			})
		}
	}

	geo.GL = ob
	geo.VerticesNeedUpdate = true
	geo.ColorsNeedUpdate = true
	geo.LineDistancesNeedUpdate = withLineDistances
}

// setObjectBuffers re-uploads the dirty streams of a line or particle
// geometry. When sortOrder is non-nil (particle systems with SortParticles)
// vertices and colors are written in back-to-front order.
func (r *rendererImpl) setObjectBuffers(geo *geometry.Geometry, sortOrder []int, dashed bool) {
	ob, _ := geo.GL.(*objectBuffers)
	if ob == nil {
		return
	}
	gl := r.gl
	hint := r.usageHint(geo.Dynamic)

	if geo.VerticesNeedUpdate || sortOrder != nil {
		for i := 0; i < ob.vertexCount; i++ {
			src := i
			if sortOrder != nil {
				src = sortOrder[i]
			}
			v := geo.Vertices[src]
			ob.vertexArray[i*3] = v.X
			ob.vertexArray[i*3+1] = v.Y
			ob.vertexArray[i*3+2] = v.Z
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, ob.vertexBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(ob.vertexArray), hint)
	}

	if (geo.ColorsNeedUpdate || sortOrder != nil) && len(geo.Colors) >= ob.vertexCount {
		for i := 0; i < ob.vertexCount; i++ {
			src := i
			if sortOrder != nil {
				src = sortOrder[i]
			}
			c := geo.Colors[src]
			ob.colorArray[i*3] = c.R
			ob.colorArray[i*3+1] = c.G
			ob.colorArray[i*3+2] = c.B
		}
		gl.BindBuffer(glctx.ARRAY_BUFFER, ob.colorBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(ob.colorArray), hint)
	}

	if dashed && geo.LineDistancesNeedUpdate && len(geo.LineDistances) >= ob.vertexCount {
		copy(ob.lineDistanceArray, geo.LineDistances)
		gl.BindBuffer(glctx.ARRAY_BUFFER, ob.lineDistanceBuffer)
		gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(ob.lineDistanceArray), hint)
	}

	for _, cb := range ob.customs {
		if cb.attr.NeedsUpdate || !ob.initted {
			gl.BindBuffer(glctx.ARRAY_BUFFER, cb.buffer)
			gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(cb.attr.Value), hint)
			cb.attr.NeedsUpdate = false
		}
	}

	ob.initted = true
}

// deleteObjectBuffers releases a line or particle geometry's buffers.
func (r *rendererImpl) deleteObjectBuffers(geo *geometry.Geometry) {
	ob, _ := geo.GL.(*objectBuffers)
	if ob == nil {
		return
	}
	gl := r.gl
	gl.DeleteBuffer(ob.vertexBuffer)
	gl.DeleteBuffer(ob.colorBuffer)
	if ob.lineDistanceBuffer.Valid() {
		gl.DeleteBuffer(ob.lineDistanceBuffer)
	}
	for _, cb := range ob.customs {
		gl.DeleteBuffer(cb.buffer)
	}
	geo.GL = nil
	r.info.Memory.Geometries--
}

// --- buffer geometries ---

// attrBuffer is the GPU handle attached to one BufferGeometry attribute.
type attrBuffer struct {
	buffer glctx.Buffer
}

// setBufferGeometry lazily creates and re-uploads the GPU buffers of a
// pre-attributed geometry.
func (r *rendererImpl) setBufferGeometry(bg *geometry.BufferGeometry) {
	gl := r.gl
	hint := r.usageHint(bg.Dynamic)

	for _, attr := range bg.Attributes {
		ab, _ := attr.GL.(*attrBuffer)
		if ab == nil {
			ab = &attrBuffer{buffer: gl.CreateBuffer()}
			attr.GL = ab
			attr.NeedsUpdate = true
		}
		if attr.NeedsUpdate {
			gl.BindBuffer(glctx.ARRAY_BUFFER, ab.buffer)
			gl.BufferData(glctx.ARRAY_BUFFER, common.SliceToBytes(attr.Array), hint)
			attr.NeedsUpdate = false
		}
	}

	if bg.Index != nil {
		ab, _ := bg.Index.GL.(*attrBuffer)
		if ab == nil {
			ab = &attrBuffer{buffer: gl.CreateBuffer()}
			bg.Index.GL = ab
			bg.Index.NeedsUpdate = true
		}
		if bg.Index.NeedsUpdate {
			gl.BindBuffer(glctx.ELEMENT_ARRAY_BUFFER, ab.buffer)
			gl.BufferData(glctx.ELEMENT_ARRAY_BUFFER, common.SliceToBytes(bg.Index.Array), hint)
			bg.Index.NeedsUpdate = false
		}
	}
}

// deleteBufferGeometry releases a pre-attributed geometry's buffers.
func (r *rendererImpl) deleteBufferGeometry(bg *geometry.BufferGeometry) {
	gl := r.gl
	for _, attr := range bg.Attributes {
		if ab, ok := attr.GL.(*attrBuffer); ok {
			gl.DeleteBuffer(ab.buffer)
			attr.GL = nil
		}
	}
	if bg.Index != nil {
		if ab, ok := bg.Index.GL.(*attrBuffer); ok {
			gl.DeleteBuffer(ab.buffer)
			bg.Index.GL = nil
		}
	}
	r.info.Memory.Geometries--
}
