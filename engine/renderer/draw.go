package renderer

import (
	"fmt"
	"log"
	"sort"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
)

// initAttributes begins a fresh attribute binding pass.
func (r *rendererImpl) initAttributes() {
	for k := range r.newAttributes {
		delete(r.newAttributes, k)
	}
}

// enableAttribute enables the array at a, deferring disables to
// disableUnusedAttributes.
func (r *rendererImpl) enableAttribute(a glctx.Attrib) {
	r.newAttributes[a.Value] = true
	if !r.enabledAttributes[a.Value] {
		r.gl.EnableVertexAttribArray(a)
		r.enabledAttributes[a.Value] = true
	}
}

// disableUnusedAttributes disables every array enabled by a prior draw but
// unused by this one.
func (r *rendererImpl) disableUnusedAttributes() {
	for loc := range r.enabledAttributes {
		if !r.newAttributes[loc] {
			r.gl.DisableVertexAttribArray(glctx.Attrib{Value: loc})
			delete(r.enabledAttributes, loc)
		}
	}
}

// bindAttribute points the named program attribute at buffer with size
// float components per vertex. Missing locations are skipped.
func (r *rendererImpl) bindAttribute(p *Program, name string, buffer glctx.Buffer, size int) {
	a, ok := p.Attributes[name]
	if !ok || !a.Valid() || !buffer.Valid() {
		return
	}
	r.gl.BindBuffer(glctx.ARRAY_BUFFER, buffer)
	r.enableAttribute(a)
	r.gl.VertexAttribPointer(a, size, glctx.FLOAT, false, 0, 0)
}

// materialWireframe reports wireframe mode and line width for mesh
// materials.
func materialWireframe(mat material.Material) (bool, float32) {
	switch m := mat.(type) {
	case *material.MeshBasicMaterial:
		return m.Wireframe, m.WireframeLinewidth
	case *material.MeshLambertMaterial:
		return m.Wireframe, m.WireframeLinewidth
	case *material.MeshPhongMaterial:
		return m.Wireframe, m.WireframeLinewidth
	case *material.MeshDepthMaterial:
		return m.Wireframe, m.WireframeLinewidth
	case *material.MeshNormalMaterial:
		return m.Wireframe, m.WireframeLinewidth
	case *material.ShaderMaterial:
		return m.Wireframe, m.WireframeLinewidth
	}
	return false, 1
}

// renderMeshGroup binds a geometry group's buffers and draws it as
// triangles (or as the line-index wireframe).
func (r *rendererImpl) renderMeshGroup(p *Program, mat material.Material, mesh *scene.Mesh, group *geometry.Group) {
	gb, _ := group.GL.(*groupBuffers)
	if gb == nil || gb.faceCount == 0 {
		return
	}

	morphing := len(gb.morphTargetBuffers) > 0 && len(mesh.MorphTargetInfluences) > 0

	key := buffersKey{buffers: gb, programID: p.ID}
	updateBuffers := key != r.currentBuffers || morphing
	if updateBuffers {
		r.currentBuffers = key
		r.initAttributes()

		r.bindAttribute(p, "position", gb.vertexBuffer, 3)
		r.bindAttribute(p, "normal", gb.normalBuffer, 3)
		r.bindAttribute(p, "uv", gb.uvBuffer, 2)
		r.bindAttribute(p, "uv2", gb.uv2Buffer, 2)
		r.bindAttribute(p, "color", gb.colorBuffer, 3)
		if gb.tangentBuffer.Valid() {
			r.bindAttribute(p, "tangent", gb.tangentBuffer, 4)
		}
		if gb.skinIndexBuffer.Valid() {
			r.bindAttribute(p, "skinIndex", gb.skinIndexBuffer, 4)
			r.bindAttribute(p, "skinWeight", gb.skinWeightBuffer, 4)
		}
		for _, cb := range gb.customs {
			r.bindAttribute(p, cb.name, cb.buffer, cb.attr.ItemSize)
		}

		if morphing {
			r.setupMorphTargets(p, mesh, gb)
		}

		r.disableUnusedAttributes()
	}

	if wireframe, width := materialWireframe(mat); wireframe {
		r.state.setLineWidth(width)
		if updateBuffers {
			r.gl.BindBuffer(glctx.ELEMENT_ARRAY_BUFFER, gb.lineBuffer)
		}
		r.gl.DrawElements(glctx.LINES, gb.lineCount, glctx.UNSIGNED_SHORT, 0)
	} else {
		if updateBuffers {
			r.gl.BindBuffer(glctx.ELEMENT_ARRAY_BUFFER, gb.indexBuffer)
		}
		r.gl.DrawElements(glctx.TRIANGLES, gb.faceCount, glctx.UNSIGNED_SHORT, 0)
		r.info.Render.Triangles += gb.faceCount / 3
	}
	r.info.Render.Calls++
	r.info.Render.Vertices += gb.faceCount
}

// setupMorphTargets binds the active morph target buffers to the shader's
// influence slots and uploads the matching influence values. The caller's
// forced order wins; otherwise the top influences by magnitude are chosen,
// ties broken by input index.
func (r *rendererImpl) setupMorphTargets(p *Program, mesh *scene.Mesh, gb *groupBuffers) {
	morphNormals := len(gb.morphNormalBuffers) > 0

	// The shader declares 8 influence slots, or 4 when normals morph too.
	arraySize := 8
	if morphNormals {
		arraySize = 4
	}
	slots := arraySize
	if r.maxMorphTargets < slots {
		slots = r.maxMorphTargets
	}
	if len(gb.morphTargetBuffers) < slots {
		slots = len(gb.morphTargetBuffers)
	}

	var order []int
	if len(mesh.MorphTargetForcedOrder) > 0 {
		order = mesh.MorphTargetForcedOrder
	} else {
		// Top influences by magnitude, stable on input index.
		order = make([]int, len(mesh.MorphTargetInfluences))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return math3.Abs(mesh.MorphTargetInfluences[order[a]]) > math3.Abs(mesh.MorphTargetInfluences[order[b]])
		})
	}
	if len(order) > slots {
		if len(mesh.MorphTargetForcedOrder) > slots && !r.loggedMorphClamp {
			log.Printf("[renderer] mesh %d uses %d morph targets, clamped to %d", mesh.ID, len(order), slots)
			r.loggedMorphClamp = true
		}
		order = order[:slots]
	}

	influences := make([]float32, arraySize)
	for slot, t := range order {
		if t < 0 || t >= len(gb.morphTargetBuffers) {
			continue
		}
		r.bindAttribute(p, fmt.Sprintf("morphTarget%d", slot), gb.morphTargetBuffers[t], 3)
		if morphNormals && t < len(gb.morphNormalBuffers) {
			r.bindAttribute(p, fmt.Sprintf("morphNormal%d", slot), gb.morphNormalBuffers[t], 3)
		}
		if t < len(mesh.MorphTargetInfluences) {
			influences[slot] = mesh.MorphTargetInfluences[t]
		}
	}

	if loc := p.Uniforms["morphTargetInfluences"]; loc.Valid() {
		r.gl.Uniform1fv(loc, influences)
	}
}

// renderLine binds a line geometry's streams and draws the strip or
// segment soup.
func (r *rendererImpl) renderLine(p *Program, mat material.Material, line *scene.Line) {
	if line.Buffer != nil {
		mode := glctx.LINE_STRIP
		if line.Type == scene.LinePieces {
			mode = glctx.LINES
		}
		r.renderBufferGeometry(p, mat, line.Buffer, mode)
		return
	}

	ob, _ := line.Geometry.GL.(*objectBuffers)
	if ob == nil || ob.vertexCount == 0 {
		return
	}

	switch m := mat.(type) {
	case *material.LineBasicMaterial:
		r.state.setLineWidth(m.Linewidth)
	case *material.LineDashedMaterial:
		r.state.setLineWidth(m.Linewidth)
	}

	key := buffersKey{buffers: ob, programID: p.ID}
	if key != r.currentBuffers {
		r.currentBuffers = key
		r.initAttributes()
		r.bindAttribute(p, "position", ob.vertexBuffer, 3)
		r.bindAttribute(p, "color", ob.colorBuffer, 3)
		if ob.lineDistanceBuffer.Valid() {
			r.bindAttribute(p, "lineDistance", ob.lineDistanceBuffer, 1)
		}
		for _, cb := range ob.customs {
			r.bindAttribute(p, cb.name, cb.buffer, cb.attr.ItemSize)
		}
		r.disableUnusedAttributes()
	}

	mode := glctx.LINE_STRIP
	if line.Type == scene.LinePieces {
		mode = glctx.LINES
	}
	r.gl.DrawArrays(mode, 0, ob.vertexCount)
	r.info.Render.Calls++
	r.info.Render.Vertices += ob.vertexCount
}

// renderParticles binds a particle geometry's streams and draws points.
func (r *rendererImpl) renderParticles(p *Program, mat material.Material, ps *scene.ParticleSystem) {
	if ps.Buffer != nil {
		r.renderBufferGeometry(p, mat, ps.Buffer, glctx.POINTS)
		return
	}

	ob, _ := ps.Geometry.GL.(*objectBuffers)
	if ob == nil || ob.vertexCount == 0 {
		return
	}

	key := buffersKey{buffers: ob, programID: p.ID}
	if key != r.currentBuffers || ps.SortParticles {
		r.currentBuffers = key
		r.initAttributes()
		r.bindAttribute(p, "position", ob.vertexBuffer, 3)
		r.bindAttribute(p, "color", ob.colorBuffer, 3)
		for _, cb := range ob.customs {
			r.bindAttribute(p, cb.name, cb.buffer, cb.attr.ItemSize)
		}
		r.disableUnusedAttributes()
	}

	r.gl.DrawArrays(glctx.POINTS, 0, ob.vertexCount)
	r.info.Render.Calls++
	r.info.Render.Points += ob.vertexCount
}

// renderBufferGeometry draws a pre-attributed geometry: one DrawElements
// per offset chunk for indexed layouts, one DrawArrays otherwise. Chunks
// whose index range falls outside the array are skipped with a log.
func (r *rendererImpl) renderBufferGeometry(p *Program, mat material.Material, bg *geometry.BufferGeometry, mode glctx.Enum) {
	position := bg.Attributes[geometry.AttributePosition]
	if position == nil {
		return
	}

	if bg.Index != nil {
		ib, _ := bg.Index.GL.(*attrBuffer)
		if ib == nil {
			return
		}
		offsets := bg.Offsets
		if len(offsets) == 0 {
			offsets = []geometry.Offset{{Start: 0, Count: len(bg.Index.Array), Index: 0}}
		}
		for _, off := range offsets {
			if off.Start < 0 || off.Count < 0 || off.Start+off.Count > len(bg.Index.Array) {
				log.Printf("[renderer] buffer geometry %d offset (%d,%d) outside index array of %d, skipping", bg.ID, off.Start, off.Count, len(bg.Index.Array))
				continue
			}

			r.initAttributes()
			for name, attr := range bg.Attributes {
				ab, _ := attr.GL.(*attrBuffer)
				a, ok := p.Attributes[name]
				if ab == nil || !ok || !a.Valid() {
					continue
				}
				r.gl.BindBuffer(glctx.ARRAY_BUFFER, ab.buffer)
				r.enableAttribute(a)
				r.gl.VertexAttribPointer(a, attr.ItemSize, glctx.FLOAT, false, 0, off.Index*attr.ItemSize*4)
			}
			r.disableUnusedAttributes()

			r.gl.BindBuffer(glctx.ELEMENT_ARRAY_BUFFER, ib.buffer)
			r.gl.DrawElements(mode, off.Count, glctx.UNSIGNED_SHORT, off.Start*2)

			r.info.Render.Calls++
			r.info.Render.Vertices += off.Count
			if mode == glctx.TRIANGLES {
				r.info.Render.Triangles += off.Count / 3
			}
		}
		// Per-offset pointers invalidate the binding cache.
		r.currentBuffers = buffersKey{}
		return
	}

	key := buffersKey{buffers: bg, programID: p.ID}
	if key != r.currentBuffers {
		r.currentBuffers = key
		r.initAttributes()
		for name, attr := range bg.Attributes {
			ab, _ := attr.GL.(*attrBuffer)
			a, ok := p.Attributes[name]
			if ab == nil || !ok || !a.Valid() {
				continue
			}
			r.gl.BindBuffer(glctx.ARRAY_BUFFER, ab.buffer)
			r.enableAttribute(a)
			r.gl.VertexAttribPointer(a, attr.ItemSize, glctx.FLOAT, false, 0, 0)
		}
		r.disableUnusedAttributes()
	}

	count := bg.VertexCount()
	r.gl.DrawArrays(mode, 0, count)
	r.info.Render.Calls++
	r.info.Render.Vertices += count
	if mode == glctx.POINTS {
		r.info.Render.Points += count
	} else if mode == glctx.TRIANGLES {
		r.info.Render.Triangles += count / 3
	}
}
