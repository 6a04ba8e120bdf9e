// package renderer is the GPU rasterizer: it consumes the scene graph each
// frame, culls and sorts, manages buffers, textures, and shader programs,
// minimizes pipeline state changes, and issues draw calls through the
// glctx.Context operation set.
package renderer

import (
	"log"
	"sort"
	"strings"

	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// Renderer draws a scene from a camera's point of view, into the default
// framebuffer or a render target. It owns every GPU-side resource; scene
// objects hold non-owning handles the renderer attaches to them.
//
// The renderer must be driven from the single thread owning the GL
// context, for the lifetime of that context.
type Renderer interface {
	// Render draws one frame of s from camera into target (nil for the
	// default framebuffer), clearing first per the auto-clear flags or
	// forceClear. Local failures (bad geometry, failed shader compiles,
	// unready textures) downgrade the offending object and never abort the
	// frame.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - camera: the active camera
	//   - target: optional off-screen target, nil for the framebuffer
	//   - forceClear: clear even when auto-clear is off
	Render(s *scene.Scene, camera scene.CameraNode, target *texture.RenderTarget, forceClear bool)

	// SetSize resizes the drawing buffer viewport.
	//
	// Parameters:
	//   - width, height: new size in pixels
	SetSize(width, height int)

	// SetViewport sets the viewport rectangle used for the default
	// framebuffer.
	//
	// Parameters:
	//   - x, y, width, height: viewport rectangle in pixels
	SetViewport(x, y, width, height int)

	// SetScissor sets the scissor rectangle.
	//
	// Parameters:
	//   - x, y, width, height: scissor rectangle in pixels
	SetScissor(x, y, width, height int)

	// EnableScissorTest toggles scissored clears and draws.
	//
	// Parameters:
	//   - enabled: true to enable the scissor test
	EnableScissorTest(enabled bool)

	// SetClearColor sets the color and alpha used when clearing.
	//
	// Parameters:
	//   - color: clear color
	//   - alpha: clear alpha
	SetClearColor(color math3.Color, alpha float32)

	// Clear clears the currently bound target's selected planes.
	//
	// Parameters:
	//   - color, depth, stencil: which planes to clear
	Clear(color, depth, stencil bool)

	// Info returns the live frame and memory counters.
	//
	// Returns:
	//   - *Info: counters, reset per frame for the render section
	Info() *Info

	// AddPrePlugin registers a plugin run before the clear each frame.
	//
	// Parameters:
	//   - p: the plugin to register
	AddPrePlugin(p Plugin)

	// AddPostPlugin registers a plugin run after the transparent pass.
	//
	// Parameters:
	//   - p: the plugin to register
	AddPostPlugin(p Plugin)

	// Context returns the GPU operation interface the renderer draws
	// through.
	//
	// Returns:
	//   - glctx.Context: the GPU context
	Context() glctx.Context

	// ReleaseTexture frees the GPU object behind tex. The descriptor stays
	// usable; the next bind re-uploads.
	//
	// Parameters:
	//   - tex: the texture to release
	ReleaseTexture(tex *texture.Texture)

	// ReleaseMaterial drops the material's program reference; the program
	// is deleted when its refcount reaches zero.
	//
	// Parameters:
	//   - mat: the material to release
	ReleaseMaterial(mat material.Material)

	// SupportsFloatTextures reports whether the driver advertises float
	// texture storage.
	//
	// Returns:
	//   - bool: true when the extension is present
	SupportsFloatTextures() bool

	// SupportsStandardDerivatives reports whether fragment derivative
	// functions (bump mapping) are available.
	//
	// Returns:
	//   - bool: true when the extension is present
	SupportsStandardDerivatives() bool

	// MaxAnisotropy returns the driver's anisotropic filtering ceiling,
	// zero when unsupported.
	//
	// Returns:
	//   - int: the maximum anisotropy level
	MaxAnisotropy() int
}

// capabilities is the probed driver feature set.
type capabilities struct {
	maxTextures       int
	maxVertexTextures int
	maxTextureSize    int
	maxCubemapSize    int
	maxVertexUniforms int

	anisotropy    bool
	maxAnisotropy int
	floatTextures bool
	derivatives   bool
	s3tc          bool
}

// materialBinding is the renderer-private program binding attached to a
// material's Base.GL.
type materialBinding struct {
	program  *Program
	uniforms map[string]*material.Uniform
	shaderID string
}

// renderItem is one classified draw of the frame: a node (plus its group
// for multi-material meshes) and its resolved material, keyed for depth
// sorting.
type renderItem struct {
	node  scene.Node
	mat   material.Material
	group *geometry.Group
	z     float32
}

// buffersKey identifies the attribute binding state so unchanged
// consecutive draws skip re-pointering.
type buffersKey struct {
	buffers   any
	programID uint64
}

type rendererImpl struct {
	gl    glctx.Context
	state *glState
	progs *programCache
	caps  capabilities

	info Info

	// Frame behavior flags.
	autoClear        bool
	autoClearColor   bool
	autoClearDepth   bool
	autoClearStencil bool
	autoUpdateScene  bool
	sortObjects      bool
	gammaInput       bool
	gammaOutput      bool

	maxLights       int
	maxMorphTargets int
	maxMorphNormals int
	maxBones        int

	requestedPrecision string

	clearColor math3.Color
	clearAlpha float32

	viewportX, viewportY          int
	viewportWidth, viewportHeight int
	scissorTest                   bool

	// Per-frame caches, reset at the top of Render.
	currentProgram    *Program
	currentMaterialID uint64
	currentBuffers    buffersKey
	currentCamera     scene.CameraNode
	currentTarget     *texture.RenderTarget
	lightsNeedUpdate  bool
	usedTextureUnits  int

	lights lightArrays

	projScreenMatrix math3.Matrix4
	frustum          math3.Frustum

	enabledAttributes map[int32]bool
	newAttributes     map[int32]bool

	opaqueList      []renderItem
	transparentList []renderItem

	prePlugins  []Plugin
	postPlugins []Plugin

	whiteTexture glctx.Texture

	// One-shot log latches.
	loggedLightClamp      bool
	loggedTextureNotReady bool
	loggedTextureUnits    bool
	loggedMissingUniform  bool
	loggedMorphClamp      bool
}

var _ Renderer = (*rendererImpl)(nil)

func (r *rendererImpl) Info() *Info              { return &r.info }
func (r *rendererImpl) Context() glctx.Context   { return r.gl }
func (r *rendererImpl) AddPrePlugin(p Plugin)    { p.Init(r, r.gl); r.prePlugins = append(r.prePlugins, p) }
func (r *rendererImpl) AddPostPlugin(p Plugin)   { p.Init(r, r.gl); r.postPlugins = append(r.postPlugins, p) }

func (r *rendererImpl) SetSize(width, height int) {
	r.SetViewport(0, 0, width, height)
}

func (r *rendererImpl) SetViewport(x, y, width, height int) {
	r.viewportX, r.viewportY = x, y
	r.viewportWidth, r.viewportHeight = width, height
	r.gl.Viewport(x, y, width, height)
}

func (r *rendererImpl) SetScissor(x, y, width, height int) {
	r.gl.Scissor(x, y, width, height)
}

func (r *rendererImpl) EnableScissorTest(enabled bool) {
	r.scissorTest = enabled
	if enabled {
		r.gl.Enable(glctx.SCISSOR_TEST)
	} else {
		r.gl.Disable(glctx.SCISSOR_TEST)
	}
}

func (r *rendererImpl) SetClearColor(color math3.Color, alpha float32) {
	r.clearColor = color
	r.clearAlpha = alpha
	r.gl.ClearColor(color.R, color.G, color.B, alpha)
}

func (r *rendererImpl) Clear(color, depth, stencil bool) {
	var bits glctx.Enum
	if color {
		bits |= glctx.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= glctx.DEPTH_BUFFER_BIT
	}
	if stencil {
		bits |= glctx.STENCIL_BUFFER_BIT
	}
	if bits != 0 {
		r.gl.Clear(bits)
	}
}

func (r *rendererImpl) ReleaseTexture(tex *texture.Texture) {
	r.releaseTexture(tex)
}

func (r *rendererImpl) SupportsFloatTextures() bool {
	return r.caps.floatTextures
}

func (r *rendererImpl) SupportsStandardDerivatives() bool {
	return r.caps.derivatives
}

func (r *rendererImpl) MaxAnisotropy() int {
	return r.caps.maxAnisotropy
}

func (r *rendererImpl) ReleaseMaterial(mat material.Material) {
	base := mat.Base()
	if mb, ok := base.GL.(*materialBinding); ok {
		r.progs.release(mb.program)
		r.info.Memory.Programs = r.progs.size()
		base.GL = nil
	}
}

// probeCapabilities queries limits and extensions from the driver.
func probeCapabilities(gl glctx.Context) capabilities {
	ext := gl.GetString(glctx.EXTENSIONS)
	caps := capabilities{
		maxTextures:       gl.GetInteger(glctx.MAX_TEXTURE_IMAGE_UNITS),
		maxVertexTextures: gl.GetInteger(glctx.MAX_VERTEX_TEXTURE_IMAGE_UNITS),
		maxTextureSize:    gl.GetInteger(glctx.MAX_TEXTURE_SIZE),
		maxCubemapSize:    gl.GetInteger(glctx.MAX_CUBE_MAP_TEXTURE_SIZE),
		maxVertexUniforms: gl.GetInteger(glctx.MAX_VERTEX_UNIFORM_VECTORS),
		anisotropy:        strings.Contains(ext, "texture_filter_anisotropic"),
		floatTextures:     strings.Contains(ext, "texture_float"),
		derivatives:       strings.Contains(ext, "standard_derivatives"),
		s3tc:              strings.Contains(ext, "compression_s3tc"),
	}
	if caps.anisotropy {
		caps.maxAnisotropy = gl.GetInteger(glctx.MAX_TEXTURE_MAX_ANISOTROPY_EXT)
	}
	if caps.maxTextures < 1 {
		caps.maxTextures = 1
	}
	return caps
}

// resolvePrecision downgrades the requested precision when the driver's
// fragment float range is insufficient.
func resolvePrecision(gl glctx.Context, requested string) string {
	_, highMax, _ := gl.GetShaderPrecisionFormat(glctx.FRAGMENT_SHADER, glctx.HIGH_FLOAT)
	_, medMax, _ := gl.GetShaderPrecisionFormat(glctx.FRAGMENT_SHADER, glctx.MEDIUM_FLOAT)

	precision := requested
	if precision == "highp" && highMax == 0 {
		precision = "mediump"
		log.Printf("[renderer] highp not supported, using mediump")
	}
	if precision == "mediump" && medMax == 0 {
		precision = "lowp"
		log.Printf("[renderer] mediump not supported, using lowp")
	}
	return precision
}

// --- frame entry point ---

// Render implements the per-frame sequence: reset caches, refresh world
// and camera matrices, derive the frustum, drain the scene's add/remove
// queues and sync dirty geometry, run pre-plugins, bind and clear the
// target, cull/classify/sort, draw the opaque then transparent pass, run
// post-plugins, regenerate target mipmaps, and restore depth state.
func (r *rendererImpl) Render(s *scene.Scene, camera scene.CameraNode, target *texture.RenderTarget, forceClear bool) {
	// 1. Reset per-frame caches.
	r.currentProgram = nil
	r.currentMaterialID = 0
	r.currentBuffers = buffersKey{}
	r.currentCamera = nil
	r.lightsNeedUpdate = true
	r.info.Render.Calls = 0
	r.info.Render.Triangles = 0
	r.info.Render.Points = 0
	r.info.Render.Vertices = 0

	// 2. Scene graph update.
	if s.AutoUpdate {
		s.UpdateMatrixWorld(false)
	}

	// 3. Camera matrices.
	cam := camera.CameraBase()
	if cam.Parent == nil {
		camera.Base().UpdateMatrixWorld(false)
	}
	if !cam.MatrixWorldInverse.SetInverseOf(&cam.MatrixWorld) {
		cam.MatrixWorldInverse.SetIdentity()
	}

	// 4. Projection-screen matrix and frustum.
	r.projScreenMatrix.MulMatrices(&cam.ProjectionMatrix, &cam.MatrixWorldInverse)
	r.frustum.SetFromMatrix(&r.projScreenMatrix)

	// 5. Drain membership queues, then sync dirty geometry.
	r.initObjects(s)

	// 6. Pre-plugins.
	for _, p := range r.prePlugins {
		p.Render(s, camera, r.viewportWidth, r.viewportHeight)
	}

	// 7. Target bind and clear.
	r.setRenderTarget(target)
	if r.autoClear || forceClear {
		r.Clear(r.autoClearColor, r.autoClearDepth, r.autoClearStencil)
	}

	// 8. Classify and sort.
	r.buildRenderLists(s, camera)

	// 9. Opaque pass with normal blending, then transparent pass with
	// material blending.
	overrideMat := s.OverrideMaterial
	if overrideMat != nil {
		ob := overrideMat.Base()
		r.state.setBlending(ob.Blending, ob.BlendEquation, ob.BlendSrc, ob.BlendDst)
		r.state.setDepthTest(ob.DepthTest)
		r.state.setDepthWrite(ob.DepthWrite)
		r.state.setPolygonOffset(ob.PolygonOffset, ob.PolygonOffsetFactor, ob.PolygonOffsetUnits)
	}
	for i := range r.opaqueList {
		item := &r.opaqueList[i]
		mat := item.mat
		if overrideMat != nil {
			mat = overrideMat
		} else {
			// The opaque pass always runs under normal blending.
			r.state.setBlending(material.BlendingNormal, 0, 0, 0)
		}
		r.renderItemNow(s, camera, item, mat, overrideMat != nil)
	}
	for i := range r.transparentList {
		item := &r.transparentList[i]
		mat := item.mat
		if overrideMat != nil {
			mat = overrideMat
		} else {
			base := mat.Base()
			r.state.setBlending(base.Blending, base.BlendEquation, base.BlendSrc, base.BlendDst)
		}
		r.renderItemNow(s, camera, item, mat, overrideMat != nil)
	}

	// 10. Post-plugins.
	for _, p := range r.postPlugins {
		p.Render(s, camera, r.viewportWidth, r.viewportHeight)
	}

	// 11. Target mipmaps.
	if target != nil && targetNeedsMipmaps(target) {
		r.updateRenderTargetMipmap(target)
	}

	// 12. Leave the depth unit enabled for whoever renders next.
	r.state.setDepthTest(true)
	r.state.setDepthWrite(true)
}

// initObjects drains the scene's add/remove queues in FIFO order, then
// synchronizes dirty geometry for every live object.
func (r *rendererImpl) initObjects(s *scene.Scene) {
	for len(s.ObjectsAdded) > 0 {
		r.addObjectGPU(s.ObjectsAdded[0])
		s.ObjectsAdded = s.ObjectsAdded[1:]
	}
	for len(s.ObjectsRemoved) > 0 {
		r.removeObjectGPU(s.ObjectsRemoved[0])
		s.ObjectsRemoved = s.ObjectsRemoved[1:]
	}

	for _, node := range s.Objects {
		r.updateObject(node)
	}
}

// addObjectGPU creates the GPU buffers for a newly added renderable.
func (r *rendererImpl) addObjectGPU(node scene.Node) {
	switch n := node.(type) {
	case *scene.Mesh:
		if n.Geometry != nil {
			geo := n.Geometry
			if err := geo.Validate(); err != nil {
				log.Printf("[renderer] skipping invalid geometry: %v", err)
				return
			}
			if len(geo.GroupsList) == 0 {
				geo.SortFacesByMaterial()
			}
			for _, group := range geo.GroupsList {
				if group.GL == nil {
					r.initGeometryGroupBuffers(geo, group, n)
					r.info.Memory.Geometries++
				}
			}
		} else if n.Buffer != nil {
			r.setBufferGeometry(n.Buffer)
			r.info.Memory.Geometries++
		}
	case *scene.Line:
		if n.Geometry != nil && n.Geometry.GL == nil {
			_, dashed := n.Material.(*material.LineDashedMaterial)
			if dashed && len(n.Geometry.LineDistances) != len(n.Geometry.Vertices) {
				n.Geometry.ComputeLineDistances()
			}
			r.initObjectBuffers(n.Geometry, dashed, n.Material)
			r.info.Memory.Geometries++
		} else if n.Buffer != nil {
			r.setBufferGeometry(n.Buffer)
			r.info.Memory.Geometries++
		}
	case *scene.ParticleSystem:
		if n.Geometry != nil && n.Geometry.GL == nil {
			r.initObjectBuffers(n.Geometry, false, n.Material)
			r.info.Memory.Geometries++
		} else if n.Buffer != nil {
			r.setBufferGeometry(n.Buffer)
			r.info.Memory.Geometries++
		}
	}
}

// removeObjectGPU releases the GPU buffers of a removed renderable.
func (r *rendererImpl) removeObjectGPU(node scene.Node) {
	switch n := node.(type) {
	case *scene.Mesh:
		if n.Geometry != nil {
			for _, group := range n.Geometry.GroupsList {
				r.deleteGroupBuffers(group)
			}
		} else if n.Buffer != nil {
			r.deleteBufferGeometry(n.Buffer)
		}
	case *scene.Line:
		if n.Geometry != nil {
			r.deleteObjectBuffers(n.Geometry)
		} else if n.Buffer != nil {
			r.deleteBufferGeometry(n.Buffer)
		}
	case *scene.ParticleSystem:
		if n.Geometry != nil {
			r.deleteObjectBuffers(n.Geometry)
		} else if n.Buffer != nil {
			r.deleteBufferGeometry(n.Buffer)
		}
	}
}

// updateObject re-uploads whatever the object's dirty flags request.
func (r *rendererImpl) updateObject(node scene.Node) {
	switch n := node.(type) {
	case *scene.Mesh:
		if geo := n.Geometry; geo != nil {
			if geo.VerticesNeedUpdate || geo.ElementsNeedUpdate || geo.UVsNeedUpdate ||
				geo.NormalsNeedUpdate || geo.ColorsNeedUpdate || geo.TangentsNeedUpdate ||
				geo.MorphTargetsNeedUpdate || geo.BuffersNeedUpdate {
				for _, group := range geo.GroupsList {
					r.setMeshBuffers(geo, group, n, r.resolveMaterial(n.Material, group))
				}
				geo.VerticesNeedUpdate = false
				geo.ElementsNeedUpdate = false
				geo.UVsNeedUpdate = false
				geo.NormalsNeedUpdate = false
				geo.ColorsNeedUpdate = false
				geo.TangentsNeedUpdate = false
				geo.MorphTargetsNeedUpdate = false
				geo.BuffersNeedUpdate = false
			}
		} else if n.Buffer != nil {
			r.setBufferGeometry(n.Buffer)
		}
	case *scene.Line:
		if geo := n.Geometry; geo != nil {
			_, dashed := n.Material.(*material.LineDashedMaterial)
			if geo.VerticesNeedUpdate || geo.ColorsNeedUpdate || (dashed && geo.LineDistancesNeedUpdate) {
				r.setObjectBuffers(geo, nil, dashed)
				geo.VerticesNeedUpdate = false
				geo.ColorsNeedUpdate = false
				geo.LineDistancesNeedUpdate = false
			}
		} else if n.Buffer != nil {
			r.setBufferGeometry(n.Buffer)
		}
	case *scene.ParticleSystem:
		if geo := n.Geometry; geo != nil {
			var order []int
			if n.SortParticles {
				order = r.particleSortOrder(n)
			}
			if geo.VerticesNeedUpdate || geo.ColorsNeedUpdate || order != nil {
				r.setObjectBuffers(geo, order, false)
				geo.VerticesNeedUpdate = false
				geo.ColorsNeedUpdate = false
			}
		} else if n.Buffer != nil {
			r.setBufferGeometry(n.Buffer)
		}
	}
}

// particleSortOrder returns vertex indices sorted back to front in clip
// space, so blended point sprites composite correctly.
func (r *rendererImpl) particleSortOrder(ps *scene.ParticleSystem) []int {
	geo := ps.Geometry
	var mv math3.Matrix4
	mv.MulMatrices(&r.projScreenMatrix, &ps.MatrixWorld)

	type depthIndex struct {
		z float32
		i int
	}
	entries := make([]depthIndex, len(geo.Vertices))
	for i, v := range geo.Vertices {
		p := v.ApplyProjection(&mv)
		entries[i] = depthIndex{z: p.Z, i: i}
	}
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].z > entries[b].z })

	order := make([]int, len(entries))
	for i, e := range entries {
		order[i] = e.i
	}
	return order
}

// resolveMaterial maps a mesh material to the group's slot for per-face
// materials.
func (r *rendererImpl) resolveMaterial(mat material.Material, group *geometry.Group) material.Material {
	if fm, ok := mat.(*material.MeshFaceMaterial); ok && group != nil {
		if group.MaterialIndex >= 0 && group.MaterialIndex < len(fm.Materials) {
			return fm.Materials[group.MaterialIndex]
		}
		return nil
	}
	return mat
}

// buildRenderLists walks the scene's live objects, frustum-culls, computes
// sort depth, and splits draws into the opaque and transparent lists.
func (r *rendererImpl) buildRenderLists(s *scene.Scene, camera scene.CameraNode) {
	r.opaqueList = r.opaqueList[:0]
	r.transparentList = r.transparentList[:0]

	for _, node := range s.Objects {
		base := node.Base()
		if !base.Visible {
			continue
		}

		switch n := node.(type) {
		case *scene.Mesh:
			if base.FrustumCulled && !r.sphereInFrustum(n.Geometry, n.Buffer, base) {
				continue
			}
			z := r.sortDepth(base)
			if n.Geometry != nil {
				for _, group := range n.Geometry.GroupsList {
					mat := r.resolveMaterial(n.Material, group)
					if mat == nil || !mat.Base().Visible {
						continue
					}
					r.pushRenderItem(renderItem{node: node, mat: mat, group: group, z: z})
				}
			} else if n.Buffer != nil && n.Material != nil && n.Material.Base().Visible {
				r.pushRenderItem(renderItem{node: node, mat: n.Material, z: z})
			}
		case *scene.Line:
			if n.Material != nil && n.Material.Base().Visible {
				r.pushRenderItem(renderItem{node: node, mat: n.Material, z: r.sortDepth(base)})
			}
		case *scene.ParticleSystem:
			if base.FrustumCulled && !r.sphereInFrustum(n.Geometry, n.Buffer, base) {
				continue
			}
			if n.Material != nil && n.Material.Base().Visible {
				r.pushRenderItem(renderItem{node: node, mat: n.Material, z: r.sortDepth(base)})
			}
		}
	}

	if r.sortObjects {
		// Opaque front to back, transparent back to front.
		sort.SliceStable(r.opaqueList, func(a, b int) bool {
			return r.opaqueList[a].z < r.opaqueList[b].z
		})
		sort.SliceStable(r.transparentList, func(a, b int) bool {
			return r.transparentList[a].z > r.transparentList[b].z
		})
	}
}

func (r *rendererImpl) pushRenderItem(item renderItem) {
	if item.mat.Base().Transparent {
		r.transparentList = append(r.transparentList, item)
	} else {
		r.opaqueList = append(r.opaqueList, item)
	}
}

// sortDepth returns the projected (normalized device) z of the object's
// world position, larger meaning farther, or its declared render-depth
// override.
func (r *rendererImpl) sortDepth(base *scene.Object3D) float32 {
	if base.RenderDepthSet {
		return base.RenderDepth
	}
	pos := base.MatrixWorld.Position()
	ndc := pos.ApplyProjection(&r.projScreenMatrix)
	return ndc.Z
}

// sphereInFrustum tests the object's world-space bounding sphere (radius
// scaled by the largest axis scale) against the view frustum.
func (r *rendererImpl) sphereInFrustum(geo *geometry.Geometry, bg *geometry.BufferGeometry, base *scene.Object3D) bool {
	var sphere *math3.Sphere
	if geo != nil {
		if geo.BoundingSphere == nil {
			geo.ComputeBoundingSphere()
		}
		sphere = geo.BoundingSphere
	} else if bg != nil {
		if bg.BoundingSphere == nil {
			bg.ComputeBoundingSphere()
		}
		sphere = bg.BoundingSphere
	}
	if sphere == nil {
		return true
	}
	world := sphere.ApplyMatrix4(&base.MatrixWorld)
	return r.frustum.IntersectsSphere(world)
}

// renderItemNow issues the draw for one classified item, applying
// per-material depth and side state unless an override material already
// fixed frame-wide state.
func (r *rendererImpl) renderItemNow(s *scene.Scene, camera scene.CameraNode, item *renderItem, mat material.Material, override bool) {
	base := mat.Base()
	if base.Unusable && !base.NeedsUpdate {
		return
	}

	if !override {
		r.state.setDepthTest(base.DepthTest)
		r.state.setDepthWrite(base.DepthWrite)
		r.state.setPolygonOffset(base.PolygonOffset, base.PolygonOffsetFactor, base.PolygonOffsetUnits)
	}
	flipSided := item.node.Base().MatrixWorld.Determinant() < 0
	r.state.setMaterialFaces(base.Side, flipSided)

	p := r.setProgram(s, camera, mat, item.node)
	if p == nil {
		return
	}

	switch n := item.node.(type) {
	case *scene.Mesh:
		if n.Geometry != nil && item.group != nil {
			r.renderMeshGroup(p, mat, n, item.group)
		} else if n.Buffer != nil {
			r.renderBufferGeometry(p, mat, n.Buffer, glctx.TRIANGLES)
		}
	case *scene.Line:
		r.renderLine(p, mat, n)
	case *scene.ParticleSystem:
		r.renderParticles(p, mat, n)
	}
}
