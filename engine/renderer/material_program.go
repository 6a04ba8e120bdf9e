package renderer

import (
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/renderer/shaders"
	"github.com/Carmen-Shannon/trigl/engine/scene"
)

// shaderIDFor maps a material kind to its builtin shader name; shader
// materials return the empty id and carry their own sources.
func shaderIDFor(mat material.Material) string {
	switch mat.(type) {
	case *material.MeshBasicMaterial:
		return "basic"
	case *material.MeshLambertMaterial:
		return "lambert"
	case *material.MeshPhongMaterial:
		return "phong"
	case *material.MeshDepthMaterial:
		return "depth"
	case *material.MeshNormalMaterial:
		return "normal"
	case *material.LineBasicMaterial:
		return "line_basic"
	case *material.LineDashedMaterial:
		return "line_dashed"
	case *material.ParticleBasicMaterial:
		return "particle_basic"
	}
	return ""
}

// materialNeedsLights reports whether the material consumes the aggregated
// light uniforms.
func materialNeedsLights(mat material.Material) bool {
	switch m := mat.(type) {
	case *material.MeshLambertMaterial, *material.MeshPhongMaterial:
		return true
	case *material.ShaderMaterial:
		return m.Lights
	}
	return false
}

// materialUsesFog reports whether the material opted into scene fog.
func materialUsesFog(mat material.Material) bool {
	switch m := mat.(type) {
	case *material.MeshBasicMaterial:
		return m.Fog
	case *material.MeshLambertMaterial:
		return m.Fog
	case *material.MeshPhongMaterial:
		return m.Fog
	case *material.LineBasicMaterial:
		return m.Fog
	case *material.LineDashedMaterial:
		return m.Fog
	case *material.ParticleBasicMaterial:
		return m.Fog
	case *material.ShaderMaterial:
		return m.Fog
	}
	return false
}

// countLights tallies the scene's lights per kind, clamped to the
// renderer's configured maximum.
func (r *rendererImpl) countLights(lights []scene.LightNode) (dir, point, spot, hemi int) {
	for _, l := range lights {
		if l.LightBase().OnlyShadow {
			continue
		}
		switch l.(type) {
		case *scene.DirectionalLight:
			dir++
		case *scene.PointLight:
			point++
		case *scene.SpotLight:
			spot++
		case *scene.HemisphereLight:
			hemi++
		}
	}
	if dir > r.maxLights {
		dir = r.maxLights
	}
	if point > r.maxLights {
		point = r.maxLights
	}
	if spot > r.maxLights {
		spot = r.maxLights
	}
	if hemi > r.maxLights {
		hemi = r.maxLights
	}
	return dir, point, spot, hemi
}

// allowedBones caps the bone count by the driver's vertex uniform budget:
// each bone costs four vec4 rows, with headroom reserved for the matrix
// and light uniforms.
func (r *rendererImpl) allowedBones(requested int) int {
	budget := (r.caps.maxVertexUniforms - 20) / 4
	if budget < 0 {
		budget = 0
	}
	limit := r.maxBones
	if budget < limit {
		limit = budget
	}
	if requested > limit {
		return limit
	}
	return requested
}

// materialFeatures computes the feature vector that keys the program for
// mat drawn on node within s.
func (r *rendererImpl) materialFeatures(s *scene.Scene, mat material.Material, node scene.Node) Features {
	var f Features

	dir, point, spot, hemi := r.countLights(s.Lights)
	f.MaxDirLights = dir
	f.MaxPointLights = point
	f.MaxSpotLights = spot
	f.MaxHemiLights = hemi

	f.GammaInput = r.gammaInput
	f.GammaOutput = r.gammaOutput

	useFog := materialUsesFog(mat) && s.Fog != nil
	f.Fog = useFog
	if useFog {
		_, f.FogExp = s.Fog.(*scene.FogExp2)
	}

	mesh, _ := node.(*scene.Mesh)

	applyMorph := func(morphTargets, morphNormals bool) {
		if mesh == nil || mesh.Geometry == nil {
			return
		}
		if morphTargets && len(mesh.Geometry.MorphTargets) > 0 {
			f.MorphTargets = true
			f.MaxMorphTargets = r.maxMorphTargets
		}
		if morphNormals && len(mesh.Geometry.MorphNormals) > 0 {
			f.MorphNormals = true
			f.MaxMorphNormals = r.maxMorphNormals
		}
	}
	applySkinning := func(skinning bool) {
		if skinning && mesh != nil && len(mesh.Bones) > 0 {
			f.Skinning = true
			f.MaxBones = r.allowedBones(len(mesh.Bones))
		}
	}

	switch m := mat.(type) {
	case *material.MeshBasicMaterial:
		f.Map = m.Map != nil
		f.EnvMap = m.EnvMap != nil
		f.LightMap = m.LightMap != nil
		f.SpecularMap = m.SpecularMap != nil
		f.VertexColors = m.VertexColors
		applyMorph(m.MorphTargets, false)
		applySkinning(m.Skinning)
	case *material.MeshLambertMaterial:
		f.Map = m.Map != nil
		f.EnvMap = m.EnvMap != nil
		f.LightMap = m.LightMap != nil
		f.SpecularMap = m.SpecularMap != nil
		f.VertexColors = m.VertexColors
		f.WrapAround = m.WrapAround
		applyMorph(m.MorphTargets, m.MorphNormals)
		applySkinning(m.Skinning)
	case *material.MeshPhongMaterial:
		f.Map = m.Map != nil
		f.EnvMap = m.EnvMap != nil
		f.LightMap = m.LightMap != nil
		f.BumpMap = r.caps.derivatives && m.BumpMap != nil
		f.SpecularMap = m.SpecularMap != nil
		f.VertexColors = m.VertexColors
		f.Metal = m.Metal
		f.PerPixel = m.PerPixel
		f.WrapAround = m.WrapAround
		applyMorph(m.MorphTargets, m.MorphNormals)
		applySkinning(m.Skinning)
	case *material.MeshDepthMaterial:
		applyMorph(m.MorphTargets, false)
	case *material.MeshNormalMaterial:
		applyMorph(m.MorphTargets, false)
	case *material.LineBasicMaterial:
		f.VertexColors = m.VertexColors
	case *material.LineDashedMaterial:
		f.VertexColors = m.VertexColors
	case *material.ParticleBasicMaterial:
		f.Map = m.Map != nil
		f.VertexColors = m.VertexColors
		f.SizeAttenuation = m.SizeAttenuation
	case *material.ShaderMaterial:
		f.VertexColors = m.VertexColors
		applyMorph(m.MorphTargets, m.MorphNormals)
		applySkinning(m.Skinning)
	}

	f.AlphaTest = mat.Base().AlphaTest
	f.DoubleSided = mat.Base().Side == material.SideDouble
	f.FlipSided = mat.Base().Side == material.SideBack

	return f
}

// initMaterial resolves the material to a compiled program and a fresh
// declared-uniform set, storing the binding on the material.
func (r *rendererImpl) initMaterial(s *scene.Scene, mat material.Material, node scene.Node) {
	base := mat.Base()
	features := r.materialFeatures(s, mat, node)

	var (
		shaderID       string
		vertexSource   string
		fragmentSource string
		uniforms       map[string]*material.Uniform
		attributes     map[string]*material.CustomAttribute
	)

	if sm, ok := mat.(*material.ShaderMaterial); ok {
		vertexSource = sm.VertexShader
		fragmentSource = sm.FragmentShader
		uniforms = sm.Uniforms
		attributes = sm.Attributes
	} else {
		shaderID = shaderIDFor(mat)
		def := shaders.Lib(shaderID)
		if def == nil {
			base.Unusable = true
			return
		}
		vertexSource = def.VertexShader
		fragmentSource = def.FragmentShader
		uniforms = def.Uniforms()
	}

	program := r.progs.acquire(shaderID, vertexSource, fragmentSource, features, uniforms, attributes)
	r.info.Memory.Programs = r.progs.size()
	if program == nil {
		base.Unusable = true
		base.GL = nil
		return
	}

	base.Unusable = false
	base.GL = &materialBinding{
		program:  program,
		uniforms: uniforms,
		shaderID: shaderID,
	}
}

// setProgram selects, binds, and feeds the program for one draw: it
// re-resolves the material when flagged, uploads camera matrices on
// program/camera change, refreshes material and light uniform blocks on
// material change, and always uploads the per-object matrices.
func (r *rendererImpl) setProgram(s *scene.Scene, camera scene.CameraNode, mat material.Material, node scene.Node) *Program {
	r.usedTextureUnits = 0
	base := mat.Base()

	if base.NeedsUpdate {
		if mb, ok := base.GL.(*materialBinding); ok {
			r.progs.release(mb.program)
			r.info.Memory.Programs = r.progs.size()
		}
		r.initMaterial(s, mat, node)
		base.NeedsUpdate = false
	}

	mb, _ := base.GL.(*materialBinding)
	if mb == nil || mb.program == nil {
		return nil
	}
	p := mb.program
	gl := r.gl
	cam := camera.CameraBase()

	refreshMaterial := false
	if p != r.currentProgram {
		gl.UseProgram(p.GL)
		r.currentProgram = p
		refreshMaterial = true
	}
	if base.ID != r.currentMaterialID {
		r.currentMaterialID = base.ID
		refreshMaterial = true
	}

	if refreshMaterial || camera != r.currentCamera {
		gl.UniformMatrix4fv(p.Uniforms["projectionMatrix"], cam.ProjectionMatrix.El[:])
		r.currentCamera = camera
	}

	if refreshMaterial {
		if loc := p.Uniforms["viewMatrix"]; loc.Valid() {
			gl.UniformMatrix4fv(loc, cam.MatrixWorldInverse.El[:])
		}
		if loc := p.Uniforms["cameraPosition"]; loc.Valid() {
			pos := cam.MatrixWorld.Position()
			gl.Uniform3f(loc, pos.X, pos.Y, pos.Z)
		}

		if materialNeedsLights(mat) {
			if r.lightsNeedUpdate {
				r.setupLights(s.Lights)
				r.lightsNeedUpdate = false
			}
			refreshUniformsLights(mb.uniforms, &r.lights)
		}

		if materialUsesFog(mat) && s.Fog != nil {
			refreshUniformsFog(mb.uniforms, s.Fog)
		}

		_, userShader := mat.(*material.ShaderMaterial)
		switch m := mat.(type) {
		case *material.MeshBasicMaterial:
			refreshUniformsCommon(mb.uniforms, mat)
		case *material.MeshLambertMaterial:
			refreshUniformsCommon(mb.uniforms, mat)
			refreshUniformsLambert(mb.uniforms, m, r.gammaInput)
		case *material.MeshPhongMaterial:
			refreshUniformsCommon(mb.uniforms, mat)
			refreshUniformsPhong(mb.uniforms, m, r.gammaInput)
		case *material.MeshDepthMaterial:
			near, far := cameraPlanes(camera)
			refreshUniformsDepth(mb.uniforms, near, far, base.Opacity)
		case *material.MeshNormalMaterial:
			mb.uniforms["opacity"].Value = base.Opacity
		case *material.LineBasicMaterial:
			refreshUniformsLine(mb.uniforms, m)
		case *material.LineDashedMaterial:
			refreshUniformsDash(mb.uniforms, m)
		case *material.ParticleBasicMaterial:
			refreshUniformsParticle(mb.uniforms, m, r.viewportHeight)
		}

		r.uploadDeclaredUniforms(p, mb.uniforms, userShader)
	}

	// Per-object matrices.
	objBase := node.Base()
	var modelView math3.Matrix4
	modelView.MulMatrices(&cam.MatrixWorldInverse, &objBase.MatrixWorld)

	gl.UniformMatrix4fv(p.Uniforms["modelViewMatrix"], modelView.El[:])
	if loc := p.Uniforms["modelMatrix"]; loc.Valid() {
		gl.UniformMatrix4fv(loc, objBase.MatrixWorld.El[:])
	}
	if loc := p.Uniforms["normalMatrix"]; loc.Valid() {
		var nm math3.Matrix3
		nm.SetNormalMatrix(&modelView)
		gl.UniformMatrix3fv(loc, nm.El[:])
	}

	// Bones.
	if mesh, ok := node.(*scene.Mesh); ok && len(mesh.Bones) > 0 {
		if loc := p.Uniforms["boneGlobalMatrices"]; loc.Valid() {
			mesh.UpdateBoneMatrices()
			gl.UniformMatrix4fv(loc, mesh.BoneMatrices)
		}
	}

	return p
}

// cameraPlanes extracts the near/far planes for the depth material.
func cameraPlanes(camera scene.CameraNode) (near, far float32) {
	switch c := camera.(type) {
	case *scene.PerspectiveCamera:
		return c.Near, c.Far
	case *scene.OrthographicCamera:
		return c.Near, c.Far
	}
	return 1, 2000
}
