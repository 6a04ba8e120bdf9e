package renderer

import (
	"log"

	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// setUniform writes one declared uniform value by kind. Texture kinds
// allocate the next sequential texture unit for this draw.
func (r *rendererImpl) setUniform(loc glctx.Uniform, kind string, value any, logMissingType bool) {
	gl := r.gl
	switch kind {
	case "i":
		v, _ := value.(int)
		gl.Uniform1i(loc, v)
	case "f":
		v, _ := value.(float32)
		gl.Uniform1f(loc, v)
	case "v2":
		v, _ := value.(math3.Vector2)
		gl.Uniform2f(loc, v.X, v.Y)
	case "v3":
		v, _ := value.(math3.Vector3)
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	case "v4":
		v, _ := value.(math3.Vector4)
		gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	case "c":
		v, _ := value.(math3.Color)
		gl.Uniform3f(loc, v.R, v.G, v.B)
	case "fv1":
		v, _ := value.([]float32)
		gl.Uniform1fv(loc, v)
	case "fv":
		v, _ := value.([]float32)
		gl.Uniform3fv(loc, v)
	case "v4v":
		v, _ := value.([]float32)
		gl.Uniform4fv(loc, v)
	case "m4":
		v, _ := value.(math3.Matrix4)
		gl.UniformMatrix4fv(loc, v.El[:])
	case "m4v":
		v, _ := value.([]float32)
		gl.UniformMatrix4fv(loc, v)
	case "t":
		tex, _ := value.(*texture.Texture)
		unit := r.allocTextureUnit()
		gl.Uniform1i(loc, unit)
		if tex != nil {
			r.setTexture(tex, unit)
		}
	case "tv":
		texs, _ := value.([]*texture.Texture)
		units := make([]int32, len(texs))
		for i := range texs {
			units[i] = int32(r.allocTextureUnit())
		}
		gl.Uniform1iv(loc, units)
		for i, tex := range texs {
			if tex != nil {
				r.setTexture(tex, int(units[i]))
			}
		}
	default:
		if logMissingType {
			log.Printf("[renderer] unknown uniform kind %q", kind)
		}
	}
}

// uploadDeclaredUniforms pushes every uniform in the map through its cached
// location. Missing locations are skipped silently for builtin shaders and
// logged for user shader materials.
func (r *rendererImpl) uploadDeclaredUniforms(p *Program, uniforms map[string]*material.Uniform, userShader bool) {
	for name, u := range uniforms {
		loc, ok := p.Uniforms[name]
		if !ok || !loc.Valid() {
			if userShader && !r.loggedMissingUniform {
				log.Printf("[renderer] shader material uniform %q has no location", name)
				r.loggedMissingUniform = true
			}
			continue
		}
		r.setUniform(loc, u.Kind, u.Value, userShader)
	}
}

// allocTextureUnit hands out the next texture unit for the current draw,
// clamping at the driver's fragment texture-unit limit
// (MAX_TEXTURE_IMAGE_UNITS).
func (r *rendererImpl) allocTextureUnit() int {
	unit := r.usedTextureUnits
	if unit >= r.caps.maxTextures {
		if !r.loggedTextureUnits {
			log.Printf("[renderer] trying to use %d texture units while this GPU supports only %d", unit+1, r.caps.maxTextures)
			r.loggedTextureUnits = true
		}
		unit = r.caps.maxTextures - 1
	}
	r.usedTextureUnits++
	return unit
}

// refreshUniformsCommon fills the shared mesh uniform block from the
// resolved material's fields.
func refreshUniformsCommon(u map[string]*material.Uniform, mat material.Material) {
	base := mat.Base()
	u["opacity"].Value = base.Opacity

	var diffuse math3.Color
	var mapTex, lightMap, specularMap, envMap *texture.Texture
	var combine material.EnvMapCombine
	var reflectivity, refractionRatio float32 = 1, 0.98

	switch m := mat.(type) {
	case *material.MeshBasicMaterial:
		diffuse = m.Color
		mapTex, lightMap, specularMap, envMap = m.Map, m.LightMap, m.SpecularMap, m.EnvMap
		combine, reflectivity, refractionRatio = m.Combine, m.Reflectivity, m.RefractionRatio
	case *material.MeshLambertMaterial:
		diffuse = m.Color
		mapTex, lightMap, specularMap, envMap = m.Map, m.LightMap, m.SpecularMap, m.EnvMap
		combine, reflectivity, refractionRatio = m.Combine, m.Reflectivity, m.RefractionRatio
	case *material.MeshPhongMaterial:
		diffuse = m.Color
		mapTex, lightMap, specularMap, envMap = m.Map, m.LightMap, m.SpecularMap, m.EnvMap
		combine, reflectivity, refractionRatio = m.Combine, m.Reflectivity, m.RefractionRatio
	default:
		return
	}

	u["diffuse"].Value = diffuse
	u["map"].Value = mapTex
	u["lightMap"].Value = lightMap
	u["specularMap"].Value = specularMap
	u["envMap"].Value = envMap
	u["combine"].Value = int(combine)
	u["reflectivity"].Value = reflectivity
	u["refractionRatio"].Value = refractionRatio
	u["useRefract"].Value = 0

	if mapTex != nil {
		u["offsetRepeat"].Value = math3.V4(mapTex.Offset.X, mapTex.Offset.Y, mapTex.Repeat.X, mapTex.Repeat.Y)
	}
}

// refreshUniformsLambert fills the lambert-specific block.
func refreshUniformsLambert(u map[string]*material.Uniform, m *material.MeshLambertMaterial, gammaInput bool) {
	if gammaInput {
		u["ambient"].Value = m.Ambient.GammaToLinear()
		u["emissive"].Value = m.Emissive.GammaToLinear()
	} else {
		u["ambient"].Value = m.Ambient
		u["emissive"].Value = m.Emissive
	}
	if m.WrapAround {
		u["wrapRGB"].Value = m.WrapRGB
	}
}

// refreshUniformsPhong fills the phong-specific block.
func refreshUniformsPhong(u map[string]*material.Uniform, m *material.MeshPhongMaterial, gammaInput bool) {
	u["shininess"].Value = m.Shininess
	if gammaInput {
		u["ambient"].Value = m.Ambient.GammaToLinear()
		u["emissive"].Value = m.Emissive.GammaToLinear()
		u["specular"].Value = m.Specular.GammaToLinear()
	} else {
		u["ambient"].Value = m.Ambient
		u["emissive"].Value = m.Emissive
		u["specular"].Value = m.Specular
	}
	if m.BumpMap != nil {
		u["bumpMap"].Value = m.BumpMap
		u["bumpScale"].Value = m.BumpScale
	}
	if m.WrapAround {
		u["wrapRGB"].Value = m.WrapRGB
	}
}

// refreshUniformsLine fills the line block.
func refreshUniformsLine(u map[string]*material.Uniform, m *material.LineBasicMaterial) {
	u["diffuse"].Value = m.Color
	u["opacity"].Value = m.Base().Opacity
}

// refreshUniformsDash fills the dashed-line block.
func refreshUniformsDash(u map[string]*material.Uniform, m *material.LineDashedMaterial) {
	u["diffuse"].Value = m.Color
	u["opacity"].Value = m.Base().Opacity
	u["scale"].Value = m.Scale
	u["dashSize"].Value = m.DashSize
	u["totalSize"].Value = m.DashSize + m.GapSize
}

// refreshUniformsParticle fills the particle block.
func refreshUniformsParticle(u map[string]*material.Uniform, m *material.ParticleBasicMaterial, viewportHeight int) {
	u["psColor"].Value = m.Color
	u["opacity"].Value = m.Base().Opacity
	u["size"].Value = m.Size
	u["scale"].Value = float32(viewportHeight) / 2
	u["map"].Value = m.Map
}

// refreshUniformsFog fills the fog block from the scene's fog spec.
func refreshUniformsFog(u map[string]*material.Uniform, fog scene.FogSpec) {
	switch f := fog.(type) {
	case *scene.Fog:
		u["fogColor"].Value = f.Color
		u["fogNear"].Value = f.Near
		u["fogFar"].Value = f.Far
	case *scene.FogExp2:
		u["fogColor"].Value = f.Color
		u["fogDensity"].Value = f.Density
	}
}

// refreshUniformsLights copies the aggregated light arrays into the
// declared uniform block.
func refreshUniformsLights(u map[string]*material.Uniform, la *lightArrays) {
	u["ambientLightColor"].Value = la.ambient[:]

	u["directionalLightColor"].Value = la.dirColors
	u["directionalLightDirection"].Value = la.dirPositions

	u["pointLightColor"].Value = la.pointColors
	u["pointLightPosition"].Value = la.pointPositions
	u["pointLightDistance"].Value = la.pointDistances

	u["spotLightColor"].Value = la.spotColors
	u["spotLightPosition"].Value = la.spotPositions
	u["spotLightDistance"].Value = la.spotDistances
	u["spotLightDirection"].Value = la.spotDirections
	u["spotLightAngleCos"].Value = la.spotAngles
	u["spotLightExponent"].Value = la.spotExponents

	u["hemisphereLightSkyColor"].Value = la.hemiSkyColors
	u["hemisphereLightGroundColor"].Value = la.hemiGroundColors
	u["hemisphereLightPosition"].Value = la.hemiPositions
}

// refreshUniformsDepth fills the depth-visualization block from the
// camera's planes.
func refreshUniformsDepth(u map[string]*material.Uniform, near, far, opacity float32) {
	u["mNear"].Value = near
	u["mFar"].Value = far
	u["opacity"].Value = opacity
}
